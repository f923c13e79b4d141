package validino

import "context"

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Normalizer is implemented by codecs whose decoded documents contain
// library-specific container types. Normalize rewrites them to plain
// map[string]any and []any values.
type Normalizer interface {
	Normalize(doc map[string]any) map[string]any
}

// Decode unmarshals a document into a plain map.
func Decode(codec Codec, data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := codec.Unmarshal(data, &doc); err != nil {
		return nil, newCodecError(ErrUnmarshal, codec.ContentType(), err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	if n, ok := codec.(Normalizer); ok {
		doc = n.Normalize(doc)
	}
	return doc, nil
}

// ValidateBytes decodes data with codec and validates the resulting map.
// Decoding failures are returned as *CodecError, never as *Invalid.
func (s *Schema) ValidateBytes(ctx context.Context, codec Codec, data []byte, c Context) (map[string]any, error) {
	doc, err := Decode(codec, data)
	if err != nil {
		emitDecodeFailed(ctx, codec.ContentType(), len(data), err)
		return nil, err
	}
	out, err := s.ValidateContext(ctx, doc, c)
	if err != nil {
		return nil, err
	}
	return out.(map[string]any), nil
}

// EncodeErrors marshals the unpacked form of a validation failure.
// Errors that are not *Invalid are encoded as a single root message.
func EncodeErrors(codec Codec, err error) ([]byte, error) {
	var payload map[string]any
	if inv, ok := AsInvalid(err); ok {
		payload = inv.UnpackErrors()
	} else if err != nil {
		payload = map[string]any{RootKey: err.Error()}
	} else {
		payload = map[string]any{}
	}

	data, mErr := codec.Marshal(payload)
	if mErr != nil {
		return nil, newCodecError(ErrMarshal, codec.ContentType(), mErr)
	}
	return data, nil
}
