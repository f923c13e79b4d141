package validino

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

var errCharset = errors.New("invalid byte sequence for encoding")

// charset decodes and encodes between a named encoding and UTF-8 strings.
// A nil enc means UTF-8 itself; ascii is handled strictly since the WHATWG
// index maps it to windows-1252.
type charset struct {
	ascii bool
	enc   encoding.Encoding
}

func lookupCharset(name string) (charset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf8", "utf-8":
		return charset{}, nil
	case "ascii", "us-ascii":
		return charset{ascii: true}, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return charset{}, newConfigError(ErrUnknownEncoding, "", name)
	}
	return charset{enc: enc}, nil
}

func (cs charset) decode(b []byte) (string, error) {
	switch {
	case cs.ascii:
		for _, c := range b {
			if c >= utf8.RuneSelf {
				return "", errCharset
			}
		}
		return string(b), nil
	case cs.enc == nil:
		if !utf8.Valid(b) {
			return "", errCharset
		}
		return string(b), nil
	default:
		out, err := cs.enc.NewDecoder().Bytes(b)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
}

func (cs charset) encode(s string) ([]byte, error) {
	switch {
	case cs.ascii:
		for i := 0; i < len(s); i++ {
			if s[i] >= utf8.RuneSelf {
				return nil, errCharset
			}
		}
		return []byte(s), nil
	case cs.enc == nil:
		if !utf8.ValidString(s) {
			return nil, errCharset
		}
		return []byte(s), nil
	default:
		return cs.enc.NewEncoder().Bytes([]byte(s))
	}
}
