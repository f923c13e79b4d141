package validino

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalid matches every *Invalid validation failure.
	ErrInvalid = errors.New("invalid")

	// ErrInvalidPattern indicates a regular expression failed to compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrUnknownEncoding indicates a character encoding name was not recognised.
	ErrUnknownEncoding = errors.New("unknown encoding")

	// ErrGroupShape indicates a group validator returned a value that does not
	// fan back out to its keys.
	ErrGroupShape = errors.New("group result shape mismatch")

	// ErrUnknownField indicates a schema key has no matching struct field.
	ErrUnknownField = errors.New("unknown field")

	// ErrUnsupportedCheck indicates an existence check was requested for a
	// scheme that cannot be checked.
	ErrUnsupportedCheck = errors.New("unsupported check")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")

	// ErrHash indicates hashing of a value failed.
	ErrHash = errors.New("hash failed")

	// ErrBind indicates validated data could not be decoded into a struct.
	ErrBind = errors.New("bind failed")
)

// ConfigError represents a validator configuration error.
// It wraps a sentinel error with the offending field and detail.
type ConfigError struct {
	Err    error  // Underlying sentinel error (ErrInvalidPattern, etc.)
	Field  string // Field or key that triggered the error
	Detail string // Pattern, scheme or type that was rejected
}

func (e *ConfigError) Error() string {
	if e.Field != "" && e.Detail != "" {
		return fmt.Sprintf("%s %q (field %s)", e.Err.Error(), e.Detail, e.Field)
	}
	if e.Detail != "" {
		return fmt.Sprintf("%s %q", e.Err.Error(), e.Detail)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// TransformError represents a non-validation failure while transforming a value.
type TransformError struct {
	Err       error  // Underlying sentinel error (ErrHash, ErrBind)
	Field     string // Field name, when known
	Operation string // Operation that failed (hash, bind)
	Cause     error  // Original error from the underlying operation
}

func (e *TransformError) Error() string {
	target := "value"
	if e.Field != "" {
		target = "field " + e.Field
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s %s: %v", e.Operation, target, e.Cause)
	}
	return fmt.Sprintf("%s %s", e.Operation, target)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err         error  // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	ContentType string // Content type of the codec involved
	Cause       error  // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %v", e.Err.Error(), e.ContentType, e.Cause)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.ContentType)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

func newConfigError(sentinel error, field, detail string) error {
	return &ConfigError{
		Err:    sentinel,
		Field:  field,
		Detail: detail,
	}
}

func newTransformError(sentinel error, operation, field string, cause error) error {
	return &TransformError{
		Err:       sentinel,
		Field:     field,
		Operation: operation,
		Cause:     cause,
	}
}

func newCodecError(sentinel error, contentType string, cause error) error {
	return &CodecError{
		Err:         sentinel,
		ContentType: contentType,
		Cause:       cause,
	}
}

// AsInvalid extracts a validation failure from err.
func AsInvalid(err error) (*Invalid, bool) {
	var inv *Invalid
	if errors.As(err, &inv) {
		return inv, true
	}
	return nil, false
}
