package validino

import (
	"fmt"
	"slices"
	"strings"
)

// RootKey is the error key for messages that belong to the value as a whole
// rather than to a named field.
const RootKey = ""

// Content is the payload of an error entry: a Message, a Mapping, a Plural
// or a nested *Invalid.
type Content interface {
	isContent()
}

// Message is a leaf error message.
type Message string

// Mapping holds error content keyed by field.
type Mapping map[string]Content

// Plural wraps a sequence of content. Only the first element is reported.
type Plural []Content

func (Message) isContent()  {}
func (Mapping) isContent()  {}
func (Plural) isContent()   {}
func (*Invalid) isContent() {}

// Invalid is a validation failure. It maps error keys to content and may
// carry a field override that decides where a parent files it.
type Invalid struct {
	errors   Mapping
	field    string
	hasField bool
}

// NewInvalid builds a failure from payload. A Mapping becomes the error
// mapping directly; any other content is filed under RootKey. Empty payloads
// produce an empty mapping.
func NewInvalid(payload Content) *Invalid {
	errs := Mapping{}
	switch p := payload.(type) {
	case nil:
	case Mapping:
		if len(p) > 0 {
			errs = p
		}
	case Message:
		if p != "" {
			errs[RootKey] = p
		}
	case Plural:
		if len(p) > 0 {
			errs[RootKey] = p
		}
	default:
		errs[RootKey] = p
	}
	return &Invalid{errors: errs}
}

// Fail returns a failure with a single root message.
func Fail(msg string) *Invalid {
	return NewInvalid(Message(msg))
}

// Failf is Fail with fmt formatting.
func Failf(format string, args ...any) *Invalid {
	return Fail(fmt.Sprintf(format, args...))
}

// WithField returns a copy of e that a parent will file under name instead
// of its own key. Use RootKey to file it at the parent's root.
func (e *Invalid) WithField(name string) *Invalid {
	c := *e
	c.field = name
	c.hasField = true
	return &c
}

// Field reports the field override, if one is set.
func (e *Invalid) Field() (string, bool) {
	return e.field, e.hasField
}

// Errors returns the raw error mapping.
func (e *Invalid) Errors() Mapping {
	return e.errors
}

// UnpackErrors flattens the error content into a map whose values are
// either message strings or further maps of the same shape. The result is
// never nil.
func (e *Invalid) UnpackErrors() map[string]any {
	switch u := e.unpack().(type) {
	case string:
		return map[string]any{RootKey: u}
	case map[string]any:
		return u
	default:
		return map[string]any{}
	}
}

// Error renders the unpacked errors deterministically: the root message
// first, then dotted field paths in sorted order.
func (e *Invalid) Error() string {
	flat := DictUnnest(e.UnpackErrors(), DefaultSeparator)
	if len(flat) == 0 {
		return ErrInvalid.Error()
	}

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == RootKey {
			parts = append(parts, fmt.Sprint(flat[k]))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %v", k, flat[k]))
	}
	return strings.Join(parts, "; ")
}

// Is reports whether target is ErrInvalid.
func (e *Invalid) Is(target error) bool {
	return target == ErrInvalid
}

// unpack resolves every entry and collapses a lone root entry into its value.
func (e *Invalid) unpack() any {
	result := make(map[string]any, len(e.errors))
	for _, k := range sortedKeys(e.errors) {
		if name, val, ok := resolve(k, e.errors[k]); ok {
			result[name] = val
		}
	}
	if len(result) == 1 {
		if v, ok := result[RootKey]; ok {
			return v
		}
	}
	return result
}

// resolve unpacks one entry. Mappings keep their key and unpack without
// collapsing; plurals defer to their first element; nested failures may
// rename the entry through their field override.
func resolve(name string, c Content) (string, any, bool) {
	switch v := c.(type) {
	case Message:
		return name, string(v), true
	case Mapping:
		m := make(map[string]any, len(v))
		for _, k := range sortedKeys(v) {
			if n, val, ok := resolve(k, v[k]); ok {
				m[n] = val
			}
		}
		return name, m, true
	case Plural:
		if len(v) == 0 {
			return name, nil, false
		}
		return resolve(name, v[0])
	case *Invalid:
		if v == nil {
			return name, nil, false
		}
		if v.hasField {
			name = v.field
		}
		return name, v.unpack(), true
	default:
		return name, nil, false
	}
}

// toContent converts unpacked errors back into content.
func toContent(v any) Content {
	switch u := v.(type) {
	case string:
		return Message(u)
	case map[string]any:
		m := make(Mapping, len(u))
		for k, val := range u {
			m[k] = toContent(val)
		}
		return m
	case Content:
		return u
	default:
		return Message(fmt.Sprint(u))
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
