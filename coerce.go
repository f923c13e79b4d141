package validino

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

var (
	trueStrings  = []string{"true", "t", "y", "yes"}
	falseStrings = []string{"false", "f", "n", "no"}
)

// ToInteger coerces the value to an int. Strings are parsed in base 10
// after trimming whitespace; floats are truncated; nil fails.
func ToInteger(msg Msg) Validator {
	return Func(func(value any, _ Context) (any, error) {
		switch v := value.(type) {
		case nil:
			return nil, fail(msg, "integer", "not an integer")
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return nil, fail(msg, "integer", "not an integer")
			}
			return n, nil
		}
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n := rv.Int()
			if n < math.MinInt || n > math.MaxInt {
				return nil, fail(msg, "integer", "not an integer")
			}
			return int(n), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			n := rv.Uint()
			if n > math.MaxInt {
				return nil, fail(msg, "integer", "not an integer")
			}
			return int(n), nil
		case reflect.Float32, reflect.Float64:
			f := math.Trunc(rv.Float())
			// float64(math.MaxInt) rounds up to 2^63, which is out of range.
			if math.IsNaN(f) || f < math.MinInt || f >= math.MaxInt {
				return nil, fail(msg, "integer", "not an integer")
			}
			return int(f), nil
		}
		n, err := cast.ToIntE(value)
		if err != nil {
			return nil, fail(msg, "integer", "not an integer")
		}
		return n, nil
	})
}

// ToBoolean coerces the value to its truth value. With fuzzy set, strings
// such as "no" and "false" are read as words first. It never fails.
func ToBoolean(fuzzy bool) Validator {
	return Transform(func(value any) any {
		if s, ok := value.(string); ok && fuzzy {
			lower := strings.ToLower(s)
			for _, t := range trueStrings {
				if lower == t {
					return true
				}
			}
			for _, f := range falseStrings {
				if lower == f {
					return false
				}
			}
		}
		return truthy(value)
	})
}

// ToString coerces the value to a string. Byte slices are decoded from the
// named encoding (UTF-8 when empty) and fail on invalid input; nil becomes
// the empty string.
func ToString(encoding string, msg Msg) Validator {
	return Func(func(value any, _ Context) (any, error) {
		switch v := value.(type) {
		case string:
			return v, nil
		case nil:
			return "", nil
		case []byte:
			cs, err := lookupCharset(encoding)
			if err != nil {
				return nil, err
			}
			s, err := cs.decode(v)
			if err != nil {
				return nil, fail(msg, "to_unicode", "encoding error")
			}
			return s, nil
		}
		return stringify(value), nil
	})
}

// ToBytes coerces the value to bytes in the named encoding (UTF-8 when
// empty). Strings that cannot be represented fail; nil becomes empty.
func ToBytes(encoding string, msg Msg) Validator {
	return Func(func(value any, _ Context) (any, error) {
		switch v := value.(type) {
		case []byte:
			return v, nil
		case nil:
			return []byte{}, nil
		}
		cs, err := lookupCharset(encoding)
		if err != nil {
			return nil, err
		}
		b, err := cs.encode(stringify(value))
		if err != nil {
			return nil, fail(msg, "to_string", "encoding error")
		}
		return b, nil
	})
}

func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	if s, ok := value.(fmt.Stringer); ok {
		return s.String()
	}
	if s, err := cast.ToStringE(value); err == nil {
		return s
	}
	return fmt.Sprint(value)
}

// ToList wraps a scalar in a one-element slice. Lists pass through.
func ToList() Validator {
	return Transform(func(value any) any {
		if isList(value) {
			return value
		}
		return []any{value}
	})
}

// ToScalar returns the first element of a list, or nil for an empty one.
// Scalars pass through.
func ToScalar() Validator {
	return Transform(func(value any) any {
		items, ok := asSlice(value)
		if !ok {
			return value
		}
		if len(items) == 0 {
			return nil
		}
		return items[0]
	})
}

// Default replaces nil with fallback.
func Default(fallback any) Validator {
	return Transform(func(value any) any {
		if value == nil {
			return fallback
		}
		return value
	})
}

// Strip trims surrounding whitespace from strings and byte slices.
// Other values pass through.
var Strip Validator = Transform(func(value any) any {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case []byte:
		return bytes.TrimSpace(v)
	default:
		return value
	}
})

// Translate maps the value through mapping, failing on unknown keys.
func Translate[K comparable, V any](mapping map[K]V, msg Msg) Validator {
	return Func(func(value any, _ Context) (any, error) {
		k, ok := value.(K)
		if !ok {
			return nil, fail(msg, "belongs", "invalid choice")
		}
		out, ok := mapping[k]
		if !ok {
			return nil, fail(msg, "belongs", "invalid choice")
		}
		return out, nil
	})
}
