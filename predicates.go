package validino

import (
	"reflect"
	"slices"
)

// IsInteger passes integer kinds through. Booleans are not integers.
func IsInteger(msg Msg) Validator {
	return predicate(msg, "is_integer", "not an integer", isInteger)
}

// IsString passes strings through.
func IsString(msg Msg) Validator {
	return predicate(msg, "is_unicode", "not unicode", func(v any) bool {
		_, ok := v.(string)
		return ok
	})
}

// IsBytes passes byte slices through.
func IsBytes(msg Msg) Validator {
	return predicate(msg, "is_string", "not string", func(v any) bool {
		_, ok := v.([]byte)
		return ok
	})
}

// IsList passes slices and arrays through.
func IsList(msg Msg) Validator {
	return predicate(msg, "is_list", "expected list value", isList)
}

// IsScalar fails on slices and arrays.
func IsScalar(msg Msg) Validator {
	return predicate(msg, "is_scalar", "expected scalar value", func(v any) bool {
		return !isList(v)
	})
}

// ConfirmType passes values whose dynamic type matches one of the samples.
//
//	ConfirmType(Text("not a number"), 0, 0.0) // int or float64
func ConfirmType(msg Msg, samples ...any) Validator {
	types := make([]reflect.Type, len(samples))
	for i, s := range samples {
		types[i] = reflect.TypeOf(s)
	}
	return predicate(msg, "confirm_type", "unexpected type", func(v any) bool {
		return slices.Contains(types, reflect.TypeOf(v))
	})
}

// Belongs passes values found in domain.
func Belongs[T comparable](domain []T, msg Msg) Validator {
	return predicate(msg, "belongs", "invalid choice", func(v any) bool {
		t, ok := v.(T)
		return ok && slices.Contains(domain, t)
	})
}

// NotBelongs passes values absent from domain, including values of another type.
func NotBelongs[T comparable](domain []T, msg Msg) Validator {
	return predicate(msg, "not_belongs", "invalid choice", func(v any) bool {
		t, ok := v.(T)
		return !ok || !slices.Contains(domain, t)
	})
}

// Equal passes values equal to want. Numbers compare by value across types.
func Equal(want any, msg Msg) Validator {
	return predicate(msg, "eq", "invalid value", func(v any) bool {
		return valuesEqual(v, want)
	})
}

// NotEqual passes values different from want.
func NotEqual(want any, msg Msg) Validator {
	return predicate(msg, "eq", "invalid value", func(v any) bool {
		return !valuesEqual(v, want)
	})
}

// Empty passes nil and the empty string.
func Empty(msg Msg) Validator {
	return predicate(msg, "empty", "No value was expected", isBlank)
}

// NotEmpty fails on nil and the empty string.
func NotEmpty(msg Msg) Validator {
	return predicate(msg, "notempty", "A non-empty value was expected", func(v any) bool {
		return !isBlank(v)
	})
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

func predicate(msg Msg, kind, fallback string, ok func(any) bool) Validator {
	return Func(func(value any, _ Context) (any, error) {
		if !ok(value) {
			return nil, fail(msg, kind, fallback)
		}
		return value, nil
	})
}
