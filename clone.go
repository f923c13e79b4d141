package validino

import "reflect"

// Cloner allows types to provide their own snapshot logic for Excursion.
//
// Clone must return a copy whose top level is independent of the receiver.
// Nested reference fields may be shared; Excursion only promises a shallow
// snapshot.
//
//	func (s Tags) Clone() any {
//	    out := make(Tags, len(s))
//	    copy(out, s)
//	    return out
//	}
type Cloner interface {
	Clone() any
}

// snapshot returns a shallow copy of maps and slices, defers to Cloner, and
// returns every other value as is.
func snapshot(value any) any {
	if c, ok := value.(Cloner); ok {
		return c.Clone()
	}

	switch v := value.(type) {
	case nil:
		return nil
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[k] = val
		}
		return out
	case []any:
		out := make([]any, len(v))
		copy(out, v)
		return out
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return value
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), iter.Value())
		}
		return out.Interface()
	case reflect.Slice:
		if rv.IsNil() {
			return value
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		reflect.Copy(out, rv)
		return out.Interface()
	case reflect.Pointer:
		if rv.IsNil() {
			return value
		}
		out := reflect.New(rv.Elem().Type())
		out.Elem().Set(rv.Elem())
		return out.Interface()
	default:
		return value
	}
}
