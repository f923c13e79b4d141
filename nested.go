package validino

import "fmt"

// Nested validates the named entries of a mapping value and returns a new
// mapping holding only those entries. Every entry is checked; failures are
// aggregated per key, and an absent key (or a non-mapping value) reports
// "key '<name>' is missing".
func Nested(fields map[string]Validator) Validator {
	return Func(func(value any, c Context) (any, error) {
		m, isMap := asMap(value)
		data := make(map[string]any, len(fields))
		errs := Mapping{}

		for _, k := range sortedKeys(fields) {
			raw, present := m[k]
			if !isMap || !present {
				errs[k] = Message(fmt.Sprintf("key '%s' is missing", k))
				continue
			}
			out, err := fields[k].Validate(raw, c)
			if err != nil {
				inv, ok := AsInvalid(err)
				if !ok {
					return nil, err
				}
				errs[k] = inv
				continue
			}
			data[k] = out
		}

		if len(errs) > 0 {
			return nil, NewInvalid(errs)
		}
		return data, nil
	})
}

// NestedMany applies v to every entry of a mapping value, keeping the keys.
// An empty or non-mapping value fails with "No data found".
func NestedMany(v Validator) Validator {
	return Func(func(value any, c Context) (any, error) {
		m, ok := asMap(value)
		if !ok || len(m) == 0 {
			return nil, Fail("No data found")
		}

		data := make(map[string]any, len(m))
		errs := Mapping{}
		for _, k := range sortedKeys(m) {
			out, err := v.Validate(m[k], c)
			if err != nil {
				inv, ok := AsInvalid(err)
				if !ok {
					return nil, err
				}
				errs[k] = inv
				continue
			}
			data[k] = out
		}

		if len(errs) > 0 {
			return nil, NewInvalid(errs)
		}
		return data, nil
	})
}
