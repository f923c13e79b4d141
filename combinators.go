package validino

// AllOf applies validators in order, feeding each the previous output.
// The first failure is returned unchanged.
func AllOf(validators ...Validator) Validator {
	return Func(func(value any, c Context) (any, error) {
		for _, v := range validators {
			out, err := v.Validate(value, c)
			if err != nil {
				return nil, err
			}
			value = out
		}
		return value, nil
	})
}

// Either tries validators in order against the same input and returns the
// first success. When all fail, the last error is returned.
func Either(validators ...Validator) Validator {
	return Func(func(value any, c Context) (any, error) {
		var last error
		for _, v := range validators {
			out, err := v.Validate(value, c)
			if err == nil {
				return out, nil
			}
			last = err
		}
		if last == nil {
			return value, nil
		}
		return nil, last
	})
}

// Check runs validators for their effect only and returns the original
// input, which a validator may have mutated in place.
func Check(validators ...Validator) Validator {
	return Func(func(value any, c Context) (any, error) {
		for _, v := range validators {
			if _, err := v.Validate(value, c); err != nil {
				return nil, err
			}
		}
		return value, nil
	})
}

// Excursion runs validators against the input, which they may consume or
// mutate, and on success returns a shallow snapshot taken beforehand.
func Excursion(validators ...Validator) Validator {
	pipeline := AllOf(validators...)
	return Func(func(value any, c Context) (any, error) {
		saved := snapshot(value)
		if _, err := pipeline.Validate(value, c); err != nil {
			return nil, err
		}
		return saved, nil
	})
}

// OnField files any failure from v under name when it is nested in a schema.
func OnField(name string, v Validator) Validator {
	return Func(func(value any, c Context) (any, error) {
		out, err := v.Validate(value, c)
		if err != nil {
			if inv, ok := AsInvalid(err); ok {
				return nil, inv.WithField(name)
			}
			return nil, err
		}
		return out, nil
	})
}
