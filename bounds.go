package validino

// NoLimit leaves a ClampLength bound open.
const NoLimit = -1

// Clamp bounds the value between lo and hi, either of which may be nil.
// Numbers compare by value across types and strings lexically; values that
// cannot be compared with a bound fail as an unexpected type.
func Clamp(lo, hi any, msg Msg) Validator {
	return Func(func(value any, _ Context) (any, error) {
		if lo != nil {
			c, ok := compareValues(value, lo)
			if !ok {
				return nil, fail(msg, "confirm_type", "unexpected type")
			}
			if c < 0 {
				return nil, fail(msg, "min", "value below minimum")
			}
		}
		if hi != nil {
			c, ok := compareValues(value, hi)
			if !ok {
				return nil, fail(msg, "confirm_type", "unexpected type")
			}
			if c > 0 {
				return nil, fail(msg, "max", "value above maximum")
			}
		}
		return value, nil
	})
}

// ClampLength bounds the length of strings (in runes), collections and
// Sizers. Use NoLimit to leave a bound open. Templates may reference
// {min}, {max} and {length}.
func ClampLength(lo, hi int, msg Msg) Validator {
	return Func(func(value any, _ Context) (any, error) {
		n, ok := length(value)
		if !ok {
			return nil, fail(msg, "confirm_type", "unexpected type")
		}
		params := map[string]any{"min": bound(lo), "max": bound(hi), "length": n}
		if lo != NoLimit && n < lo {
			return nil, Fail(render(msg, "minlen", "too short", params))
		}
		if hi != NoLimit && n > hi {
			return nil, Fail(render(msg, "maxlen", "too long", params))
		}
		return value, nil
	})
}

func bound(n int) any {
	if n == NoLimit {
		return nil
	}
	return n
}
