package validino

// CrossOption configures a cross-field validator.
type CrossOption func(*crossConfig)

type crossConfig struct {
	field    string
	hasField bool
}

// ReportAs files the failure under field instead of the schema key.
// ReportAs(RootKey) files it at the schema's root.
func ReportAs(field string) CrossOption {
	return func(c *crossConfig) {
		c.field = field
		c.hasField = true
	}
}

func buildCross(opts []CrossOption) crossConfig {
	var cfg crossConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (cfg crossConfig) fail(msg string) *Invalid {
	inv := Fail(msg)
	if cfg.hasField {
		return inv.WithField(cfg.field)
	}
	return inv
}

// FieldsEqual passes a list of values that are all equal. An empty list fails.
func FieldsEqual(msg Msg, opts ...CrossOption) Validator {
	cfg := buildCross(opts)
	return Func(func(value any, _ Context) (any, error) {
		items, ok := asSlice(value)
		if !ok || len(items) == 0 {
			return nil, cfg.fail(render(msg, "fields_equal", "fields not equal", nil))
		}
		for _, item := range items[1:] {
			if !valuesEqual(item, items[0]) {
				return nil, cfg.fail(render(msg, "fields_equal", "fields not equal", nil))
			}
		}
		return value, nil
	})
}

// FieldsMatch passes a mapping whose name1 and name2 entries are present
// and equal. Any other value fails.
// With ReportAs, the message is nested under that field in the failure.
func FieldsMatch(name1, name2 string, msg Msg, opts ...CrossOption) Validator {
	cfg := buildCross(opts)
	return Func(func(value any, _ Context) (any, error) {
		m, ok := asMap(value)
		v1, ok1 := m[name1]
		v2, ok2 := m[name2]
		if !ok || !ok1 || !ok2 || !valuesEqual(v1, v2) {
			text := render(msg, "fields_match", "fields do not match", nil)
			if cfg.hasField {
				return nil, NewInvalid(Mapping{cfg.field: Message(text)})
			}
			return nil, Fail(text)
		}
		return value, nil
	})
}

// OnlyOneOf passes a list in which at most one value is truthy.
func OnlyOneOf(msg Msg, opts ...CrossOption) Validator {
	cfg := buildCross(opts)
	return Func(func(value any, _ Context) (any, error) {
		items, _ := asSlice(value)
		present := 0
		for _, item := range items {
			if truthy(item) {
				present++
			}
		}
		if present > 1 {
			return nil, cfg.fail(render(msg, "only_one_of", "more than one value present", nil))
		}
		return value, nil
	})
}
