package validino

import "time"

// ParseTime parses string values with a Go time layout.
func ParseTime(layout string, msg Msg) Validator {
	return Func(func(value any, _ Context) (any, error) {
		s, ok := value.(string)
		if !ok {
			return nil, fail(msg, "parse_time", "invalid time")
		}
		t, err := time.Parse(layout, s)
		if err != nil {
			return nil, fail(msg, "parse_time", "invalid time")
		}
		return t, nil
	})
}

// ParseDate is ParseTime truncated to midnight of the parsed day.
func ParseDate(layout string, msg Msg) Validator {
	parse := ParseTime(layout, msg)
	return Func(func(value any, c Context) (any, error) {
		out, err := parse.Validate(value, c)
		if err != nil {
			return nil, err
		}
		t := out.(time.Time)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()), nil
	})
}

// ParseDatetime is ParseTime truncated to whole seconds.
func ParseDatetime(layout string, msg Msg) Validator {
	parse := ParseTime(layout, msg)
	return Func(func(value any, c Context) (any, error) {
		out, err := parse.Validate(value, c)
		if err != nil {
			return nil, err
		}
		return out.(time.Time).Truncate(time.Second), nil
	})
}
