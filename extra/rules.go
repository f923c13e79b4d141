package extra

import (
	"github.com/go-playground/validator/v10"
	"github.com/zoobzio/validino"
)

// rules is the shared go-playground instance. It is safe for concurrent use
// and caches parsed tags.
var rules = validator.New()

// Rule passes values accepted by a go-playground validation tag such as
// "email", "hostname" or "min=3,max=10". Failures use kind rule.
// A malformed tag panics on first use.
func Rule(tag string, msg validino.Msg) validino.Validator {
	return rule(tag, "rule", "invalid value", msg)
}

// Email passes syntactically valid e-mail addresses.
func Email(msg validino.Msg) validino.Validator {
	check := rule("email", "email", "invalid email address", msg)
	return validino.Func(func(value any, c validino.Context) (any, error) {
		if _, ok := value.(string); !ok {
			return nil, fail(msg, "email", "invalid email address")
		}
		return check.Validate(value, c)
	})
}

func rule(tag, kind, fallback string, msg validino.Msg) validino.Validator {
	return validino.Func(func(value any, _ validino.Context) (any, error) {
		if value == nil {
			return nil, fail(msg, kind, fallback)
		}
		if err := rules.Var(value, tag); err != nil {
			return nil, fail(msg, kind, fallback)
		}
		return value, nil
	})
}
