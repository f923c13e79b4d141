package extra

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
	"github.com/zoobzio/validino"
)

// Phone parses phone numbers, reading national numbers in the given region
// (ISO 3166 code such as "NL"), and returns them in E.164 form.
func Phone(region string, msg validino.Msg) validino.Validator {
	return validino.Func(func(value any, _ validino.Context) (any, error) {
		s, ok := value.(string)
		if !ok {
			return nil, fail(msg, "phone", "invalid phone number")
		}
		number, err := phonenumbers.Parse(strings.TrimSpace(s), region)
		if err != nil || !phonenumbers.IsValidNumber(number) {
			return nil, fail(msg, "phone", "invalid phone number")
		}
		return phonenumbers.Format(number, phonenumbers.E164), nil
	})
}
