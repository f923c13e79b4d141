package validino

import (
	"fmt"

	"github.com/google/uuid"
)

// UUID accepts anything whose string form parses as a UUID and returns the
// canonical hyphenated form. With withDefault set, falsy values are replaced
// by a fresh time-based UUID instead of failing.
func UUID(msg Msg, withDefault bool) Validator {
	return Func(func(value any, _ Context) (any, error) {
		var s string
		switch v := value.(type) {
		case uuid.UUID:
			return v.String(), nil
		case string:
			s = v
		case nil:
			s = ""
		default:
			s = fmt.Sprint(v)
		}

		id, err := uuid.Parse(s)
		if err == nil {
			return id.String(), nil
		}
		if withDefault && !truthy(value) {
			fresh, err := uuid.NewUUID()
			if err != nil {
				fresh = uuid.New()
			}
			return fresh.String(), nil
		}
		return nil, fail(msg, "uuid", "invalid uuid")
	})
}
