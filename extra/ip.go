// Package extra provides validators commonly used in web applications:
// addresses, URLs, e-mail and phone numbers.
package extra

import (
	"net/netip"

	"github.com/zoobzio/validino"
)

// IP passes dotted-quad IPv4 addresses. Leading zeros and IPv6 forms fail.
func IP(msg validino.Msg) validino.Validator {
	return validino.Func(func(value any, _ validino.Context) (any, error) {
		s, ok := value.(string)
		if !ok {
			return nil, fail(msg, "ip", "invalid ip address")
		}
		addr, err := netip.ParseAddr(s)
		if err != nil || !addr.Is4() {
			return nil, fail(msg, "ip", "invalid ip address")
		}
		return value, nil
	})
}

func fail(msg validino.Msg, kind, fallback string) *validino.Invalid {
	if msg != nil {
		return validino.Fail(msg.Lookup(kind, fallback))
	}
	return validino.Fail(fallback)
}
