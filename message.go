package validino

import (
	"fmt"
	"strings"
)

// Msg selects the message template for a failure kind.
// A nil Msg uses each validator's built-in default.
type Msg interface {
	// Lookup returns the template for kind, or fallback when none applies.
	Lookup(kind, fallback string) string
}

// Text uses the same template for every failure kind.
type Text string

// Lookup returns t.
func (t Text) Lookup(_, _ string) string {
	return string(t)
}

// Messages maps failure kinds to templates. Missing kinds use the default.
type Messages map[string]string

// Lookup returns the template registered for kind, or fallback.
func (m Messages) Lookup(kind, fallback string) string {
	if tmpl, ok := m[kind]; ok {
		return tmpl
	}
	return fallback
}

// render resolves a template and interpolates {name} placeholders.
func render(msg Msg, kind, fallback string, params map[string]any) string {
	tmpl := fallback
	if msg != nil {
		tmpl = msg.Lookup(kind, fallback)
	}
	if len(params) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}

	pairs := make([]string, 0, len(params)*2)
	for _, k := range sortedKeys(params) {
		pairs = append(pairs, "{"+k+"}", formatParam(params[k]))
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

func formatParam(v any) string {
	if v == nil {
		return "None"
	}
	return fmt.Sprint(v)
}

// fail builds a root failure from a message specification.
func fail(msg Msg, kind, fallback string) *Invalid {
	return Fail(render(msg, kind, fallback, nil))
}
