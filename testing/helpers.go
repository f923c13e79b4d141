// Package testing provides test utilities for validino.
package testing

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zoobzio/validino"
)

// Unpack returns the unpacked errors of a validation failure, or nil when
// err is not an *Invalid.
func Unpack(err error) map[string]any {
	inv, ok := validino.AsInvalid(err)
	if !ok {
		return nil
	}
	return inv.UnpackErrors()
}

// RequireInvalid fails the test unless err is an *Invalid whose unpacked
// errors equal want.
func RequireInvalid(tb testing.TB, err error, want map[string]any) {
	tb.Helper()
	inv, ok := validino.AsInvalid(err)
	require.True(tb, ok, "expected *validino.Invalid, got %T: %v", err, err)
	require.Equal(tb, want, inv.UnpackErrors())
}

// RequireRoot is RequireInvalid for a failure with a single root message.
func RequireRoot(tb testing.TB, err error, msg string) {
	tb.Helper()
	RequireInvalid(tb, err, map[string]any{validino.RootKey: msg})
}

// SchemaError is the default schema-level summary message.
const SchemaError = "Problems were found in the submitted data."

// Signup is a bindable fixture matching SignupSchema.
type Signup struct {
	Email    string `json:"email"`
	Password string `json:"password" hash:"sha256"`
	Confirm  string `json:"confirm"`
	Age      int    `json:"age"`
	Plan     string `json:"plan"`
}

// SignupSchema returns a schema exercising coercion, bounds, membership and
// a cross-field group.
func SignupSchema() *validino.Schema {
	return validino.NewSchema(map[string]validino.Validator{
		"email": validino.Chain{
			validino.Strip,
			validino.Regex(`[^@\s]+@[^@\s]+\.[a-z]+$`, validino.Text("invalid email")),
		},
		"password": validino.ClampLength(8, validino.NoLimit, validino.Text("at least {min} characters")),
		"confirm":  validino.ClampLength(8, validino.NoLimit, validino.Text("at least {min} characters")),
		"age": validino.Chain{
			validino.ToInteger(validino.Text("age must be a number")),
			validino.Clamp(18, 130, validino.Messages{"min": "too young", "max": "too old"}),
		},
		"plan": validino.Chain{
			validino.Default("free"),
			validino.Belongs([]string{"free", "pro"}, nil),
		},
	},
		validino.WithGroup(
			validino.FieldsEqual(validino.Text("passwords differ"), validino.ReportAs("confirm")),
			"confirm", "password",
		),
	)
}

// ValidSignup returns raw input that SignupSchema accepts.
func ValidSignup() map[string]any {
	return map[string]any{
		"email":    " ann@example.com ",
		"password": "correct horse",
		"confirm":  "correct horse",
		"age":      "30",
	}
}
