package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/validino"
	"github.com/zoobzio/validino/bson"
	"github.com/zoobzio/validino/json"
	"github.com/zoobzio/validino/msgpack"
	vtest "github.com/zoobzio/validino/testing"
	"github.com/zoobzio/validino/yaml"
)

func codecs() map[string]validino.Codec {
	return map[string]validino.Codec{
		"json":    json.New(),
		"yaml":    yaml.New(),
		"msgpack": msgpack.New(),
		"bson":    bson.New(),
	}
}

func TestValidateBytes_Valid(t *testing.T) {
	for name, c := range codecs() {
		t.Run(name, func(t *testing.T) {
			data, err := c.Marshal(vtest.ValidSignup())
			require.NoError(t, err)

			out, err := vtest.SignupSchema().ValidateBytes(context.Background(), c, data, nil)
			require.NoError(t, err)
			assert.Equal(t, map[string]any{
				"email":    "ann@example.com",
				"password": "correct horse",
				"confirm":  "correct horse",
				"age":      30,
				"plan":     "free",
			}, out)
		})
	}
}

func TestValidateBytes_Invalid(t *testing.T) {
	input := map[string]any{
		"email":    "ann@example.com",
		"password": "correct horse",
		"confirm":  "battery staple",
		"age":      17,
	}
	want := map[string]any{
		"":        vtest.SchemaError,
		"age":     "too young",
		"confirm": "passwords differ",
	}

	for name, c := range codecs() {
		t.Run(name, func(t *testing.T) {
			data, err := c.Marshal(input)
			require.NoError(t, err)

			_, err = vtest.SignupSchema().ValidateBytes(context.Background(), c, data, nil)
			vtest.RequireInvalid(t, err, want)
		})
	}
}

// Error payloads round-trip through every codec that accepts an empty key.
func TestEncodeErrors_RoundTrip(t *testing.T) {
	_, err := vtest.SignupSchema().Validate(map[string]any{"age": "x"}, nil)
	inv, ok := validino.AsInvalid(err)
	require.True(t, ok)

	for _, name := range []string{"json", "yaml", "msgpack"} {
		c := codecs()[name]
		t.Run(name, func(t *testing.T) {
			data, err := validino.EncodeErrors(c, inv)
			require.NoError(t, err)

			doc, err := validino.Decode(c, data)
			require.NoError(t, err)
			assert.Equal(t, inv.UnpackErrors(), doc)
		})
	}
}

func TestBind_FromJSON(t *testing.T) {
	doc, err := validino.Decode(json.New(), []byte(`{"email":"ann@example.com","password":"correct horse","confirm":"correct horse","age":40,"plan":"pro"}`))
	require.NoError(t, err)

	user, err := validino.Bind[vtest.Signup](vtest.SignupSchema(), doc, nil)
	require.NoError(t, err)
	assert.Equal(t, vtest.Signup{
		Email:    "ann@example.com",
		Password: "4104d36f8da2c254349f85836793ebe029e0c957063a34c91c2e9203187b5631",
		Confirm:  "correct horse",
		Age:      40,
		Plan:     "pro",
	}, user)
}
