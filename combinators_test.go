package validino

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inContext passes values that are keys of the ambient context.
func inContext() Validator {
	return ContextValidator(func(value any, c Context) (any, error) {
		s, _ := value.(string)
		if _, ok := c[s]; !ok {
			return nil, NewInvalid(nil)
		}
		return value, nil
	})
}

func requireUnpacked(t *testing.T, err error, want map[string]any) {
	t.Helper()
	inv, ok := AsInvalid(err)
	require.True(t, ok, "expected *Invalid, got %v", err)
	assert.Equal(t, want, inv.UnpackErrors())
}

func TestAllOf(t *testing.T) {
	v := AllOf(ToString("", Text("foo")), NotEmpty(Text("bar")))

	out, err := v.Validate("bob", nil)
	require.NoError(t, err)
	assert.Equal(t, "bob", out)

	_, err = v.Validate("", nil)
	requireUnpacked(t, err, map[string]any{RootKey: "bar"})

	v = AllOf(inContext(), NotEmpty(Text("bar")))
	out, err = v.Validate("bob", Context{"bob": 1})
	require.NoError(t, err)
	assert.Equal(t, "bob", out)
}

func TestAllOf_Pipeline(t *testing.T) {
	messages := Messages{
		"integer": "not an integer",
		"belongs": "invalid choice",
		"min":     "too small",
		"max":     "too big",
	}
	var multiples []int
	for i := 4; i < 100; i += 4 {
		multiples = append(multiples, i)
	}
	v := Chain{
		Default(40),
		Strip,
		ToInteger(messages),
		Belongs(multiples, messages),
		Clamp(20, 50, messages),
	}

	tests := []struct {
		in   any
		want any
		err  string
	}{
		{in: nil, want: 40},
		{in: "40", want: 40},
		{in: "44  ", want: 44},
		{in: " prick ", err: "not an integer"},
		{in: " 41  ", err: "invalid choice"},
		{in: "96", err: "too big"},
		{in: "8", err: "too small"},
	}
	for _, tt := range tests {
		out, err := v.Validate(tt.in, nil)
		if tt.err != "" {
			requireUnpacked(t, err, map[string]any{RootKey: tt.err})
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, out)
	}
}

func TestAllOf_Empty(t *testing.T) {
	out, err := AllOf().Validate("x", nil)
	require.NoError(t, err)
	assert.Equal(t, "x", out)
}

func TestEither(t *testing.T) {
	msg := Text("please enter an integer")
	v := Either(Empty(nil), ToInteger(msg))

	out, err := v.Validate("", nil)
	require.NoError(t, err)
	assert.Equal(t, "", out)

	out, err = v.Validate("40", nil)
	require.NoError(t, err)
	assert.Equal(t, 40, out)

	_, err = v.Validate("bonk", nil)
	requireUnpacked(t, err, map[string]any{RootKey: "please enter an integer"})

	v = Either(inContext(), ToInteger(msg))
	out, err = v.Validate("foo", Context{"foo": true})
	require.NoError(t, err)
	assert.Equal(t, "foo", out)
}

func TestEither_LastErrorWins(t *testing.T) {
	v := Either(failWith("first"), failWith("second"))
	_, err := v.Validate("x", nil)
	requireUnpacked(t, err, map[string]any{RootKey: "second"})
}

func TestEither_Empty(t *testing.T) {
	out, err := Either().Validate("x", nil)
	require.NoError(t, err)
	assert.Equal(t, "x", out)
}

// failWith always fails with msg.
func failWith(msg string) Validator {
	return Func(func(any, Context) (any, error) {
		return nil, Fail(msg)
	})
}

func TestCheck(t *testing.T) {
	addZ := Func(func(value any, _ Context) (any, error) {
		value.(map[string]any)["z"] = 300
		return nil, nil
	})
	size := func(n int) Validator {
		return Func(func(value any, _ Context) (any, error) {
			if len(value.(map[string]any)) != n {
				return nil, Fail("wrong size")
			}
			return value, nil
		})
	}

	d := map[string]any{"x": 5, "y": 100}
	out, err := Check(addZ, size(3)).Validate(d, nil)
	require.NoError(t, err)
	assert.Equal(t, 300, d["z"])
	out.(map[string]any)["w"] = 1
	assert.Equal(t, 1, d["w"], "Check returns the same mapping")

	_, err = Check(size(99)).Validate(d, nil)
	requireUnpacked(t, err, map[string]any{RootKey: "wrong size"})
}

func TestExcursion(t *testing.T) {
	local := Transform(func(value any) any {
		user, _, _ := strings.Cut(value.(string), "@")
		return user
	})
	v := Excursion(local, Belongs([]string{"gadzooks", "willy"}, Text("pancreatic")))

	out, err := v.Validate("gadzooks@wonko.com", nil)
	require.NoError(t, err)
	assert.Equal(t, "gadzooks@wonko.com", out)

	_, err = v.Validate("hieratic impulses", nil)
	requireUnpacked(t, err, map[string]any{RootKey: "pancreatic"})
}

func TestExcursion_Mutation(t *testing.T) {
	add := Func(func(value any, _ Context) (any, error) {
		value.(map[string]bool)["foo"] = true
		return value, nil
	})
	data := map[string]bool{"bar": true}

	out, err := Excursion(add).Validate(data, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"bar": true}, out)
	assert.Equal(t, map[string]bool{"bar": true, "foo": true}, data)
}

func TestOnField(t *testing.T) {
	v := OnField("email", NotEmpty(nil))
	_, err := v.Validate("", nil)
	inv, ok := AsInvalid(err)
	require.True(t, ok)
	name, has := inv.Field()
	assert.True(t, has)
	assert.Equal(t, "email", name)

	boom := errors.New("boom")
	_, err = OnField("x", Func(func(any, Context) (any, error) { return nil, boom })).Validate(1, nil)
	assert.Same(t, boom, err)
}

func TestChainAndTransform(t *testing.T) {
	upper := Transform(func(v any) any { return strings.ToUpper(v.(string)) })
	out, err := Chain{Strip, upper}.Validate("  abc ", nil)
	require.NoError(t, err)
	assert.Equal(t, "ABC", out)
}
