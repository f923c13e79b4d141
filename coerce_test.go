package validino

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type presence bool

func (p presence) Truth() bool { return bool(p) }

func TestToInteger(t *testing.T) {
	v := ToInteger(Text("please enter an integer"))

	tests := []struct {
		in   any
		want int
	}{
		{"40", 40},
		{" 7 ", 7},
		{-3, -3},
		{int64(12), 12},
		{uint8(5), 5},
		{3.9, 3},
		{float32(2.5), 2},
		{true, 1},
	}
	for _, tt := range tests {
		out, err := v.Validate(tt.in, nil)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, out, tt.in)
	}

	for _, bad := range []any{"whack him until he screams", "12.5", "", nil, []int{1}} {
		_, err := v.Validate(bad, nil)
		requireUnpacked(t, err, map[string]any{RootKey: "please enter an integer"})
	}
}

func TestToInteger_Range(t *testing.T) {
	v := ToInteger(nil)

	out, err := v.Validate(int64(9007199254740993), nil)
	require.NoError(t, err)
	assert.Equal(t, 9007199254740993, out)

	out, err = v.Validate(uint64(math.MaxInt64), nil)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, out)

	for _, bad := range []any{uint64(1<<63 + 5), uint64(math.MaxUint64), math.NaN(), math.Inf(1), math.Inf(-1), 1e19, -1e19} {
		_, err := v.Validate(bad, nil)
		requireUnpacked(t, err, map[string]any{RootKey: "not an integer"})
	}

	_, err = ToInteger(Messages{"integer": "whole numbers only"}).Validate("x", nil)
	requireUnpacked(t, err, map[string]any{RootKey: "whole numbers only"})
}

func TestToBoolean(t *testing.T) {
	v := ToBoolean(false)
	truthy := []any{true, "True", "False", "true", "None", 1, struct{}{}, []bool{false}, "f", "no", presence(true)}
	falsy := []any{false, "", []any{}, map[string]any{}, 0, 0.0, nil, presence(false)}

	for _, in := range truthy {
		out, err := v.Validate(in, nil)
		require.NoError(t, err)
		assert.Equal(t, true, out, "%#v", in)
	}
	for _, in := range falsy {
		out, err := v.Validate(in, nil)
		require.NoError(t, err)
		assert.Equal(t, false, out, "%#v", in)
	}
}

func TestToBoolean_Fuzzy(t *testing.T) {
	v := ToBoolean(true)
	truthy := []any{true, "True", "true", "None", 1, struct{}{}, []bool{false}, "t", "y", "yes"}
	falsy := []any{false, "", []any{}, map[string]any{}, 0, nil, "False", "n", "NO"}

	for _, in := range truthy {
		out, _ := v.Validate(in, nil)
		assert.Equal(t, true, out, "%#v", in)
	}
	for _, in := range falsy {
		out, _ := v.Validate(in, nil)
		assert.Equal(t, false, out, "%#v", in)
	}
}

func TestToString(t *testing.T) {
	v := ToString("", Text("cats"))

	for in, want := range map[any]string{"brisbane": "brisbane", 1: "1", 2.5: "2.5", true: "true"} {
		out, err := v.Validate(in, nil)
		require.NoError(t, err)
		assert.Equal(t, want, out)
	}

	out, err := v.Validate(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "", out)

	out, err = v.Validate(struct{}{}, nil)
	require.NoError(t, err)
	assert.IsType(t, "", out)

	omega := "Ω my gawd"
	out, err = v.Validate([]byte(omega), nil)
	require.NoError(t, err)
	assert.Equal(t, omega, out)

	_, err = ToString("ascii", Text("cats")).Validate([]byte(omega), nil)
	requireUnpacked(t, err, map[string]any{RootKey: "cats"})

	_, err = v.Validate([]byte{0xff, 0xfe}, nil)
	requireUnpacked(t, err, map[string]any{RootKey: "cats"})
}

func TestToString_Latin1(t *testing.T) {
	out, err := ToString("iso-8859-1", nil).Validate([]byte{0x63, 0x61, 0x66, 0xe9}, nil)
	require.NoError(t, err)
	assert.Equal(t, "café", out)
}

func TestToString_UnknownEncoding(t *testing.T) {
	_, err := ToString("klingon", nil).Validate([]byte("x"), nil)
	assert.True(t, errors.Is(err, ErrUnknownEncoding))
	_, isInvalid := AsInvalid(err)
	assert.False(t, isInvalid)
}

func TestToBytes(t *testing.T) {
	v := ToBytes("", Text("cats"))

	out, err := v.Validate("parrots", nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("parrots"), out)

	for _, in := range []any{1, struct{}{}, nil} {
		out, err := v.Validate(in, nil)
		require.NoError(t, err)
		assert.IsType(t, []byte{}, out)
	}

	omega := "Ω my gawd"
	out, err = v.Validate(omega, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte(omega), out)

	_, err = ToBytes("ascii", Text("cats")).Validate(omega, nil)
	requireUnpacked(t, err, map[string]any{RootKey: "cats"})
}

func TestToScalar(t *testing.T) {
	v := ToScalar()
	for in, want := range map[string][2]any{
		"single": {[]int{40}, 40},
		"scalar": {40, 40},
		"range":  {[]any{0, 1, 2}, 0},
		"empty":  {[]string{}, nil},
		"string": {"abc", "abc"},
	} {
		out, err := v.Validate(want[0], nil)
		require.NoError(t, err)
		assert.Equal(t, want[1], out, in)
	}
}

func TestToList(t *testing.T) {
	v := ToList()

	out, _ := v.Validate([]string{"a", "b"}, nil)
	assert.Equal(t, []string{"a", "b"}, out)

	out, _ = v.Validate("a", nil)
	assert.Equal(t, []any{"a"}, out)

	out, _ = v.Validate([]byte("a"), nil)
	assert.Equal(t, []any{[]byte("a")}, out)
}

func TestDefault(t *testing.T) {
	v := Default("pong")

	out, _ := v.Validate(nil, nil)
	assert.Equal(t, "pong", out)

	out, _ = v.Validate("", nil)
	assert.Equal(t, "", out)
}

func TestStrip(t *testing.T) {
	out, _ := Strip.Validate("   foo   ", nil)
	assert.Equal(t, "foo", out)

	out, _ = Strip.Validate(nil, nil)
	assert.Nil(t, out)

	out, _ = Strip.Validate([]byte(" x\n"), nil)
	assert.Equal(t, []byte("x"), out)
}

func TestTranslate(t *testing.T) {
	v := Translate(map[string]bool{"y": true, "f": false}, Text("dong"))

	out, err := v.Validate("y", nil)
	require.NoError(t, err)
	assert.Equal(t, true, out)

	_, err = v.Validate("pod", nil)
	requireUnpacked(t, err, map[string]any{RootKey: "dong"})

	_, err = v.Validate(1, nil)
	requireUnpacked(t, err, map[string]any{RootKey: "dong"})
}
