package validino

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type bag []string

func (b bag) Len() int { return len(b) * 10 }

func TestClamp(t *testing.T) {
	v := Clamp(30, nil, Text("You are a pear"))
	assertPasses(t, v, 50)
	assertFails(t, v, 20, "You are a pear")

	v = Clamp(nil, 100, Messages{"min": "haha", "max": "kong"})
	assertPasses(t, v, 40)
	assertFails(t, v, 120, "kong")

	v = Clamp(nil, 100, Messages{"min": "haha"})
	assertFails(t, v, 120, "value above maximum")
}

func TestClamp_Range(t *testing.T) {
	v := Clamp(5, 10, nil)
	assertPasses(t, v, 5)
	assertPasses(t, v, 10)
	assertPasses(t, v, 7.5)
	assertPasses(t, v, int64(6))
	assertFails(t, v, 4, "value below minimum")
	assertFails(t, v, 10.01, "value above maximum")
	assertFails(t, v, "7", "unexpected type")
	assertFails(t, v, nil, "unexpected type")
}

func TestClamp_Strings(t *testing.T) {
	v := Clamp("b", "d", nil)
	assertPasses(t, v, "c")
	assertFails(t, v, "a", "value below minimum")
	assertFails(t, v, "e", "value above maximum")
}

func TestClamp_Unbounded(t *testing.T) {
	assertPasses(t, Clamp(nil, nil, nil), "anything")
}

func TestClampLength(t *testing.T) {
	v := ClampLength(3, NoLimit, Text("You are a pear"))
	assertPasses(t, v, "500")
	assertFails(t, v, "eh", "You are a pear")

	v = ClampLength(NoLimit, 10, Messages{"minlen": "haha", "maxlen": "kong"})
	assertPasses(t, v, "40")
	assertFails(t, v, "I told you that Ronald would eat it when you were in the bathroom", "kong")
}

func TestClampLength_Template(t *testing.T) {
	v := ClampLength(NoLimit, 30, Text("Enter less than {max}.  You entered {length}."))
	assertFails(t, v, strings.Repeat("*", 50), "Enter less than 30.  You entered 50.")

	v = ClampLength(2, NoLimit, Text("at least {min}, at most {max}"))
	assertFails(t, v, "a", "at least 2, at most None")
}

func TestClampLength_Kinds(t *testing.T) {
	v := ClampLength(1, 2, nil)
	assertPasses(t, v, []int{1, 2})
	assertPasses(t, v, map[string]int{"a": 1})
	assertPasses(t, v, "ΩΩ")
	assertFails(t, v, []int{}, "too short")
	assertFails(t, v, "abc", "too long")
	assertFails(t, v, 12, "unexpected type")
	assertFails(t, v, bag{"a", "b", "c"}, "too long")
}

func TestRender(t *testing.T) {
	assert.Equal(t, "fallback", render(nil, "k", "fallback", nil))
	assert.Equal(t, "custom", render(Text("custom"), "k", "fallback", nil))
	assert.Equal(t, "x=1 y=None {z}", render(Text("x={x} y={y} {z}"), "k", "", map[string]any{"x": 1, "y": nil}))
	assert.Equal(t, "fallback", render(Messages{"other": "no"}, "k", "fallback", nil))
}
