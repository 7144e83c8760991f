package decint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *DecInt {
	t.Helper()
	z, err := Parse(s)
	require.NoError(t, err)
	return z
}

func TestAdd(t *testing.T) {
	cases := []struct{ x, y, want string }{
		{"1", "2", "3"},
		{"999999999", "1", "1000000000"},
		{"-5", "3", "-2"},
		{"5", "-3", "2"},
		{"-5", "-3", "-8"},
		{"0", "0", "0"},
		{"123456789123456789123456789", "1", "123456789123456789123456790"},
	}
	for _, c := range cases {
		got := Add(mustParse(t, c.x), mustParse(t, c.y))
		assert.Equal(t, c.want, got.String(), "%s+%s", c.x, c.y)
	}
}

func TestSubtract(t *testing.T) {
	cases := []struct{ x, y, want string }{
		{"5", "3", "2"},
		{"3", "5", "-2"},
		{"1000000000", "1", "999999999"},
		{"-5", "-3", "-2"},
		{"0", "5", "-5"},
	}
	for _, c := range cases {
		got := Subtract(mustParse(t, c.x), mustParse(t, c.y))
		assert.Equal(t, c.want, got.String(), "%s-%s", c.x, c.y)
	}
}

func TestAddInPlace(t *testing.T) {
	z := mustParse(t, "10")
	z.AddInPlace(mustParse(t, "5"))
	assert.Equal(t, "15", z.String())
}

func TestIncrementDecrementInPlace(t *testing.T) {
	z := mustParse(t, "999999999")
	z.IncrementInPlace()
	assert.Equal(t, "1000000000", z.String())
	z.DecrementInPlace()
	assert.Equal(t, "999999999", z.String())
}

func TestCmp(t *testing.T) {
	assert.Equal(t, -1, mustParse(t, "1").Cmp(mustParse(t, "2")))
	assert.Equal(t, 1, mustParse(t, "2").Cmp(mustParse(t, "1")))
	assert.Equal(t, 0, mustParse(t, "-0").Cmp(mustParse(t, "0")))
	assert.Equal(t, -1, mustParse(t, "-1").Cmp(mustParse(t, "1")))
	assert.True(t, mustParse(t, "42").Equal(mustParse(t, "42")))
}
