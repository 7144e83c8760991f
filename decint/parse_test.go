package decint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	cases := []string{
		"0", "1", "-1", "9", "999999999", "1000000000",
		"123456789123456789", "-123456789123456789",
		"00042", "+7",
	}
	for _, s := range cases {
		z, err := Parse(s)
		require.NoError(t, err, s)
		want := s
		if want[0] == '+' {
			want = want[1:]
		}
		// leading zeros and "+0"/"-0" normalize away.
		if want == "00042" {
			want = "42"
		}
		assert.Equal(t, want, z.String(), s)
	}
}

func TestParseZeroSignNormalizes(t *testing.T) {
	z, err := Parse("-0")
	require.NoError(t, err)
	assert.Equal(t, "0", z.String())
	assert.Equal(t, 0, z.Sign())
}

func TestParseScientific(t *testing.T) {
	z, err := Parse("12e3")
	require.NoError(t, err)
	assert.Equal(t, "12000", z.String())

	z, err = Parse("-5E2")
	require.NoError(t, err)
	assert.Equal(t, "-500", z.String())
}

func TestParseScientificNegativeExponentExact(t *testing.T) {
	z, err := Parse("1200e-2")
	require.NoError(t, err)
	assert.Equal(t, "12", z.String())
}

func TestParseScientificNegativeExponentInexactRejected(t *testing.T) {
	_, err := Parse("123e-2")
	assert.Error(t, err)
}

func TestParseWithOptionsAllowsFractionalTruncation(t *testing.T) {
	z, err := ParseWithOptions("123e-2", true)
	require.NoError(t, err)
	assert.Equal(t, "1", z.String())
}

func TestParseRejectsMalformedInput(t *testing.T) {
	for _, s := range []string{"", "abc", "1.5", "-", "1e", "1e+"} {
		_, err := Parse(s)
		assert.Error(t, err, s)
	}
}

func TestFromScientific(t *testing.T) {
	z, err := FromScientific("42", 3)
	require.NoError(t, err)
	assert.Equal(t, "42000", z.String())

	z, err = FromScientific("-7", 0)
	require.NoError(t, err)
	assert.Equal(t, "-7", z.String())
}
