package asciiint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string, base int) *AsciiInt {
	t.Helper()
	z, err := Parse(s, base)
	require.NoError(t, err)
	return z
}

func TestParseDecimalRoundTrip(t *testing.T) {
	cases := []string{"0", "1", "-1", "9", "255", "-255", "123456789123456789"}
	for _, s := range cases {
		z := mustParse(t, s, 10)
		assert.Equal(t, s, z.String(), s)
	}
}

func TestParseHexRoundTrip(t *testing.T) {
	z := mustParse(t, "ff", 16)
	assert.Equal(t, "ff", z.String())
	assert.Equal(t, 1, z.Sign())
}

func TestParseZeroSignNormalizes(t *testing.T) {
	z := mustParse(t, "-0", 10)
	assert.Equal(t, "0", z.String())
	assert.Equal(t, 0, z.Sign())
}

func TestParseRejectsBadDigitOrBase(t *testing.T) {
	_, err := Parse("9", 8) // 9 invalid in base 8
	assert.Error(t, err)
	_, err = Parse("5", 1)
	assert.Error(t, err)
	_, err = Parse("", 10)
	assert.Error(t, err)
}

func TestAddSubtract(t *testing.T) {
	a := mustParse(t, "250", 10)
	b := mustParse(t, "10", 10)
	assert.Equal(t, "260", Add(a, b).String())
	assert.Equal(t, "240", Subtract(a, b).String())
	assert.Equal(t, "-240", Subtract(b, a).String())
}

func TestAddSubtractHexCarry(t *testing.T) {
	a := mustParse(t, "ff", 16)
	b := mustParse(t, "1", 16)
	assert.Equal(t, "100", Add(a, b).String())
}

func TestAddInPlaceClearsHexSafe(t *testing.T) {
	z := FromHexBytes([]byte{0xde, 0xad})
	z.AddInPlace(FromInt64(16, 1))
	_, err := z.ToHexByteArray()
	assert.Error(t, err)
}

func TestCmp(t *testing.T) {
	assert.Equal(t, -1, mustParse(t, "1", 10).Cmp(mustParse(t, "2", 10)))
	assert.Equal(t, 1, mustParse(t, "12", 16).Cmp(mustParse(t, "2", 16)))
	assert.True(t, mustParse(t, "42", 10).Equal(mustParse(t, "42", 10)))
}

func TestMultiplySimpleAndKaratsubaAgree(t *testing.T) {
	a := mustParse(t, "123456789", 10)
	b := mustParse(t, "987654321", 10)
	want := MultiplySimple(a, b)
	got := MultiplyKaratsuba(a, b, 2)
	assert.Equal(t, want.String(), got.String())
}

func TestLenAndCharAt(t *testing.T) {
	z := mustParse(t, "ff", 16)
	require.Equal(t, 2, z.Len())
	c, err := z.CharAt(0)
	require.NoError(t, err)
	assert.Equal(t, byte('f'), c)
}

func TestHexRoundTrip(t *testing.T) {
	orig := []byte{0x01, 0x23, 0xab, 0xcd}
	z := FromHexBytes(orig)
	got, err := z.ToHexByteArray()
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

func TestHexRoundTripLeadingZeroByte(t *testing.T) {
	orig := []byte{0x00, 0xab}
	z := FromHexBytes(orig)
	got, err := z.ToHexByteArray()
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

func TestHexRoundTripAllZeroBytes(t *testing.T) {
	orig := []byte{0x00, 0x00}
	z := FromHexBytes(orig)
	assert.True(t, z.IsZero())
	got, err := z.ToHexByteArray()
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

func TestHexRoundTripFailsForNonHexBase(t *testing.T) {
	z := mustParse(t, "42", 10)
	_, err := z.ToHexByteArray()
	assert.Error(t, err)
}
