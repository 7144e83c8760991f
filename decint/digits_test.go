package decint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLenAndCharAt(t *testing.T) {
	z := mustParse(t, "-123456789123456789123")
	require.Equal(t, 21, z.Len())

	want := "123456789123456789123"
	for i := 0; i < z.Len(); i++ {
		c, err := z.CharAt(i)
		require.NoError(t, err)
		assert.Equal(t, want[i], c, "digit %d", i)
	}
}

func TestCharAtOutOfRange(t *testing.T) {
	z := mustParse(t, "42")
	_, err := z.CharAt(-1)
	assert.Error(t, err)
	_, err = z.CharAt(2)
	assert.Error(t, err)
}

func TestCharAtZero(t *testing.T) {
	z := Zero()
	require.Equal(t, 1, z.Len())
	c, err := z.CharAt(0)
	require.NoError(t, err)
	assert.Equal(t, byte('0'), c)
}
