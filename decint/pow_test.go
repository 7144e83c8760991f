package decint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/philippag/compint/decint/scheduler"
)

func TestPow(t *testing.T) {
	got := Pow(FromInt64(2), 64)
	assert.Equal(t, "18446744073709551616", got.String())

	assert.Equal(t, "1", Pow(FromInt64(5), 0).String())
	assert.Equal(t, "5", Pow(FromInt64(5), 1).String())
}

func TestParallelPowMatchesPow(t *testing.T) {
	want := Pow(FromInt64(3), 1000)
	got := ParallelPow(FromInt64(3), 1000, scheduler.New(4))
	assert.Equal(t, want.String(), got.String())
}

func TestPowNegativeExponentPanics(t *testing.T) {
	assert.Panics(t, func() {
		Pow(FromInt64(2), -1)
	})
}
