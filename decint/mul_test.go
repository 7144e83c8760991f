package decint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philippag/compint/decint/scheduler"
)

func TestMultiplySimpleSmall(t *testing.T) {
	cases := []struct{ x, y, want string }{
		{"0", "12345", "0"},
		{"2", "3", "6"},
		{"-2", "3", "-6"},
		{"-2", "-3", "6"},
		{"999999999", "999999999", "999999998000000001"},
	}
	for _, c := range cases {
		got := MultiplySimple(mustParse(t, c.x), mustParse(t, c.y))
		assert.Equal(t, c.want, got.String(), "%s*%s", c.x, c.y)
	}
}

// TestMultiplyKaratsubaMatchesSimple cross-checks the Karatsuba path
// against the schoolbook baseline for operands spanning the threshold
// boundary: every multiplicative engine must agree numerically.
func TestMultiplyKaratsubaMatchesSimple(t *testing.T) {
	a := strings.Repeat("123456789", 40)  // 360 digits
	b := strings.Repeat("987654321", 25)  // 225 digits
	x := mustParse(t, a)
	y := mustParse(t, b)

	want := MultiplySimple(x, y)
	got := MultiplyKaratsuba(x, y, 4) // small threshold forces real recursion
	assert.Equal(t, want.String(), got.String())

	// with a threshold larger than either operand, it must degrade to
	// schoolbook and still agree.
	got2 := MultiplyKaratsuba(x, y, 1000)
	assert.Equal(t, want.String(), got2.String())
}

func TestParallelMultiplyKaratsubaMatchesSequential(t *testing.T) {
	a := strings.Repeat("314159265", 60)
	b := strings.Repeat("271828182", 45)
	x := mustParse(t, a)
	y := mustParse(t, b)

	want := MultiplyKaratsuba(x, y, 8)
	pool := scheduler.New(4)
	got := ParallelMultiplyKaratsuba(x, y, 8, 3, pool)
	assert.Equal(t, want.String(), got.String())
}

func TestMultiplyDispatcherUsesInstalledPool(t *testing.T) {
	old := ForkJoinPool()
	oldT := KaratsubaThreshold()
	t.Cleanup(func() {
		SetForkJoinPool(old)
		SetKaratsubaThreshold(oldT)
	})

	SetForkJoinPool(scheduler.New(2))
	SetKaratsubaThreshold(4)

	a := strings.Repeat("123456789", 30)
	b := strings.Repeat("987654321", 30)
	x := mustParse(t, a)
	y := mustParse(t, b)

	want := MultiplySimple(x, y)
	got := Multiply(x, y)
	assert.Equal(t, want.String(), got.String())
}

func TestMultiplyIdentityAndZero(t *testing.T) {
	x := mustParse(t, "123456789123456789")
	one := FromInt64(1)
	require.Equal(t, x.String(), Multiply(x, one).String())
	assert.Equal(t, "0", Multiply(x, Zero()).String())
}
