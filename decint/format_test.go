package decint

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVerbs(t *testing.T) {
	z := mustParse(t, "-42000000001")
	assert.Equal(t, "-42000000001", fmt.Sprintf("%v", z))
	assert.Equal(t, "-42000000001", fmt.Sprintf("%s", z))
	assert.Equal(t, "-42000000001", fmt.Sprintf("%d", z))
}

func TestFormatUnsupportedVerb(t *testing.T) {
	z := mustParse(t, "7")
	got := fmt.Sprintf("%x", z)
	assert.Contains(t, got, "7")
}

func TestAppendIntoExistingBuffer(t *testing.T) {
	z := mustParse(t, "123")
	buf := []byte("prefix:")
	buf = z.Append(buf)
	assert.Equal(t, "prefix:123", string(buf))
}
