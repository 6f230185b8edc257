package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"data-accessor/utils"
)

func TestIsInRange(t *testing.T) {
	assert.True(t, utils.IsInRange(1, 1, 3))
	assert.True(t, utils.IsInRange(1, 3, 3))
	assert.False(t, utils.IsInRange(1, 4, 3))
	assert.False(t, utils.IsInRange(0.5, 0.25, 1))
}

func TestUnpack2(t *testing.T) {
	a, b := utils.Unpack2(strings.SplitN("string=boolean", "=", 2))
	assert.Equal(t, "string", a)
	assert.Equal(t, "boolean", b)

	a, b = utils.Unpack2([]string{"only"})
	assert.Equal(t, "only", a)
	assert.Empty(t, b)

	a, b = utils.Unpack2([]string(nil))
	assert.Empty(t, a)
	assert.Empty(t, b)
}

func pair() (string, int) {
	return "answer", 42
}

func TestSecond(t *testing.T) {
	assert.Equal(t, 42, utils.Second(pair()))
}
