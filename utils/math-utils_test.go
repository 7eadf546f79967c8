package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 2, Clamp(2, 256, -5))
	assert.Equal(t, 256, Clamp(2, 256, 1000))
	assert.Equal(t, 40, Clamp(2, 256, 40))
	assert.Equal(t, 2, Clamp(2, 256, 2))
	assert.Equal(t, 256, Clamp(2, 256, 256))
}
