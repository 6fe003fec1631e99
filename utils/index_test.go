package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateGrowth(t *testing.T) {
	assert.Equal(t, 100.0, CalculateGrowth(200, 100))
	assert.Equal(t, -50.0, CalculateGrowth(50, 100))
	assert.Equal(t, 0.0, CalculateGrowth(0, 0))
	assert.Equal(t, 100.0, CalculateGrowth(10, 0))
}

func TestGenerateQRCode(t *testing.T) {
	png, err := GenerateQRCode("BKG-a1b2c3d4", 128)
	assert.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG magic bytes
	assert.Equal(t, byte(0x89), png[0])
	assert.Equal(t, byte('P'), png[1])
}
