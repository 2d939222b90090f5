package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
}

func TestStdDev(t *testing.T) {
	assert.Equal(t, 0.0, StdDev(nil))
	assert.Equal(t, 0.0, StdDev([]float64{5, 5, 5}))
	// Population std dev of {2, 4, 4, 4, 5, 5, 7, 9} is exactly 2.
	assert.InDelta(t, 2.0, StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-9)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.1, Clamp(-5, 0.1, 0.95))
	assert.Equal(t, 0.95, Clamp(2, 0.1, 0.95))
	assert.Equal(t, 0.5, Clamp(0.5, 0.1, 0.95))
}

func TestRoundInt(t *testing.T) {
	assert.Equal(t, 2, RoundInt(1.5))
	assert.Equal(t, 1, RoundInt(1.4))
	assert.Equal(t, -2, RoundInt(-1.5))
}
