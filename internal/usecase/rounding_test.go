package usecase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTo(t *testing.T) {
	// variables keep the products out of exact constant arithmetic
	protein, ratio, fats := 0.3, 1.5, 0.2

	tests := []struct {
		name   string
		x      float64
		places int
		want   float64
	}{
		{"binary noise below a half", protein * ratio, 1, 0.5},
		{"plain half", 2.5, 0, 3},
		{"negative half away from zero", -2.5, 0, -3},
		{"two decimals", 2.695, 2, 2.7},
		{"already rounded", 3.6, 1, 3.6},
		{"noise above", fats * ratio, 1, 0.3},
		{"below half", 1.04, 1, 1.0},
		{"zero", 0, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, roundTo(tt.x, tt.places), 1e-9)
		})
	}
}

func TestRoundTo_NonFinite(t *testing.T) {
	assert.True(t, math.IsNaN(roundTo(math.NaN(), 1)))
	assert.True(t, math.IsInf(roundTo(math.Inf(1), 1), 1))
}

func TestRoundInt(t *testing.T) {
	assert.Equal(t, 2494, roundInt(2493.5625))
	assert.Equal(t, 1931, roundInt(1930.5))
	assert.Equal(t, -12, roundInt(-11.75))
	assert.Equal(t, 328, roundInt(328.25))
}
