package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercent(t *testing.T) {
	cases := []struct {
		name        string
		num, den    float64
		want        float64
	}{
		{"simple", 1, 4, 25.00},
		{"rounded", 1, 3, 33.33},
		{"rounded up", 2, 3, 66.67},
		{"full", 10, 10, 100.00},
		{"zero denominator", 5, 0, 0},
		{"negative denominator", 5, -1, 0},
		{"zero numerator", 0, 7, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Percent(c.num, c.den)
			assert.Equal(t, c.want, got)
			assert.False(t, math.IsNaN(got))
			assert.False(t, math.IsInf(got, 0))
		})
	}
}

func TestMean(t *testing.T) {
	assert.Equal(t, 2.5, Mean(5, 2))
	assert.Equal(t, 33.33, Mean(100, 3))
	assert.Equal(t, 0.0, Mean(100, 0))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 25.0, Round2(25.004))
	assert.Equal(t, 25.01, Round2(25.005))
	assert.Equal(t, -1.5, Round2(-1.499))
}
