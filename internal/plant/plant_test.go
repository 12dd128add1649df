package plant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCool(t *testing.T) {
	// GIVEN
	p := New(70, DefaultCoefficients)

	// WHEN
	p.Cool(50, 50)

	// THEN
	assert.Less(t, p.Temperature(), 70.0)
	assert.InDelta(t, 62.5, p.Temperature(), 1e-9)
}

func TestCool_FanHasMoreEffect(t *testing.T) {
	// GIVEN
	fanOnly := New(70, DefaultCoefficients)
	pumpOnly := New(70, DefaultCoefficients)

	// WHEN
	fanOnly.Cool(0, 50)
	pumpOnly.Cool(50, 0)

	// THEN
	assert.Less(t, fanOnly.Temperature(), pumpOnly.Temperature())
}

func TestHeat(t *testing.T) {
	// GIVEN
	p := New(70, DefaultCoefficients)

	// WHEN
	p.Heat()

	// THEN
	assert.Equal(t, 71.0, p.Temperature())
}

func TestApply_ActuatorsOff(t *testing.T) {
	// GIVEN
	p := New(55, DefaultCoefficients)

	for _, expected := range []float64{56, 57, 58} {
		// WHEN
		result := p.Apply(0, 0)

		// THEN
		assert.Equal(t, expected, result)
	}
}

func TestApply(t *testing.T) {
	// GIVEN
	p := New(70, DefaultCoefficients)

	// WHEN
	result := p.Apply(50, 50)

	// THEN
	assert.InDelta(t, 63.5, result, 1e-9)
	assert.Equal(t, result, p.Temperature())
}

func TestApply_CustomCoefficients(t *testing.T) {
	// GIVEN
	p := New(40, Coefficients{Fan: 0.2, Pump: 0.1, HeatGain: 0.5})

	// WHEN
	result := p.Apply(10, 10)

	// THEN
	assert.InDelta(t, 37.5, result, 1e-9)
}

func TestSet(t *testing.T) {
	// GIVEN
	p := New(55, DefaultCoefficients)

	// WHEN
	p.Set(86)

	// THEN
	assert.Equal(t, 86.0, p.Temperature())
}
