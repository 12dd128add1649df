package telemetry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlot_Empty(t *testing.T) {
	assert.Equal(t, "", Plot(nil, 60, false))
}

func TestPlot(t *testing.T) {
	// GIVEN
	var records []Record
	for idx, temperature := range []float64{56, 57, 58, 59, 60, 61, 62, 63, 63.85, 64.28} {
		records = append(records, Record{
			Iteration:   idx + 1,
			Temperature: temperature,
			PumpSignal:  float64(idx),
			FanSignal:   float64(idx),
		})
	}

	// WHEN
	result := Plot(records, 60, false)

	// THEN
	assert.Contains(t, result, "Coolant temperature (red) and target (green)")
	assert.Contains(t, result, "Pump (blue) and fan (yellow) signal")
	assert.NotContains(t, result, "\x1b[")
	assert.Greater(t, len(strings.Split(result, "\n")), 2*plotHeight)
}

func TestPlot_Color(t *testing.T) {
	// GIVEN
	records := []Record{
		{Iteration: 1, Temperature: 56},
		{Iteration: 2, Temperature: 57, PumpSignal: 1, FanSignal: 2},
	}

	// WHEN
	result := Plot(records, 60, true)

	// THEN
	assert.Contains(t, result, "\x1b[")
}
