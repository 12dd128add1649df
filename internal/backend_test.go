package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/coolant2go/coolant2go/internal/configuration"
	"github.com/coolant2go/coolant2go/internal/control_loop"
	"github.com/coolant2go/coolant2go/internal/pid"
	"github.com/coolant2go/coolant2go/internal/telemetry"
	"github.com/stretchr/testify/assert"
)

func createConfig(iterations int) configuration.Configuration {
	return configuration.Configuration{
		TargetTemperature:   60,
		InitialTemperature:  55,
		ShutdownTemperature: 85,
		Iterations:          iterations,
		Interval:            500 * time.Millisecond,
		Pump: configuration.ActuatorConfig{
			Range: configuration.Range{Min: 0, Max: 100},
			Pid:   pid.Gains{P: 1, I: 1, D: 0},
		},
		Fan: configuration.ActuatorConfig{
			Range: configuration.Range{Min: 0, Max: 100},
			Pid:   pid.Gains{P: 1, I: 1, D: 0},
		},
		Plant: configuration.PlantConfig{
			FanCoefficient:  0.1,
			PumpCoefficient: 0.05,
			HeatGain:        1,
		},
		Telemetry: configuration.TelemetryConfig{WindowSize: 10},
	}
}

func TestSimulateOffline(t *testing.T) {
	// GIVEN
	config := createConfig(45)

	// WHEN
	result, err := SimulateOffline(config)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, control_loop.StateCompleted, result.State)
	assert.Len(t, result.Records, 45)
	assert.Equal(t, 45, result.Summary.Iterations)
	assert.False(t, result.Summary.Shutdown)
	assert.Less(t, result.Summary.MaxTemperature, config.ShutdownTemperature)
	assert.InDelta(t, 60.0, result.Summary.FinalTemperature, 1.0)
	// only the very first computation happens without any time passing
	assert.Equal(t, 2, result.InvalidTimesteps)
}

func TestSimulateOffline_EmergencyShutdown(t *testing.T) {
	// GIVEN
	config := createConfig(0)
	config.InitialTemperature = 90

	// WHEN
	result, err := SimulateOffline(config)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, control_loop.StateEmergencyShutdown, result.State)
	assert.Len(t, result.Records, 1)
	assert.Equal(t, telemetry.EventShutdown, result.Records[0].Event)
	assert.Equal(t, 90.0, result.Records[0].Temperature)
	assert.Equal(t, 0.0, result.Records[0].PumpSignal)
	assert.Equal(t, 0.0, result.Records[0].FanSignal)
	assert.True(t, result.Summary.Shutdown)
}

func TestSimulateOffline_Export(t *testing.T) {
	// GIVEN
	config := createConfig(3)
	config.Telemetry.Export = filepath.Join(t.TempDir(), "export", "run.json")

	// WHEN
	_, err := SimulateOffline(config)

	// THEN
	assert.NoError(t, err)
	data, err := os.ReadFile(config.Telemetry.Export)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"iteration": 3`)
}

func TestSimulateOffline_InvalidConfig(t *testing.T) {
	// GIVEN
	config := createConfig(3)
	config.Pump.Range = configuration.Range{Min: 10, Max: 0}

	// WHEN
	_, err := SimulateOffline(config)

	// THEN
	assert.ErrorIs(t, err, control_loop.ErrInvalidConfig)
}

func TestRunSimulation(t *testing.T) {
	// GIVEN
	config := createConfig(5)
	config.Interval = time.Millisecond

	// WHEN
	result, err := RunSimulation(config)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, control_loop.StateCompleted, result.State)
	assert.Len(t, result.Records, 5)
	assert.Equal(t, []float64{56, 57, 58, 59, 60}, temperatures(result.Records))
}

func TestRunSimulation_EmergencyShutdown(t *testing.T) {
	// GIVEN
	config := createConfig(0)
	config.InitialTemperature = 85

	// WHEN
	result, err := RunSimulation(config)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, control_loop.StateEmergencyShutdown, result.State)
	assert.True(t, result.Summary.Shutdown)
}

func temperatures(records []telemetry.Record) []float64 {
	result := make([]float64, len(records))
	for idx, record := range records {
		result[idx] = record.Temperature
	}
	return result
}
