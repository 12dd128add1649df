package statistics

import (
	"strings"
	"testing"

	"github.com/coolant2go/coolant2go/internal/telemetry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestLoopCollector(t *testing.T) {
	// GIVEN
	recorder := telemetry.NewRecorder(10, 55)
	_ = recorder.Handle(telemetry.Record{Iteration: 1, Temperature: 64.5, PumpSignal: 2, FanSignal: 3, PumpSetpoint: 60, FanSetpoint: 62})
	_ = recorder.Handle(telemetry.Record{Iteration: 2, Temperature: 63, PumpSignal: 1.5, FanSignal: 2.5, PumpSetpoint: 60, FanSetpoint: 62})
	collector := NewLoopCollector(recorder)

	expected := `
# HELP coolant2go_loop_iterations Number of iterations run so far
# TYPE coolant2go_loop_iterations counter
coolant2go_loop_iterations 2
# HELP coolant2go_loop_setpoint Current setpoint of the actuator's controller
# TYPE coolant2go_loop_setpoint gauge
coolant2go_loop_setpoint{actuator="fan"} 62
coolant2go_loop_setpoint{actuator="pump"} 60
# HELP coolant2go_loop_shutdown 1 if the emergency shutdown was triggered, 0 otherwise
# TYPE coolant2go_loop_shutdown gauge
coolant2go_loop_shutdown 0
# HELP coolant2go_loop_signal Current (clamped) signal of the actuator
# TYPE coolant2go_loop_signal gauge
coolant2go_loop_signal{actuator="fan"} 2.5
coolant2go_loop_signal{actuator="pump"} 1.5
# HELP coolant2go_loop_temperature Current coolant temperature
# TYPE coolant2go_loop_temperature gauge
coolant2go_loop_temperature 63
# HELP coolant2go_loop_temperature_max Highest coolant temperature of this run
# TYPE coolant2go_loop_temperature_max gauge
coolant2go_loop_temperature_max 64.5
`

	// WHEN
	err := testutil.CollectAndCompare(collector, strings.NewReader(expected))

	// THEN
	assert.NoError(t, err)
}

func TestLoopCollector_Shutdown(t *testing.T) {
	// GIVEN
	recorder := telemetry.NewRecorder(10, 55)
	_ = recorder.Handle(telemetry.Record{Iteration: 1, Temperature: 86, Event: telemetry.EventShutdown})
	collector := NewLoopCollector(recorder)

	// WHEN
	err := testutil.CollectAndCompare(collector, strings.NewReader(`
# HELP coolant2go_loop_shutdown 1 if the emergency shutdown was triggered, 0 otherwise
# TYPE coolant2go_loop_shutdown gauge
coolant2go_loop_shutdown 1
`), "coolant2go_loop_shutdown")

	// THEN
	assert.NoError(t, err)
}

func TestRegister(t *testing.T) {
	// GIVEN
	registry := NewRegistry()
	collector := NewLoopCollector(telemetry.NewRecorder(10, 55))

	// WHEN
	Register(registry, collector)

	// THEN
	assert.Panics(t, func() { Register(registry, collector) })
	count, err := testutil.GatherAndCount(registry, "coolant2go_loop_temperature")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

var _ prometheus.Collector = &LoopCollector{}
