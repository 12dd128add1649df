package telemetry

import "time"

const (
	ActuatorPump = "pump"
	ActuatorFan  = "fan"
)

// Actuators lists all actuator ids in a stable order
var Actuators = []string{ActuatorPump, ActuatorFan}

type Event string

const (
	// EventSample is emitted for every regular iteration of the control loop
	EventSample Event = "sample"
	// EventShutdown is emitted once, when the safety interlock fires
	EventShutdown Event = "shutdown"
)

// Record is the state of the control loop after a single iteration.
type Record struct {
	Iteration    int           `json:"iteration"`
	Elapsed      time.Duration `json:"elapsed"`
	Temperature  float64       `json:"temperature"`
	PumpSignal   float64       `json:"pumpSignal"`
	FanSignal    float64       `json:"fanSignal"`
	PumpSetpoint float64       `json:"pumpSetpoint"`
	FanSetpoint  float64       `json:"fanSetpoint"`
	Event        Event         `json:"event"`
}

// Signal returns the signal of the given actuator
func (r Record) Signal(actuator string) float64 {
	switch actuator {
	case ActuatorPump:
		return r.PumpSignal
	case ActuatorFan:
		return r.FanSignal
	}
	return 0
}

// Setpoint returns the setpoint of the given actuator's controller
func (r Record) Setpoint(actuator string) float64 {
	switch actuator {
	case ActuatorPump:
		return r.PumpSetpoint
	case ActuatorFan:
		return r.FanSetpoint
	}
	return 0
}

func IsActuator(id string) bool {
	return id == ActuatorPump || id == ActuatorFan
}
