package configuration

import "github.com/coolant2go/coolant2go/internal/pid"

type ActuatorConfig struct {
	// Range limits the signal sent to the actuator
	Range Range     `json:"range"`
	Pid   pid.Gains `json:"pid"`
}

type PlantConfig struct {
	// temperature drop per unit of fan signal
	FanCoefficient float64 `json:"fanCoefficient"`
	// temperature drop per unit of pump signal
	PumpCoefficient float64 `json:"pumpCoefficient"`
	// temperature gain per iteration
	HeatGain float64 `json:"heatGain"`
}
