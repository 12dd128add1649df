package control_loop

import (
	"errors"
	"fmt"
	"time"

	"github.com/coolant2go/coolant2go/internal/pid"
	"github.com/coolant2go/coolant2go/internal/plant"
	"github.com/coolant2go/coolant2go/internal/util"
)

// Actuator describes the signal range and controller constants of a single actuator
type Actuator struct {
	Min   float64   `json:"min"`
	Max   float64   `json:"max"`
	Gains pid.Gains `json:"gains"`
}

var (
	// BaselineGains are untuned constants
	BaselineGains = pid.Gains{P: 1, I: 1, D: 0}
	// TunedGains settle the default plant with little overshoot
	TunedGains = pid.Gains{P: 10, I: 12, D: 0.2}
)

// Config is the fixed configuration of a ControlLoop. It is copied
// into the loop on construction and cannot be changed afterwards.
type Config struct {
	InitialTemperature  float64 `json:"initialTemperature"`
	TargetTemperature   float64 `json:"targetTemperature"`
	ShutdownTemperature float64 `json:"shutdownTemperature"`

	Pump Actuator `json:"pump"`
	Fan  Actuator `json:"fan"`

	Plant plant.Coefficients `json:"plant"`

	// maximum number of iterations, 0 means unbounded
	Iterations int `json:"iterations"`
	// pause between two iterations
	Interval time.Duration `json:"interval"`

	LegacyDerivative bool `json:"legacyDerivative"`
}

func DefaultConfig() Config {
	return Config{
		InitialTemperature:  55,
		TargetTemperature:   60,
		ShutdownTemperature: 85,
		Pump: Actuator{
			Min:   0,
			Max:   100,
			Gains: BaselineGains,
		},
		Fan: Actuator{
			Min:   0,
			Max:   100,
			Gains: BaselineGains,
		},
		Plant:      plant.DefaultCoefficients,
		Iterations: 0,
		Interval:   500 * time.Millisecond,
	}
}

func (c Config) Validate() error {
	temperatures := map[string]float64{
		"initial temperature":  c.InitialTemperature,
		"target temperature":   c.TargetTemperature,
		"shutdown temperature": c.ShutdownTemperature,
	}
	for name, value := range temperatures {
		if !util.IsFinite(value) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidConfig, name)
		}
	}

	err := errors.Join(
		validateActuator("pump", c.Pump),
		validateActuator("fan", c.Fan),
	)
	if err != nil {
		return err
	}

	if c.Iterations < 0 {
		return fmt.Errorf("%w: iterations must be >= 0, was %d", ErrInvalidConfig, c.Iterations)
	}
	if c.Interval < 0 {
		return fmt.Errorf("%w: interval must be >= 0, was %s", ErrInvalidConfig, c.Interval)
	}
	return nil
}

func validateActuator(name string, actuator Actuator) error {
	if !util.IsFinite(actuator.Min) || !util.IsFinite(actuator.Max) {
		return fmt.Errorf("%w: %s range must be finite", ErrInvalidConfig, name)
	}
	if actuator.Min > actuator.Max {
		return fmt.Errorf("%w: %s range min (%g) is greater than max (%g)", ErrInvalidConfig, name, actuator.Min, actuator.Max)
	}
	return nil
}

