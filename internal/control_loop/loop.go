package control_loop

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/coolant2go/coolant2go/internal/clock"
	"github.com/coolant2go/coolant2go/internal/pid"
	"github.com/coolant2go/coolant2go/internal/plant"
	"github.com/coolant2go/coolant2go/internal/telemetry"
	"github.com/coolant2go/coolant2go/internal/ui"
	"github.com/coolant2go/coolant2go/internal/util"
)

const setpointRequestQueueSize = 16

// SetpointRequest asks the loop to retune the setpoint of a single actuator's controller
type SetpointRequest struct {
	Actuator string
	Setpoint float64
}

// ControlLoop couples a pump and a fan PID controller to a shared plant temperature
// and guards it with an emergency shutdown interlock.
//
// A ControlLoop is not safe for concurrent use, all methods except RequestSetpoint
// must be called from the goroutine that drives it.
type ControlLoop struct {
	config Config
	clock  clock.Clock

	plant *plant.Plant
	pump  *pid.Controller
	fan   *pid.Controller

	state      State
	running    bool
	pumpSignal float64
	fanSignal  float64

	iteration        int
	startTime        time.Time
	invalidTimesteps int

	requests chan SetpointRequest
}

type Option func(l *ControlLoop)

func WithClock(clk clock.Clock) Option {
	return func(l *ControlLoop) {
		l.clock = clk
	}
}

func New(config Config, options ...Option) (*ControlLoop, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	l := &ControlLoop{
		config:   config,
		clock:    clock.System{},
		state:    StateRunning,
		running:  true,
		requests: make(chan SetpointRequest, setpointRequestQueueSize),
	}
	for _, option := range options {
		option(l)
	}

	pidOptions := []pid.Option{pid.WithClock(l.clock)}
	if config.LegacyDerivative {
		pidOptions = append(pidOptions, pid.WithLegacyDerivative())
	}

	l.plant = plant.New(config.InitialTemperature, config.Plant)
	l.pump = pid.New(config.Pump.Gains, config.TargetTemperature, pidOptions...)
	l.fan = pid.New(config.Fan.Gains, config.TargetTemperature, pidOptions...)
	l.startTime = l.clock.Now()

	return l, nil
}

// Step runs a single iteration of the loop.
func (l *ControlLoop) Step() (telemetry.Record, error) {
	if !l.running {
		return telemetry.Record{}, ErrLoopTerminated
	}

	l.applySetpointRequests()
	l.iteration++

	temperature := l.plant.Temperature()
	if temperature >= l.config.ShutdownTemperature {
		l.shutdown()
		return l.record(telemetry.EventShutdown), nil
	}

	var err error
	l.pumpSignal, err = l.regulate(telemetry.ActuatorPump, l.pump, l.config.Pump, temperature)
	if err != nil {
		return telemetry.Record{}, err
	}
	l.fanSignal, err = l.regulate(telemetry.ActuatorFan, l.fan, l.config.Fan, temperature)
	if err != nil {
		return telemetry.Record{}, err
	}

	l.plant.Apply(l.pumpSignal, l.fanSignal)

	record := l.record(telemetry.EventSample)

	if l.config.Iterations > 0 && l.iteration >= l.config.Iterations {
		l.state = StateCompleted
		l.running = false
		ui.Debug("Iteration budget of %d exhausted", l.config.Iterations)
	}

	return record, nil
}

// regulate feeds the current temperature into the given controller
// and returns its output, clamped to the range of the actuator.
func (l *ControlLoop) regulate(id string, controller *pid.Controller, actuator Actuator, temperature float64) (float64, error) {
	controller.SetInput(temperature)
	err := controller.Compute()
	if errors.Is(err, pid.ErrInvalidTimestep) {
		l.invalidTimesteps++
		ui.Debug("Controller %s: %v, skipping derivative", id, err)
	} else if err != nil {
		return 0, fmt.Errorf("controller %s: %w", id, err)
	}
	return util.Coerce(controller.Output(), actuator.Min, actuator.Max), nil
}

// shutdown overrides all controller outputs and stops the loop
func (l *ControlLoop) shutdown() {
	l.pumpSignal = 0
	l.fanSignal = 0
	l.running = false
	l.state = StateEmergencyShutdown
	ui.Debug("Emergency shutdown at coolant temperature %.2f (threshold: %.2f)", l.plant.Temperature(), l.config.ShutdownTemperature)
}

func (l *ControlLoop) record(event telemetry.Event) telemetry.Record {
	return telemetry.Record{
		Iteration:    l.iteration,
		Elapsed:      l.clock.Now().Sub(l.startTime),
		Temperature:  l.plant.Temperature(),
		PumpSignal:   l.pumpSignal,
		FanSignal:    l.fanSignal,
		PumpSetpoint: l.pump.Setpoint(),
		FanSetpoint:  l.fan.Setpoint(),
		Event:        event,
	}
}

// Records returns a synchronous stream of iterations, which ends
// once the loop reaches a terminal state or the consumer stops iterating.
// The clock is asked to sleep for the configured interval between iterations.
func (l *ControlLoop) Records() iter.Seq[telemetry.Record] {
	return func(yield func(telemetry.Record) bool) {
		for l.running {
			record, err := l.Step()
			if err != nil {
				ui.Error("Control loop stopped: %v", err)
				return
			}
			if !yield(record) || !l.running {
				return
			}
			if err := l.clock.Sleep(context.Background(), l.config.Interval); err != nil {
				return
			}
		}
	}
}

// Run drives the loop until it reaches a terminal state or ctx is done,
// sending a record for every iteration to out. out is closed when Run returns.
// If ctx is done before a terminal state is reached, ctx.Err() is returned
// and the loop remains in StateRunning.
func (l *ControlLoop) Run(ctx context.Context, out chan<- telemetry.Record) (State, error) {
	defer close(out)

	for {
		if err := ctx.Err(); err != nil {
			return l.state, err
		}

		record, err := l.Step()
		if err != nil {
			return l.state, err
		}

		select {
		case out <- record:
		case <-ctx.Done():
			return l.state, ctx.Err()
		}

		if !l.running {
			return l.state, nil
		}

		if err := l.clock.Sleep(ctx, l.config.Interval); err != nil {
			return l.state, err
		}
	}
}

// RequestSetpoint queues a setpoint change, which is applied before the next iteration.
// It is safe to call from any goroutine.
func (l *ControlLoop) RequestSetpoint(actuator string, setpoint float64) error {
	if !telemetry.IsActuator(actuator) {
		return fmt.Errorf("%w: %s", ErrUnknownActuator, actuator)
	}
	if !util.IsFinite(setpoint) {
		return fmt.Errorf("%w: setpoint must be a finite number", ErrInvalidConfig)
	}
	select {
	case l.requests <- SetpointRequest{Actuator: actuator, Setpoint: setpoint}:
		return nil
	default:
		return ErrRequestQueueFull
	}
}

func (l *ControlLoop) applySetpointRequests() {
	for {
		select {
		case request := <-l.requests:
			ui.Info("Changing %s setpoint to %.2f", request.Actuator, request.Setpoint)
			l.setSetpoint(request.Actuator, request.Setpoint)
		default:
			return
		}
	}
}

func (l *ControlLoop) setSetpoint(actuator string, setpoint float64) {
	switch actuator {
	case telemetry.ActuatorPump:
		l.pump.SetSetpoint(setpoint)
	case telemetry.ActuatorFan:
		l.fan.SetSetpoint(setpoint)
	}
}

func (l *ControlLoop) SetPumpSetpoint(setpoint float64) {
	l.pump.SetSetpoint(setpoint)
}

func (l *ControlLoop) SetFanSetpoint(setpoint float64) {
	l.fan.SetSetpoint(setpoint)
}

// ForceTemperature overrides the plant temperature, e.g. to inject a fault
func (l *ControlLoop) ForceTemperature(temperature float64) {
	l.plant.Set(temperature)
}

func (l *ControlLoop) Config() Config {
	return l.config
}

func (l *ControlLoop) State() State {
	return l.state
}

// Running reports whether further iterations will be run
func (l *ControlLoop) Running() bool {
	return l.running
}

func (l *ControlLoop) Temperature() float64 {
	return l.plant.Temperature()
}

func (l *ControlLoop) PumpSignal() float64 {
	return l.pumpSignal
}

func (l *ControlLoop) FanSignal() float64 {
	return l.fanSignal
}

func (l *ControlLoop) PumpController() pid.Snapshot {
	return l.pump.Snapshot()
}

func (l *ControlLoop) FanController() pid.Snapshot {
	return l.fan.Snapshot()
}

func (l *ControlLoop) Iteration() int {
	return l.iteration
}

// InvalidTimesteps returns the number of controller computations
// that were done without any time passing since the previous one.
func (l *ControlLoop) InvalidTimesteps() int {
	return l.invalidTimesteps
}
