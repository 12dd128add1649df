package pid

import (
	"errors"
	"fmt"
	"time"

	"github.com/coolant2go/coolant2go/internal/clock"
)

// ErrInvalidTimestep is returned by Compute when no (or negative) time has passed
// since the previous computation. The output is still updated, without a
// derivative contribution and without integrating.
var ErrInvalidTimestep = errors.New("invalid timestep")

type Gains struct {
	// Proportional Constant
	P float64 `json:"p"`
	// Integral Constant
	I float64 `json:"i"`
	// Derivative Constant
	D float64 `json:"d"`
}

// Controller is a PID controller for a plant that is being cooled:
// a measurement above the setpoint results in a positive output.
// Output limits are not applied, clamping is up to the caller.
type Controller struct {
	gains Gains
	// target value
	setpoint float64

	// last measured value
	input float64
	// last output value
	output float64
	// integral error, already multiplied by the integral constant
	integral float64
	// last execution time
	lastTime time.Time
	// error of the last execution
	lastError float64

	// derivative is always taken against an error of zero
	legacyDerivative bool

	clock clock.Clock
}

type Option func(c *Controller)

func WithClock(clk clock.Clock) Option {
	return func(c *Controller) {
		c.clock = clk
	}
}

// WithLegacyDerivative makes the derivative term ignore the error of the
// previous computation and compare against zero instead.
func WithLegacyDerivative() Option {
	return func(c *Controller) {
		c.legacyDerivative = true
	}
}

func New(gains Gains, setpoint float64, options ...Option) *Controller {
	c := &Controller{
		gains:    gains,
		setpoint: setpoint,
		clock:    clock.System{},
	}
	for _, option := range options {
		option(c)
	}
	c.lastTime = c.clock.Now()
	return c
}

// SetInput records the latest process measurement
func (c *Controller) SetInput(value float64) {
	c.input = value
}

// SetSetpoint changes the target value, effective with the next Compute
func (c *Controller) SetSetpoint(value float64) {
	c.setpoint = value
}

// Output returns the result of the last Compute
func (c *Controller) Output() float64 {
	return c.output
}

func (c *Controller) Setpoint() float64 {
	return c.setpoint
}

func (c *Controller) Input() float64 {
	return c.input
}

func (c *Controller) Gains() Gains {
	return c.gains
}

// SetGains replaces the constants used by future computations. Since the
// integral constant is applied while accumulating, past integral
// contributions keep the constant they were computed with.
func (c *Controller) SetGains(gains Gains) {
	c.gains = gains
}

func (c *Controller) Integral() float64 {
	return c.integral
}

// Compute advances the controller using the time passed since the previous call.
func (c *Controller) Compute() error {
	now := c.clock.Now()
	dt := now.Sub(c.lastTime).Seconds()

	// inverted, since the plant is being cooled
	err := -(c.setpoint - c.input)

	previousError := c.lastError
	if c.legacyDerivative {
		previousError = 0
	}

	var timestepErr error
	derivative := 0.0
	if dt > 0 {
		c.integral = c.integral + err*c.gains.I*dt
		derivative = -(err - previousError) / dt
	} else {
		timestepErr = fmt.Errorf("%w: dt=%gs", ErrInvalidTimestep, dt)
	}

	c.output = err*c.gains.P + c.integral + derivative*c.gains.D

	c.lastError = err
	c.lastTime = now

	return timestepErr
}

// Snapshot is a point in time copy of the controller state
type Snapshot struct {
	Gains    Gains   `json:"gains"`
	Setpoint float64 `json:"setpoint"`
	Input    float64 `json:"input"`
	Output   float64 `json:"output"`
	Integral float64 `json:"integral"`
}

func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Gains:    c.gains,
		Setpoint: c.setpoint,
		Input:    c.input,
		Output:   c.output,
		Integral: c.integral,
	}
}
