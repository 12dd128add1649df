package control_loop

import (
	"errors"
	"fmt"
)

var (
	// ErrLoopTerminated is returned when stepping a loop that already reached a terminal state
	ErrLoopTerminated   = errors.New("control loop terminated")
	ErrInvalidConfig    = errors.New("invalid control loop configuration")
	ErrUnknownActuator  = errors.New("unknown actuator")
	ErrRequestQueueFull = errors.New("setpoint request queue is full")
)

type State int

const (
	StateRunning State = iota
	// StateEmergencyShutdown is reached when the safety interlock fires
	StateEmergencyShutdown
	// StateCompleted is reached when the iteration budget is exhausted
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateEmergencyShutdown:
		return "emergency-shutdown"
	case StateCompleted:
		return "completed"
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// Terminal reports whether no further iterations can happen in this state
func (s State) Terminal() bool {
	return s == StateEmergencyShutdown || s == StateCompleted
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
