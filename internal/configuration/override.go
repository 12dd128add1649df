package configuration

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/coolant2go/coolant2go/internal/util"
)

var ErrNotFinite = errors.New("value is not a finite number")

// InvalidConfigurationError is returned for a configuration value that
// could not be used. Callers may recover from it by falling back to a default.
type InvalidConfigurationError struct {
	Value string
	Err   error
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration value '%s': %v", e.Value, e.Err)
}

func (e *InvalidConfigurationError) Unwrap() error {
	return e.Err
}

// ParseTargetOverride parses the target temperature given as the last command line argument.
// If there are no arguments, fallback is returned. If the argument is not a finite
// number, fallback is returned together with an InvalidConfigurationError.
func ParseTargetOverride(args []string, fallback float64) (float64, error) {
	if len(args) <= 0 {
		return fallback, nil
	}

	value := args[len(args)-1]
	target, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback, &InvalidConfigurationError{Value: value, Err: err}
	}
	if !util.IsFinite(target) {
		return fallback, &InvalidConfigurationError{Value: value, Err: ErrNotFinite}
	}
	return target, nil
}
