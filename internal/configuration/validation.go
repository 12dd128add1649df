package configuration

import (
	"errors"
	"fmt"
)

// Validate checks the given configuration for values a simulation can not run with
func Validate(config Configuration) error {
	err := validatePreset(config)
	if err != nil {
		return err
	}
	err = config.ToLoopConfig().Validate()
	if err != nil {
		return err
	}
	err = validateTelemetry(config)
	if err != nil {
		return err
	}
	return errors.Join(
		validatePort("statistics", config.Statistics.Enabled, config.Statistics.Port),
		validatePort("api", config.Api.Enabled, config.Api.Port),
		validateApi(config),
	)
}

func validatePreset(config Configuration) error {
	switch config.Preset {
	case PresetNone, PresetBaseline, PresetTuned:
		return nil
	}
	return fmt.Errorf("unknown preset '%s', use one of: %s | %s", config.Preset, PresetBaseline, PresetTuned)
}

func validateTelemetry(config Configuration) error {
	if config.Telemetry.WindowSize < 1 {
		return fmt.Errorf("telemetry: windowSize must be >= 1, was %d", config.Telemetry.WindowSize)
	}
	return nil
}

func validatePort(name string, enabled bool, port int) error {
	if !enabled {
		return nil
	}
	if port <= 0 || port > 65535 {
		return fmt.Errorf("%s: invalid port %d", name, port)
	}
	return nil
}

func validateApi(config Configuration) error {
	if config.Api.Enabled && config.Api.Host == "" {
		return errors.New("api: host must not be empty")
	}
	return nil
}
