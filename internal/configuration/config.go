package configuration

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/coolant2go/coolant2go/internal/control_loop"
	"github.com/coolant2go/coolant2go/internal/pid"
	"github.com/coolant2go/coolant2go/internal/plant"
	"github.com/coolant2go/coolant2go/internal/ui"
	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	PresetNone     = ""
	PresetBaseline = "baseline"
	PresetTuned    = "tuned"
)

type Configuration struct {
	TargetTemperature   float64 `json:"targetTemperature"`
	InitialTemperature  float64 `json:"initialTemperature"`
	ShutdownTemperature float64 `json:"shutdownTemperature"`

	Iterations       int           `json:"iterations"`
	Interval         time.Duration `json:"interval"`
	LegacyDerivative bool          `json:"legacyDerivative"`

	// Preset replaces the gains of both controllers, if set
	Preset string `json:"preset"`

	Pump ActuatorConfig `json:"pump"`
	Fan  ActuatorConfig `json:"fan"`

	Plant PlantConfig `json:"plant"`

	Telemetry  TelemetryConfig  `json:"telemetry"`
	Statistics StatisticsConfig `json:"statistics"`
	Api        ApiConfig        `json:"api"`
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("coolant2go")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/coolant2go/")
	}

	bindEnv(viper.GetViper())
	setDefaultValues(viper.GetViper())
}

// bindEnv makes every key overridable by an environment variable,
// e.g. COOLANT2GO_PUMP_RANGE for pump.range
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix("coolant2go")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv() // read in environment variables that match
}

func setDefaultValues(v *viper.Viper) {
	defaults := control_loop.DefaultConfig()

	v.SetDefault("targetTemperature", defaults.TargetTemperature)
	v.SetDefault("initialTemperature", defaults.InitialTemperature)
	v.SetDefault("shutdownTemperature", defaults.ShutdownTemperature)
	v.SetDefault("iterations", defaults.Iterations)
	v.SetDefault("interval", defaults.Interval)
	v.SetDefault("legacyDerivative", false)
	v.SetDefault("preset", PresetNone)

	for _, actuator := range []struct {
		key    string
		config control_loop.Actuator
	}{
		{key: "pump", config: defaults.Pump},
		{key: "fan", config: defaults.Fan},
	} {
		v.SetDefault(actuator.key+".range", []float64{actuator.config.Min, actuator.config.Max})
		v.SetDefault(actuator.key+".pid.p", actuator.config.Gains.P)
		v.SetDefault(actuator.key+".pid.i", actuator.config.Gains.I)
		v.SetDefault(actuator.key+".pid.d", actuator.config.Gains.D)
	}

	v.SetDefault("plant.fanCoefficient", defaults.Plant.Fan)
	v.SetDefault("plant.pumpCoefficient", defaults.Plant.Pump)
	v.SetDefault("plant.heatGain", defaults.Plant.HeatGain)

	v.SetDefault("telemetry.windowSize", 10)
	v.SetDefault("telemetry.export", "")
	v.SetDefault("telemetry.plot", false)

	v.SetDefault("statistics.enabled", false)
	v.SetDefault("statistics.port", 9000)

	v.SetDefault("api.enabled", false)
	v.SetDefault("api.host", "localhost")
	v.SetDefault("api.port", 8080)
}

// DetectAndReadConfigFile reads the config file, if one can be found.
// The path of the file is returned, or an empty string if none was found,
// since every setting has a sensible default.
func DetectAndReadConfigFile() (string, error) {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", err
	}
	// this is only populated _after_ ReadInConfig()
	return viper.ConfigFileUsed(), nil
}

// LoadConfig decodes the current viper state
func LoadConfig() (Configuration, error) {
	return decode(viper.GetViper())
}

func decode(v *viper.Viper) (Configuration, error) {
	var config Configuration
	err := v.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			RangeHookFunc(),
		),
	))
	return config, err
}

// ToLoopConfig converts the configuration into the fixed configuration of
// a control loop, applying the gain preset.
func (c Configuration) ToLoopConfig() control_loop.Config {
	pumpGains, fanGains := c.Pump.Pid, c.Fan.Pid
	if gains, ok := presetGains(c.Preset); ok {
		pumpGains, fanGains = gains, gains
	}

	return control_loop.Config{
		InitialTemperature:  c.InitialTemperature,
		TargetTemperature:   c.TargetTemperature,
		ShutdownTemperature: c.ShutdownTemperature,
		Pump: control_loop.Actuator{
			Min:   c.Pump.Range.Min,
			Max:   c.Pump.Range.Max,
			Gains: pumpGains,
		},
		Fan: control_loop.Actuator{
			Min:   c.Fan.Range.Min,
			Max:   c.Fan.Range.Max,
			Gains: fanGains,
		},
		Plant: plant.Coefficients{
			Fan:      c.Plant.FanCoefficient,
			Pump:     c.Plant.PumpCoefficient,
			HeatGain: c.Plant.HeatGain,
		},
		Iterations:       c.Iterations,
		Interval:         c.Interval,
		LegacyDerivative: c.LegacyDerivative,
	}
}

func presetGains(preset string) (pid.Gains, bool) {
	switch preset {
	case PresetBaseline:
		return control_loop.BaselineGains, true
	case PresetTuned:
		return control_loop.TunedGains, true
	}
	return pid.Gains{}, false
}
