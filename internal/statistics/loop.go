package statistics

import (
	"github.com/coolant2go/coolant2go/internal/telemetry"
	"github.com/prometheus/client_golang/prometheus"
)

const loopSubsystem = "loop"

// RecordSource provides the current state of a control loop run
type RecordSource interface {
	Summary() telemetry.Summary
	Actuators() map[string]telemetry.ActuatorSnapshot
}

type LoopCollector struct {
	source RecordSource

	temperature    *prometheus.Desc
	temperatureMax *prometheus.Desc
	signal         *prometheus.Desc
	setpoint       *prometheus.Desc
	iterations     *prometheus.Desc
	shutdown       *prometheus.Desc
}

func NewLoopCollector(source RecordSource) *LoopCollector {
	return &LoopCollector{
		source: source,
		temperature: prometheus.NewDesc(prometheus.BuildFQName(namespace, loopSubsystem, "temperature"),
			"Current coolant temperature",
			nil, nil,
		),
		temperatureMax: prometheus.NewDesc(prometheus.BuildFQName(namespace, loopSubsystem, "temperature_max"),
			"Highest coolant temperature of this run",
			nil, nil,
		),
		signal: prometheus.NewDesc(prometheus.BuildFQName(namespace, loopSubsystem, "signal"),
			"Current (clamped) signal of the actuator",
			[]string{"actuator"}, nil,
		),
		setpoint: prometheus.NewDesc(prometheus.BuildFQName(namespace, loopSubsystem, "setpoint"),
			"Current setpoint of the actuator's controller",
			[]string{"actuator"}, nil,
		),
		iterations: prometheus.NewDesc(prometheus.BuildFQName(namespace, loopSubsystem, "iterations"),
			"Number of iterations run so far",
			nil, nil,
		),
		shutdown: prometheus.NewDesc(prometheus.BuildFQName(namespace, loopSubsystem, "shutdown"),
			"1 if the emergency shutdown was triggered, 0 otherwise",
			nil, nil,
		),
	}
}

func (collector *LoopCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.temperature
	ch <- collector.temperatureMax
	ch <- collector.signal
	ch <- collector.setpoint
	ch <- collector.iterations
	ch <- collector.shutdown
}

// Collect implements required collect function for all prometheus collectors
func (collector *LoopCollector) Collect(ch chan<- prometheus.Metric) {
	summary := collector.source.Summary()
	ch <- prometheus.MustNewConstMetric(collector.temperature, prometheus.GaugeValue, summary.FinalTemperature)
	ch <- prometheus.MustNewConstMetric(collector.temperatureMax, prometheus.GaugeValue, summary.MaxTemperature)
	ch <- prometheus.MustNewConstMetric(collector.iterations, prometheus.CounterValue, float64(summary.Iterations))

	shutdown := 0.0
	if summary.Shutdown {
		shutdown = 1
	}
	ch <- prometheus.MustNewConstMetric(collector.shutdown, prometheus.GaugeValue, shutdown)

	for id, actuator := range collector.source.Actuators() {
		ch <- prometheus.MustNewConstMetric(collector.signal, prometheus.GaugeValue, actuator.Signal, id)
		ch <- prometheus.MustNewConstMetric(collector.setpoint, prometheus.GaugeValue, actuator.Setpoint, id)
	}
}
