package telemetry

import (
	"github.com/guptarohit/asciigraph"
)

const (
	plotHeight = 15
	plotWidth  = 100
)

// Plot renders the temperature of the given records against the target
// temperature, followed by the pump and fan signals.
// An empty string is returned if there is nothing to plot.
func Plot(records []Record, target float64, color bool) string {
	if len(records) <= 0 {
		return ""
	}

	temperatures := make([]float64, len(records))
	targets := make([]float64, len(records))
	pumpSignals := make([]float64, len(records))
	fanSignals := make([]float64, len(records))
	for idx, record := range records {
		temperatures[idx] = record.Temperature
		targets[idx] = target
		pumpSignals[idx] = record.PumpSignal
		fanSignals[idx] = record.FanSignal
	}

	temperatureOptions := []asciigraph.Option{
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("Coolant temperature (red) and target (green) in °C"),
	}
	signalOptions := []asciigraph.Option{
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("Pump (blue) and fan (yellow) signal"),
	}
	if color {
		temperatureOptions = append(temperatureOptions, asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green))
		signalOptions = append(signalOptions, asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Yellow))
	}

	temperatureGraph := asciigraph.PlotMany([][]float64{temperatures, targets}, temperatureOptions...)
	signalGraph := asciigraph.PlotMany([][]float64{pumpSignals, fanSignals}, signalOptions...)

	return temperatureGraph + "\n\n" + signalGraph
}
