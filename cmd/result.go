package cmd

import (
	"fmt"

	"github.com/coolant2go/coolant2go/cmd/global"
	"github.com/coolant2go/coolant2go/internal"
	"github.com/coolant2go/coolant2go/internal/configuration"
	"github.com/coolant2go/coolant2go/internal/telemetry"
	"github.com/coolant2go/coolant2go/internal/ui"
)

func printResult(conf configuration.Configuration, result internal.RunResult, plot bool) {
	tableString, err := ui.RenderTable([]string{"Result", ""}, resultRows(result), !global.NoColor)
	if err != nil {
		ui.Fatal("Error printing table: %v", err)
	}
	ui.Printfln("%s", tableString)

	if plot {
		ui.Printfln("%s", telemetry.Plot(result.Records, conf.TargetTemperature, !global.NoColor))
	}
}

func resultRows(result internal.RunResult) [][]string {
	summary := result.Summary
	return [][]string{
		{"State", result.State.String()},
		{"Iterations", fmt.Sprintf("%d", summary.Iterations)},
		{"Elapsed", summary.Elapsed.String()},
		{"Final temperature", fmt.Sprintf("%.2f", summary.FinalTemperature)},
		{"Min temperature", fmt.Sprintf("%.2f", summary.MinTemperature)},
		{"Max temperature", fmt.Sprintf("%.2f", summary.MaxTemperature)},
		{"Recent avg temperature", fmt.Sprintf("%.2f", summary.RecentAvgTemperature)},
		{"Recent max temperature", fmt.Sprintf("%.2f", summary.RecentMaxTemperature)},
		{"Invalid timesteps", fmt.Sprintf("%d", result.InvalidTimesteps)},
	}
}
