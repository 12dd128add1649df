package cmd

import (
	"os"

	"github.com/coolant2go/coolant2go/internal"
	"github.com/coolant2go/coolant2go/internal/ui"
	"github.com/spf13/cobra"
)

// iteration budget of an offline simulation, if none is configured
const defaultSimulationIterations = 100

var simulateCmd = &cobra.Command{
	Use:   "simulate [target]",
	Short: "Simulate a run on virtual time",
	Long: `Runs the control loop without waiting between iterations
and prints a summary and a plot of the run.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		setupUi()

		conf := loadConfiguration(args)
		if conf.Iterations <= 0 {
			ui.Info("No iteration limit configured, simulating %d iterations", defaultSimulationIterations)
			conf.Iterations = defaultSimulationIterations
		}

		result, err := internal.SimulateOffline(conf)
		if err != nil {
			ui.Error("Simulation failed: %v", err)
		}
		printResult(conf, result, true)

		if err != nil {
			os.Exit(1)
		}
		os.Exit(exitCode(result.State))
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
}
