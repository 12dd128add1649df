package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/coolant2go/coolant2go/cmd/config"
	"github.com/coolant2go/coolant2go/cmd/global"
	"github.com/coolant2go/coolant2go/internal"
	"github.com/coolant2go/coolant2go/internal/configuration"
	"github.com/coolant2go/coolant2go/internal/control_loop"
	"github.com/coolant2go/coolant2go/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	exitCodeOk                = 0
	exitCodeEmergencyShutdown = 2
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "coolant2go [target]",
	Short: "An emulated coolant loop, regulated by a pump and a fan PID controller.",
	Long: `coolant2go emulates a coolant loop whose temperature is regulated
by a pump and a fan, each driven by its own PID controller.
The loop is shut down as soon as the coolant gets too hot.

The target temperature can be overridden by passing it as the last argument.`,
	Args: cobra.ArbitraryArgs,
	// this is the default command to run when no subcommand is specified
	Run: func(cmd *cobra.Command, args []string) {
		setupUi()
		printHeader()

		conf := loadConfiguration(args)

		result, err := internal.RunSimulation(conf)
		if err != nil {
			ui.Error("Simulation failed: %v", err)
		}
		printResult(conf, result, conf.Telemetry.Plot)

		if err != nil {
			os.Exit(1)
		}
		os.Exit(exitCode(result.State))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&global.CfgFile, "config", "c", "", "config file (default is $HOME/coolant2go.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&global.NoColor, "no-color", "", false, "Disable all terminal output coloration")
	rootCmd.PersistentFlags().BoolVarP(&global.NoStyle, "no-style", "", false, "Disable all terminal output styling")
	rootCmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "More verbose output")

	rootCmd.PersistentFlags().IntP("iterations", "n", 0, "Maximum number of iterations, 0 means unbounded")
	rootCmd.PersistentFlags().Duration("interval", 500*time.Millisecond, "Pause between two iterations")
	rootCmd.PersistentFlags().Bool("plot", false, "Plot the run once it is over")
	_ = viper.BindPFlag("iterations", rootCmd.PersistentFlags().Lookup("iterations"))
	_ = viper.BindPFlag("interval", rootCmd.PersistentFlags().Lookup("interval"))
	_ = viper.BindPFlag("telemetry.plot", rootCmd.PersistentFlags().Lookup("plot"))

	rootCmd.AddCommand(config.Command)
}

func setupUi() {
	ui.SetDebugEnabled(global.Verbose)

	if global.NoColor {
		pterm.DisableColor()
	}
	if global.NoStyle {
		pterm.DisableStyling()
	}
}

// Print a large text with the LetterStyle from the standard theme.
func printHeader() {
	err := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("coolant", pterm.NewStyle(pterm.FgLightBlue)),
		pterm.NewLettersFromStringWithStyle("2", pterm.NewStyle(pterm.FgWhite)),
		pterm.NewLettersFromStringWithStyle("go", pterm.NewStyle(pterm.FgLightBlue)),
	).Render()
	if err != nil {
		fmt.Println("coolant2go")
	}
}

// loadConfiguration reads the config file and applies the target override in args.
// An unusable configuration is fatal.
func loadConfiguration(args []string) configuration.Configuration {
	configPath, err := configuration.DetectAndReadConfigFile()
	if err != nil {
		ui.Fatal("Error reading config file: %v", err)
	}
	if configPath != "" {
		ui.Info("Using configuration file at: %s", configPath)
	} else {
		ui.Info("No configuration file found, using defaults")
	}

	conf, err := configuration.LoadConfig()
	if err != nil {
		ui.Fatal("Unable to decode configuration: %v", err)
	}

	target, err := configuration.ParseTargetOverride(args, conf.TargetTemperature)
	if err != nil {
		ui.Warning("Invalid command line argument: %v, using target temperature %.2f", err, target)
	}
	conf.TargetTemperature = target

	if err := configuration.Validate(conf); err != nil {
		ui.Fatal("Config Validation Error: %v", err)
	}
	return conf
}

// exitCode maps the final state of a run to the exit code of the process
func exitCode(state control_loop.State) int {
	if state == control_loop.StateEmergencyShutdown {
		return exitCodeEmergencyShutdown
	}
	return exitCodeOk
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.OnInitialize(func() {
		configuration.InitConfig(global.CfgFile)
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
