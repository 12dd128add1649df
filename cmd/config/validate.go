package config

import (
	"os"

	"github.com/coolant2go/coolant2go/internal/configuration"
	"github.com/coolant2go/coolant2go/internal/ui"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validates the current configuration",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// note: config file path parameter comes from the root command (-c)
		configPath, err := configuration.DetectAndReadConfigFile()
		if err != nil {
			ui.Error("Error reading config file: %v", err)
			os.Exit(1)
		}
		if configPath != "" {
			ui.Info("Using configuration file at: %s", configPath)
		} else {
			ui.Info("No configuration file found, validating defaults")
		}

		conf, err := configuration.LoadConfig()
		if err != nil {
			ui.Error("Validation failed: %v", err)
			os.Exit(1)
		}
		if err := configuration.Validate(conf); err != nil {
			ui.Error("Validation failed: %v", err)
			os.Exit(1)
		}

		ui.Success("Config looks good! :)")
		return nil
	},
}

func init() {
	Command.AddCommand(validateCmd)
}
