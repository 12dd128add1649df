package config

import (
	"fmt"
	"sort"
	"time"

	"github.com/coolant2go/coolant2go/cmd/global"
	"github.com/coolant2go/coolant2go/internal/configuration"
	"github.com/coolant2go/coolant2go/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var showAsYaml bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Prints the effective configuration",
	Long:  `Prints every configuration key with the value that is used, after applying defaults, the config file and environment variables.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := configuration.DetectAndReadConfigFile()
		if err != nil {
			return err
		}
		if configPath != "" {
			ui.Info("Using configuration file at: %s", configPath)
		}

		if showAsYaml {
			out, err := settingsYaml(viper.GetViper())
			if err != nil {
				return err
			}
			ui.Printf("%s", out)
			return nil
		}

		tableString, err := ui.RenderTable([]string{"Key", "Value"}, settingRows(viper.GetViper()), !global.NoColor)
		if err != nil {
			return err
		}
		ui.Printfln("%s", tableString)
		return nil
	},
}

// settingRows lists all known keys with their effective value, sorted by key
func settingRows(v *viper.Viper) [][]string {
	keys := v.AllKeys()
	sort.Strings(keys)

	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, []string{key, fmt.Sprintf("%v", v.Get(key))})
	}
	return rows
}

// settingsYaml renders the effective configuration in the format of a config file
func settingsYaml(v *viper.Viper) (string, error) {
	out, err := yaml.Marshal(printable(v.AllSettings()))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// printable converts values that yaml would otherwise render in an unreadable way
func printable(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for key, item := range v {
			result[key] = printable(item)
		}
		return result
	case time.Duration:
		return v.String()
	}
	return value
}

func init() {
	showCmd.Flags().BoolVar(&showAsYaml, "yaml", false, "Print the configuration as YAML")
	Command.AddCommand(showCmd)
}
