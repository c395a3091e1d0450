package cmd

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"baro/cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:         "config",
	Short:       "Show or change CLI settings",
	Annotations: map[string]string{noSessionAnnotation: "true"},
	Long: `The config command reads and writes the settings file in the XDG config
directory. Environment variables (BARO_*) and --api-url still override the
saved values at run time.

Settings: ` + strings.Join(config.Keys, ", "),
}

var configShowCmd = &cobra.Command{
	Use:         "show",
	Short:       "Print the effective settings",
	Annotations: map[string]string{noSessionAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		for _, k := range config.Keys {
			v, _ := cfg.Get(k)
			fmt.Printf("%-24s %s\n", k, v)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:         "set <key> <value>",
	Short:       "Save a setting to the config file",
	Args:        cobra.ExactArgs(2),
	Annotations: map[string]string{noSessionAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := saveSetting(args[0], args[1]); err != nil {
			return err
		}
		pterm.Success.Printfln("Saved %s", args[0])
		return nil
	},
}

// saveSetting updates one key in the config file. Environment overrides are
// not written back.
func saveSetting(key, value string) error {
	cfg, err := config.LoadFile()
	if err != nil {
		return err
	}
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	return config.Save(cfg)
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}
