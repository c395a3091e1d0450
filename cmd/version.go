package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version holds the CLI version information.
	// This value is typically set at build time using -ldflags.
	Version = "0.0.0-dev"
)

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Show CLI version",
	Annotations: map[string]string{noSessionAnnotation: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("baro %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
