// Package cmd provides the command-line interface for the baro CLI.
// It implements the authentication subcommands (login, logout, whoami) on top
// of the session manager in internal/auth using the Cobra CLI framework.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"baro/cli/internal/auth"
)

var (
	showVersion bool
	apiURL      string
	verbose     bool
)

// errReported signals a failure that has already been shown to the user.
// Execute exits non-zero without printing it again.
var errReported = errors.New("reported")

// noSessionAnnotation marks commands that run without a session manager.
const noSessionAnnotation = "baro/no-session"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "baro",
	Short:         "Baro CLI for signing in to the Baro platform",
	Long:          `Baro manages your sign-in session with the Baro identity service. Credentials are kept in the OS keychain.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd == cmd.Root() || cmd.Annotations[noSessionAnnotation] == "true" {
			return nil
		}
		mgr, err := openSession()
		if err != nil {
			return err
		}
		cmd.SetContext(auth.WithManager(cmd.Context(), mgr))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("baro %s\n", Version)
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Identity service base URL (overrides config and BARO_API_URL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose debug output")
}
