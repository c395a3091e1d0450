package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"baro/cli/internal/auth"
)

// whoamiCmd represents the whoami command for displaying current authentication state.
// It validates the stored session with the identity service and shows the role
// when the session is valid.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Long: `The whoami command validates the stored session with the identity service
and shows the role it grants. An expired or rejected session is removed and
reported as not logged in.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		mgr := auth.FromContext(ctx)
		initializeSession(ctx, mgr)

		if !mgr.Authenticated() {
			fmt.Println("🔒 You're not logged in yet!")
			fmt.Println("   Run 'baro login' to get started.")
			return nil
		}
		fmt.Println(getWhoAmIPhrase(mgr.Role()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

// getWhoAmIPhrase returns a friendly phrase with the session role
func getWhoAmIPhrase(role string) string {
	return fmt.Sprintf("👤 Logged in with role: %s", role)
}
