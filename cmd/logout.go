package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"baro/cli/internal/auth"
)

// logoutCmd represents the logout command for clearing authentication state.
// It removes the stored token, role and user id from the OS keychain.
// No request is sent to the identity service.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove all saved credentials",
	Long: `The logout command clears all authentication state from the local system.

This command removes:
- The authentication token from the OS keychain
- The stored role and user id`,

	RunE: func(cmd *cobra.Command, args []string) error {
		auth.FromContext(cmd.Context()).Logout()
		fmt.Println("✅ All credentials have been removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
