package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"baro/cli/internal/auth"
	"baro/cli/internal/httperrors"
	"baro/cli/internal/logging"
	"baro/cli/internal/terminal"
)

var (
	loginEmail    string
	loginPassword string
	forceLogin    bool
)

// loginCmd represents the login command.
// It exchanges an email and password for a token with the identity service
// and stores the resulting credentials in the OS keychain.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Sign in with email and password",
	Long: `The login command signs in to the Baro identity service. Missing email or
password values are prompted for; the password is never echoed.

If a stored session is still valid the command reports it and exits, unless
--force is given, in which case the stored session is replaced.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		mgr := auth.FromContext(ctx)

		initializeSession(ctx, mgr)
		if mgr.Authenticated() && !forceLogin {
			pterm.Info.Printfln("Already logged in as %s", mgr.Role())
			return nil
		}

		email, password, err := promptCredentials(loginEmail, loginPassword)
		if err != nil {
			return err
		}

		stop := startInlineSpinner(os.Stderr, "Signing in", spinnerFrames, spinnerInterval)
		role, err := mgr.Login(ctx, email, password)
		stop()
		if err != nil {
			var netErr *url.Error
			if errors.As(err, &netErr) {
				_ = httperrors.FormatNetworkError(err, "signing in", httperrors.ExtractHostFromURL(netErr.URL))
			}
			pterm.Error.Println(mgr.LastError())
			if verbose {
				pterm.Println(logging.PresentError("details", err))
			}
			return errReported
		}

		pterm.Success.Printfln("Logged in as %s", role)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
	loginCmd.Flags().BoolVar(&forceLogin, "force", false, "Sign in again even if a valid session exists")
}

// promptCredentials asks for whichever of email and password is missing.
func promptCredentials(email, password string) (string, string, error) {
	in := bufio.NewReader(os.Stdin)
	if email == "" {
		pterm.Print("Email: ")
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return "", "", fmt.Errorf("read email: %w", err)
		}
		email = strings.TrimSpace(line)
	}
	if password == "" {
		const prompt = "Password: "
		pterm.Print(prompt)
		fd := int(os.Stdin.Fd())
		if term.IsTerminal(fd) {
			b, err := term.ReadPassword(fd)
			fmt.Println()
			if err != nil {
				return "", "", fmt.Errorf("read password: %w", err)
			}
			password = string(b)
			terminal.ClearPreviousLines(len(prompt))
		} else {
			line, err := in.ReadString('\n')
			if err != nil && line == "" {
				return "", "", fmt.Errorf("read password: %w", err)
			}
			password = strings.TrimRight(line, "\r\n")
		}
	}
	if email == "" || password == "" {
		return "", "", errors.New("email and password are required")
	}
	return email, password, nil
}
