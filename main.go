// Package main is the entry point for the baro CLI.
// It manages the sign-in session with the Baro identity service.
package main

import (
	"baro/cli/cmd"
)

// main is the entry point for the baro CLI.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
