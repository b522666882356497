package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command; subcommands attach themselves in their init.
var rootCmd = &cobra.Command{
	Use:   "accounts-api",
	Short: "Accounts and authentication backend",
	Long: `accounts-api is the account management and authentication backend:
users, organizations, products and items over MongoDB, with JWT
access/refresh tokens and role-based access control.`,
}

// Execute runs the CLI. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
