package auth

import (
	"github.com/spf13/cobra"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage Zoho Creator OAuth tokens",
		Long: `Manage Zoho Creator OAuth tokens.

Tokens are stored in the OS keychain, keyed by data center. An account
lives in exactly one data center, so log in once per data center you
work against.`,
	}

	cmd.AddCommand(LoginCommand())
	cmd.AddCommand(StatusCommand())
	cmd.AddCommand(LogoutCommand())

	return cmd
}
