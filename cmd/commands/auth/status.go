package auth

import (
	"errors"
	"fmt"
	"os"

	"github.com/pgrowth/tppgUtil/internal/creator"
	"github.com/pgrowth/tppgUtil/internal/services/auth"
	"github.com/pgrowth/tppgUtil/internal/tui"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func StatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show authentication status for each data center",
		Long: `Show which Zoho data centers have stored OAuth tokens.

Example:
  tppg auth status`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := auth.DefaultStore()

			// Use TUI in interactive terminal.
			if term.IsTerminal(int(os.Stdout.Fd())) {
				if err := tui.RunAuthStatus(store); err != nil {
					return fmt.Errorf("auth status failed: %w", err)
				}
				return nil
			}

			// Non-interactive fallback.
			for _, dc := range creator.DataCenters() {
				_, err := store.GetToken(dc)
				switch {
				case err == nil:
					fmt.Fprintf(cmd.OutOrStdout(), "%s: logged in\n", dc)
				case errors.Is(err, auth.ErrTokenNotFound):
					fmt.Fprintf(cmd.OutOrStdout(), "%s: not logged in\n", dc)
				default:
					fmt.Fprintf(cmd.OutOrStdout(), "%s: error (%v)\n", dc, err)
				}
			}
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}
