package auth

import (
	"errors"
	"fmt"
	"os"

	"github.com/pgrowth/tppgUtil/internal/config"
	"github.com/pgrowth/tppgUtil/internal/creator"
	"github.com/pgrowth/tppgUtil/internal/services/auth"

	"github.com/spf13/cobra"
)

func LogoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout [data-center]",
		Short: "Remove the stored token for a data center",
		Long: `Remove the stored OAuth token for a data center from the keychain.

Example:
  tppg auth logout eu`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			name := ""
			if len(args) > 0 {
				name = args[0]
			} else if cfg, err := config.Load(); err == nil {
				name = cfg.DataCenter
			}

			dc, err := creator.ParseDataCenter(name)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}

			store := auth.DefaultStore()
			if err := store.DeleteToken(string(dc)); err != nil {
				if errors.Is(err, auth.ErrTokenNotFound) {
					fmt.Fprintf(os.Stdout, "No token stored for data center %s\n", dc)
					return
				}
				fmt.Fprintln(os.Stderr, err)
				return
			}

			fmt.Fprintf(os.Stdout, "Removed token for data center %s\n", dc)
		},
	}

	return cmd
}
