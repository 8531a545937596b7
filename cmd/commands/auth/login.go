package auth

import (
	"fmt"
	"os"
	"strings"

	"github.com/pgrowth/tppgUtil/internal/config"
	"github.com/pgrowth/tppgUtil/internal/creator"
	"github.com/pgrowth/tppgUtil/internal/services/auth"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login [data-center]",
		Short: "Store an OAuth token for a data center",
		Long: `Store a Zoho Creator OAuth token in the local keychain.

The data center defaults to the configured one, or us when nothing is
configured.

Example:
  tppg auth login
  tppg auth login eu --token 1000.abcd1234...`,
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

			token, err := cmd.Flags().GetString("token")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}

			token = strings.TrimSpace(token)
			if token == "" {
				fmt.Fprint(os.Stdout, "Enter OAuth token: ")
				bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Fprintln(os.Stdout)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					return
				}
				token = strings.TrimSpace(string(bytes))
			}

			if token == "" {
				fmt.Fprintln(os.Stderr, "token cannot be empty")
				return
			}

			store := auth.DefaultStore()
			if err := store.SetToken(string(dc), token); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}

			fmt.Fprintf(os.Stdout, "Saved token for data center %s\n", dc)
		},
	}

	cmd.Flags().String("token", "", "OAuth token (optional, overrides prompt)")

	return cmd
}
