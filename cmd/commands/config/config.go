package config

import (
	"github.com/pgrowth/tppgUtil/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage tppg configuration",
		Long: "View and modify persistent tppg settings.\n\n" +
			"Configuration is stored at ~/.config/tppg/config.json.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
