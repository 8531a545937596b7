package theme

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "theme" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Derive and inspect widget theme colors",
		Long: `Derive and inspect widget theme colors.

The widget stylesheet reads two custom properties, --primary-color and
--accent-color. The accent is the primary re-encoded at lightness 90,
so a single configured color themes the whole widget. These commands
run the same derivation the widget runs in the browser.`,
	}

	cmd.AddCommand(ApplyCommand())
	cmd.AddCommand(ConvertCommand())
	cmd.AddCommand(EncodeCommand())
	cmd.AddCommand(LightenCommand())
	cmd.AddCommand(PreviewCommand())

	return cmd
}
