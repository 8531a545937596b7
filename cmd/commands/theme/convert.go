package theme

import (
	"fmt"

	"github.com/pgrowth/tppgUtil/internal/colorspace"

	"github.com/spf13/cobra"
)

// ConvertCommand returns the "theme convert" command.
func ConvertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <hex>",
		Short: "Convert a hex color to HSL",
		Long: `Convert a hex color to its HSL components.

Accepts 3-digit or 6-digit hex, with or without the leading #.

Example:
  tppg theme convert "#0F699D"`,
		Args:         cobra.ExactArgs(1),
		RunE:         runConvert,
		SilenceUsage: true,
	}

	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	h, s, l, err := colorspace.HexToHSL(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "h: %.2f\n", h)
	fmt.Fprintf(cmd.OutOrStdout(), "s: %.2f%%\n", s)
	fmt.Fprintf(cmd.OutOrStdout(), "l: %.2f%%\n", l)
	return nil
}
