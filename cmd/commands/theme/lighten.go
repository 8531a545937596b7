package theme

import (
	"fmt"
	"strconv"

	"github.com/pgrowth/tppgUtil/internal/colorspace"

	"github.com/spf13/cobra"
)

// LightenCommand returns the "theme lighten" command.
func LightenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lighten <hex> <percent>",
		Short: "Derive the accent color from a hex color",
		Long: `Derive the accent color the widget would use for the given primary.

The percent argument exists for parity with the widget call signature
and does not change the result: the derived color always keeps the
input's hue and saturation with lightness pinned to 90. Existing themes
depend on exactly those accent values.

Example:
  tppg theme lighten "#0F699D" 46.3`,
		Args:         cobra.ExactArgs(2),
		RunE:         runLighten,
		SilenceUsage: true,
	}

	return cmd
}

func runLighten(cmd *cobra.Command, args []string) error {
	percent, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid percent %q: expected a number", args[1])
	}

	accent, err := colorspace.Lighten(args[0], percent)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), accent)
	return nil
}
