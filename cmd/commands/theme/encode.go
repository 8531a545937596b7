package theme

import (
	"fmt"
	"strconv"

	"github.com/pgrowth/tppgUtil/internal/colorspace"

	"github.com/spf13/cobra"
)

// EncodeCommand returns the "theme encode" command.
func EncodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <hue> <saturation> <lightness>",
		Short: "Encode an HSL triple as a hex color",
		Long: `Encode an HSL triple as a #RRGGBB hex color.

Hue is in degrees, saturation and lightness in percent.

Example:
  tppg theme encode 202 83 34`,
		Args:         cobra.ExactArgs(3),
		RunE:         runEncode,
		SilenceUsage: true,
	}

	return cmd
}

func runEncode(cmd *cobra.Command, args []string) error {
	names := []string{"hue", "saturation", "lightness"}
	values := make([]float64, 3)
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: expected a number", names[i], arg)
		}
		values[i] = v
	}

	fmt.Fprintln(cmd.OutOrStdout(), colorspace.HSLToHex(values[0], values[1], values[2]))
	return nil
}
