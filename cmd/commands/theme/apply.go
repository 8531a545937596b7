package theme

import (
	"encoding/json"
	"fmt"

	"github.com/pgrowth/tppgUtil/internal/auditlog"
	"github.com/pgrowth/tppgUtil/internal/config"
	"github.com/pgrowth/tppgUtil/internal/theme"

	"github.com/spf13/cobra"
)

// ApplyCommand returns the "theme apply" command.
func ApplyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Derive the theme properties from a primary color",
		Long: `Derive the two theme properties from a primary color and print them.

The primary defaults to the configured theme-primary, then to the
stock blue. Output is a :root CSS block ready to paste into the widget
stylesheet, or a JSON object with -o json.

Examples:
  tppg theme apply
  tppg theme apply --primary "#B03052" -o json`,
		Args:         cobra.ExactArgs(0),
		RunE:         runApply,
		SilenceUsage: true,
	}

	cmd.Flags().String("primary", "", "Primary hex color (defaults to the configured theme-primary)")
	cmd.Flags().StringP("output", "o", "css", "Output format: css or json")

	return cmd
}

func runApply(cmd *cobra.Command, args []string) error {
	primary, _ := cmd.Flags().GetString("primary")
	if primary == "" {
		if cfg, err := config.Load(); err == nil {
			primary = cfg.ThemePrimary
		}
	}

	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		ResourceType: auditlog.ResourceTheme,
		ResourceName: primary,
	}))

	output, _ := cmd.Flags().GetString("output")
	switch output {
	case "css":
		w := theme.NewCSSWriter()
		if err := theme.Apply(w, primary); err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), w.String())
	case "json":
		sink := theme.MapSink{}
		if err := theme.Apply(sink, primary); err != nil {
			return err
		}
		data, err := json.MarshalIndent(sink, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	default:
		return fmt.Errorf("unknown output format %q (valid: css, json)", output)
	}

	return nil
}
