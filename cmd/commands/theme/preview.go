package theme

import (
	"fmt"
	"os"

	"github.com/pgrowth/tppgUtil/internal/config"
	"github.com/pgrowth/tppgUtil/internal/theme"
	"github.com/pgrowth/tppgUtil/internal/tui"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

// PreviewCommand returns the "theme preview" command.
func PreviewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview the derived theme colors in the terminal",
		Long: `Preview the derived theme colors as terminal swatches.

Outside a terminal this prints the same CSS block as "theme apply".

Example:
  tppg theme preview --primary "#B03052"`,
		Args:         cobra.ExactArgs(0),
		RunE:         runPreview,
		SilenceUsage: true,
	}

	cmd.Flags().String("primary", "", "Primary hex color (defaults to the configured theme-primary)")

	return cmd
}

func runPreview(cmd *cobra.Command, args []string) error {
	primary, _ := cmd.Flags().GetString("primary")
	if primary == "" {
		if cfg, err := config.Load(); err == nil {
			primary = cfg.ThemePrimary
		}
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		if err := tui.RunThemePreview(primary); err != nil {
			return fmt.Errorf("theme preview failed: %w", err)
		}
		return nil
	}

	w := theme.NewCSSWriter()
	if err := theme.Apply(w, primary); err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), w.String())
	return nil
}
