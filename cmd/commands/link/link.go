package link

import (
	"fmt"

	"github.com/pgrowth/tppgUtil/internal/config"
	"github.com/pgrowth/tppgUtil/internal/creator"

	"github.com/spf13/cobra"
)

// Guidance printed when a link target cannot be resolved.
const (
	errNoReport = "no report specified: pass one or set a default with 'tppg config set default-report <link-name>'"
	errNoForm   = "no form specified: pass one or set a default with 'tppg config set default-form <link-name>'"
)

// NewCommand returns the top-level "link" Cobra command with all subcommands attached.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Print deep links into the Creator UI",
		Long: `Print the deep links the widget redirects to: report pages, single
records, and form pages on the account's Creator web origin. The origin
follows the configured data-center.`,
		PersistentPreRunE: resolveApplication,
	}

	cmd.AddCommand(ReportCommand())
	cmd.AddCommand(RecordCommand())
	cmd.AddCommand(FormCommand())

	cmd.PersistentFlags().String("owner", "", "Creator account owner (overrides config)")
	cmd.PersistentFlags().String("app", "", "Application link name (overrides config)")
	cmd.PersistentFlags().String("report", "", "Report link name (overrides default-report)")
	cmd.PersistentFlags().String("form", "", "Form link name (overrides default-form)")

	return cmd
}

// resolveApplication fills the owner/app/report/form flags from config for
// any the user did not set explicitly.
func resolveApplication(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fill := func(name, value string) error {
		if cmd.Flag(name).Changed || value == "" {
			return nil
		}
		return cmd.Flag(name).Value.Set(value)
	}

	if err := fill("owner", cfg.Owner); err != nil {
		return err
	}
	if err := fill("app", cfg.AppLinkName); err != nil {
		return err
	}
	if err := fill("report", cfg.DefaultReport); err != nil {
		return err
	}
	return fill("form", cfg.DefaultForm)
}

// webHost resolves the account owner, application, and the Creator web
// origin for the configured data center.
func webHost(cmd *cobra.Command) (host, owner, app string, err error) {
	owner = cmd.Flag("owner").Value.String()
	if owner == "" {
		return "", "", "", fmt.Errorf("no account owner specified: use --owner or set one with 'tppg config set owner <name>'")
	}
	app = cmd.Flag("app").Value.String()
	if app == "" {
		return "", "", "", fmt.Errorf("no application specified: use --app or set one with 'tppg config set app <link-name>'")
	}

	cfg, err := config.Load()
	if err != nil {
		return "", "", "", fmt.Errorf("failed to load config: %w", err)
	}
	dc, err := creator.ParseDataCenter(cfg.DataCenter)
	if err != nil {
		return "", "", "", err
	}
	return creator.WebBaseURL(dc), owner, app, nil
}
