package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/pgrowth/tppgUtil/cmd/commands/audit"
	"github.com/pgrowth/tppgUtil/cmd/commands/auth"
	cfgcmd "github.com/pgrowth/tppgUtil/cmd/commands/config"
	"github.com/pgrowth/tppgUtil/cmd/commands/fields"
	"github.com/pgrowth/tppgUtil/cmd/commands/link"
	"github.com/pgrowth/tppgUtil/cmd/commands/records"
	"github.com/pgrowth/tppgUtil/cmd/commands/theme"
	"github.com/pgrowth/tppgUtil/cmd/commands/widget"
	"github.com/pgrowth/tppgUtil/internal/auditlog"
	"github.com/pgrowth/tppgUtil/internal/config"
	"github.com/pgrowth/tppgUtil/internal/tui/styles"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "tppg",
		Short: "A CLI companion for Zoho Creator widget development",
		Long: `tppg is a command-line companion for teams building Zoho Creator
widgets. It mirrors what the widget does in the browser: theme color
derivation, record operations against the Creator REST API, merge-field
substitution, and deep links into reports and forms.

Quick start:
  tppg auth login us                     # Store your Creator OAuth token
  tppg config set owner pgrowth          # Account owner for API calls
  tppg config set app crm                # Application link name
  tppg records list                      # Browse the default report
  tppg theme apply --primary "#0F699D"   # Derive the widget theme`,
	}

	cmd.AddCommand(auth.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(theme.NewCommand())
	cmd.AddCommand(records.NewCommand())
	cmd.AddCommand(fields.NewCommand())
	cmd.AddCommand(link.NewCommand())
	cmd.AddCommand(widget.NewCommand())
	cmd.AddCommand(audit.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	applyConfiguredTheme()

	var root = rootCmd()

	start := time.Now()
	cmd, err := root.ExecuteC()
	writeAudit(cmd, err, start)
	if err != nil {
		os.Exit(1)
	}
}

// applyConfiguredTheme points the TUI accent ramp at the configured theme
// primary. Failures are swallowed, an unreadable config or a hand-edited
// bad color must never block unrelated commands.
func applyConfiguredTheme() {
	cfg, err := config.Load()
	if err != nil {
		return
	}
	_ = styles.ApplyPrimary(cfg.ThemePrimary)
}

// writeAudit appends one audit entry for the executed command. Commands
// attach resource metadata to their context with auditlog.WithMetadata;
// everything else comes from the command itself. Failures are swallowed,
// an unwritable audit database must never break the command that
// triggered it.
func writeAudit(cmd *cobra.Command, runErr error, start time.Time) {
	if cmd == nil || !auditedCommand(cmd) {
		return
	}

	repo, err := auditlog.Open()
	if err != nil {
		return
	}
	defer repo.Close()

	entry := &auditlog.AuditEntry{
		Timestamp:  start,
		Command:    cmd.CommandPath(),
		Args:       strings.Join(auditlog.SanitizeArgs(os.Args[1:]), " "),
		Outcome:    auditlog.OutcomeSuccess,
		DurationMs: time.Since(start).Milliseconds(),
	}
	if runErr != nil {
		entry.Outcome = auditlog.OutcomeError
		entry.Detail = runErr.Error()
	}

	meta := auditlog.MetadataFromContext(cmd.Context())
	entry.Application = meta.Application
	entry.ResourceType = meta.ResourceType
	entry.ResourceID = meta.ResourceID
	entry.ResourceName = meta.ResourceName

	_ = repo.Save(entry)
}

// auditedCommand filters out help output and the audit commands
// themselves, so the log stays a history of real actions.
func auditedCommand(cmd *cobra.Command) bool {
	if !cmd.Runnable() {
		return false
	}
	if help, _ := cmd.Flags().GetBool("help"); help {
		return false
	}

	path := cmd.CommandPath()
	switch {
	case path == "tppg":
		return false
	case strings.HasPrefix(path, "tppg audit"):
		return false
	case strings.HasPrefix(path, "tppg help"):
		return false
	case strings.HasPrefix(path, "tppg completion"):
		return false
	}
	return true
}
