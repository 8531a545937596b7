package link

import (
	"fmt"

	"github.com/pgrowth/tppgUtil/internal/util"
	"github.com/pgrowth/tppgUtil/internal/widget"

	"github.com/spf13/cobra"
)

// RecordCommand returns the "link record" command.
func RecordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "record <id>",
		Short: "Print the deep link to a record inside a report",
		Long: `Print the deep link to a single record inside a report.

The report comes from the --report flag or the configured
default-report.

Example:
  tppg link record 3100000000123456789 --report All_Leads`,
		Args:         cobra.ExactArgs(1),
		RunE:         runRecord,
		SilenceUsage: true,
	}
}

func runRecord(cmd *cobra.Command, args []string) error {
	host, owner, app, err := webHost(cmd)
	if err != nil {
		return err
	}

	report := cmd.Flag("report").Value.String()
	if report == "" {
		return fmt.Errorf("%s", errNoReport)
	}
	if err := util.ValidateLinkName(report); err != nil {
		return fmt.Errorf("invalid report %q: %w", report, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), widget.RecordURL(host, owner, app, report, args[0]))
	return nil
}
