package link

import (
	"fmt"

	"github.com/pgrowth/tppgUtil/internal/util"
	"github.com/pgrowth/tppgUtil/internal/widget"

	"github.com/spf13/cobra"
)

// ReportCommand returns the "link report" command.
func ReportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report [link-name]",
		Short: "Print the deep link to a report page",
		Long: `Print the deep link to a report page.

The report comes from the argument, the --report flag, or the
configured default-report, in that order.

Example:
  tppg link report All_Leads`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runReport,
		SilenceUsage: true,
	}
}

func runReport(cmd *cobra.Command, args []string) error {
	host, owner, app, err := webHost(cmd)
	if err != nil {
		return err
	}

	report := cmd.Flag("report").Value.String()
	if len(args) > 0 {
		report = args[0]
	}
	if report == "" {
		return fmt.Errorf("%s", errNoReport)
	}
	if err := util.ValidateLinkName(report); err != nil {
		return fmt.Errorf("invalid report %q: %w", report, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), widget.ReportURL(host, owner, app, report))
	return nil
}
