package records

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pgrowth/tppgUtil/internal/tui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// StatsCommand returns the "records stats" subcommand.
func StatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [report]",
		Short: "Show records added per day",
		Long: `Show how many records a report gained per day, bucketed by the
Added_Time audit field.

In a terminal the counts render as a chart; otherwise as a table.

Examples:
  tppg records stats
  tppg records stats All_Leads --criteria 'Status == "Open"'`,
		Args: cobra.MaximumNArgs(1),
		Run:  runStats,
	}

	cmd.Flags().String("criteria", "", "Creator search criteria to narrow the records counted")

	return cmd
}

func runStats(cmd *cobra.Command, args []string) {
	report := reportArg(cmd, args)
	if report == "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", errNoReport)
		return
	}

	criteria, _ := cmd.Flags().GetString("criteria")

	svc, err := serviceFactory(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	stats, err := svc.StatsByDay(context.Background(), report, criteria)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		owner := cmd.Flag("owner").Value.String()
		app := cmd.Flag("app").Value.String()
		if err := tui.RunStatsView(stats, owner, app, report); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error running TUI: %v\n", err)
		}
		return
	}

	if len(stats.Days) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No dated records found (%d records total).\n", stats.Total)
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "DAY\tCOUNT")
	fmt.Fprintln(w, "---\t-----")
	for _, day := range stats.Days {
		fmt.Fprintf(w, "%s\t%d\n", day.Day, day.Count)
	}
	w.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d records total, %d active days\n", stats.Total, len(stats.Days))
}
