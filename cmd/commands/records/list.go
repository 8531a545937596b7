package records

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pgrowth/tppgUtil/internal/creator"
	"github.com/pgrowth/tppgUtil/internal/tui"
	"github.com/pgrowth/tppgUtil/internal/util"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	// maxListColumns caps how many field columns the plain table shows.
	// Wide reports stay readable; full values are available via show or
	// -o json.
	maxListColumns = 5

	// cellWidth caps rendered cell width in the plain table.
	cellWidth = 32
)

// ListCommand returns the "records list" subcommand.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [report]",
		Short: "List records in a report",
		Long: `List records in a report.

In a terminal with table output this opens the interactive browser.
Otherwise one page is printed, or every page with --all.

Examples:
  tppg records list
  tppg records list All_Leads --criteria 'Status == "Open"'
  tppg records list All_Leads --all -o json`,
		Args: cobra.MaximumNArgs(1),
		Run:  runList,
	}

	cmd.Flags().String("criteria", "", `Creator search criteria, e.g. 'Status == "Open"'`)
	cmd.Flags().Int("page", 1, "1-based page to fetch")
	cmd.Flags().Int("page-size", creator.MaxPageSize, "Records per page (max 200)")
	cmd.Flags().Bool("all", false, "Fetch every page")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runList(cmd *cobra.Command, args []string) {
	report := reportArg(cmd, args)
	if report == "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", errNoReport)
		return
	}

	criteria, _ := cmd.Flags().GetString("criteria")
	output, _ := cmd.Flags().GetString("output")
	all, _ := cmd.Flags().GetBool("all")

	svc, err := serviceFactory(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	if output == "table" && term.IsTerminal(int(os.Stdout.Fd())) {
		owner := cmd.Flag("owner").Value.String()
		app := cmd.Flag("app").Value.String()
		if err := tui.RunRecordsBrowser(svc, owner, app, report); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error running TUI: %v\n", err)
		}
		return
	}

	var recs []creator.Record
	if all {
		recs, err = svc.ListAll(context.Background(), report, criteria)
	} else {
		page, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("page-size")
		recs, err = svc.List(context.Background(), report, creator.ListOptions{
			Criteria: criteria,
			Page:     page,
			PageSize: pageSize,
		})
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error listing records: %v\n", err)
		return
	}

	if output == "json" {
		writeJSON(cmd, recs)
		return
	}

	if len(recs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No records found.")
		return
	}

	writeRecordTable(cmd, recs)
}

// writeJSON prints v as indented JSON.
func writeJSON(cmd *cobra.Command, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
}

// writeRecordTable prints records as a tab-aligned table. Columns come
// from the first record's fields, ID first, capped at maxListColumns.
func writeRecordTable(cmd *cobra.Command, recs []creator.Record) {
	columns := tableColumns(recs)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)

	headers := make([]string, len(columns))
	dashes := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = strings.ToUpper(col)
		dashes[i] = strings.Repeat("-", len(col))
	}
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	fmt.Fprintln(w, strings.Join(dashes, "\t"))

	for _, rec := range recs {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = util.Ellipsize(rec.Field(col), cellWidth)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}

	w.Flush()
}

// tableColumns picks the table columns from the first record's fields.
func tableColumns(recs []creator.Record) []string {
	if len(recs) == 0 {
		return nil
	}
	names := recs[0].FieldNames()
	if len(names) > maxListColumns {
		names = names[:maxListColumns]
	}
	return names
}
