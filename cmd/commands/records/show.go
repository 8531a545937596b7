package records

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// ShowCommand returns the "records show" subcommand.
func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show every field of a single record",
		Long: `Show every field of a single record.

Examples:
  tppg records show 3888833000000114027
  tppg records show 3888833000000114027 --report All_Leads -o json`,
		Args: cobra.ExactArgs(1),
		Run:  runShow,
	}

	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) {
	report := cmd.Flag("report").Value.String()
	if report == "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", errNoReport)
		return
	}

	svc, err := serviceFactory(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	rec, err := svc.Get(context.Background(), report, args[0])
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "json" {
		writeJSON(cmd, rec)
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	for _, name := range rec.FieldNames() {
		fmt.Fprintf(w, "%s\t%s\n", name, rec.Field(name))
	}
	w.Flush()
}
