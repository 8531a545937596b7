package records

import (
	"context"
	"fmt"

	"github.com/pgrowth/tppgUtil/internal/auditlog"

	"github.com/spf13/cobra"
)

// UpdateCommand returns the "records update" subcommand.
func UpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a record",
		Long: `Update fields of a record. Fields absent from --data keep their
current values.

Example:
  tppg records update 3888833000000114027 --data '{"Status": "Closed"}'`,
		Args: cobra.ExactArgs(1),
		Run:  runUpdate,
	}

	cmd.Flags().String("data", "", "Fields to overwrite as a JSON object")
	cmd.MarkFlagRequired("data")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) {
	report := cmd.Flag("report").Value.String()
	if report == "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", errNoReport)
		return
	}

	data, _ := cmd.Flags().GetString("data")
	rec, err := decodeRecordData(data)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	svc, err := serviceFactory(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	id := args[0]
	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		Application:  cmd.Flag("app").Value.String(),
		ResourceType: auditlog.ResourceRecord,
		ResourceID:   id,
		ResourceName: report,
	}))

	if err := svc.Update(context.Background(), report, id, rec); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated record %s in %s\n", id, report)
}
