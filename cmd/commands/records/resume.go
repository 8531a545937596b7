package records

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pgrowth/tppgUtil/internal/auditlog"

	"github.com/spf13/cobra"
)

// ResumeCommand returns the "records resume" subcommand.
func ResumeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resume <draft-id>",
		Short: "Resubmit a drafted record",
		Long: `Resubmit a pending or failed draft created by 'records create'.

The draft is updated in place with the outcome, so a draft only ever
produces one record.

Example:
  tppg records resume 3`,
		Args: cobra.ExactArgs(1),
		Run:  runResume,
	}

	return cmd
}

func runResume(cmd *cobra.Command, args []string) {
	draftID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: invalid draft ID %q: expected a number\n", args[0])
		return
	}

	svc, err := serviceFactory(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		Application:  cmd.Flag("app").Value.String(),
		ResourceType: auditlog.ResourceRecord,
	}))

	id, err := svc.Resume(context.Background(), draftID)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{ResourceID: id}))
	fmt.Fprintf(cmd.OutOrStdout(), "Draft %d submitted as record %s\n", draftID, id)
}
