package records

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/pgrowth/tppgUtil/internal/auditlog"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// DeleteCommand returns the "records delete" subcommand.
func DeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a record",
		Long: `Delete a record from a report.

A terminal gets a confirmation prompt first; scripts must pass --yes.

Example:
  tppg records delete 3888833000000114027 --yes`,
		Args: cobra.ExactArgs(1),
		Run:  runDelete,
	}

	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) {
	report := cmd.Flag("report").Value.String()
	if report == "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", errNoReport)
		return
	}

	id := args[0]
	yes, _ := cmd.Flags().GetBool("yes")

	if !yes {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: refusing to delete without --yes in non-interactive mode\n")
			return
		}

		confirmed, err := confirmDelete(id, report)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return
		}
		if !confirmed {
			fmt.Fprintln(cmd.OutOrStdout(), "Delete cancelled.")
			return
		}
	}

	svc, err := serviceFactory(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		Application:  cmd.Flag("app").Value.String(),
		ResourceType: auditlog.ResourceRecord,
		ResourceID:   id,
		ResourceName: report,
	}))

	if err := svc.Delete(context.Background(), report, id); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted record %s from %s\n", id, report)
}

// confirmDelete prompts for confirmation before a destructive call.
func confirmDelete(id, report string) (bool, error) {
	accessible := os.Getenv("ACCESSIBLE") != ""

	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete record %s from %s?", id, report)).
				Description("This cannot be undone.").
				Affirmative("Delete").
				Negative("Cancel").
				Value(&confirmed),
		),
	).WithAccessible(accessible)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return confirmed, nil
}
