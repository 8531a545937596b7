package records

import (
	"fmt"
	"strings"

	"github.com/pgrowth/tppgUtil/internal/util"

	"github.com/spf13/cobra"
)

// PruneCommand returns the "records prune" subcommand.
func PruneCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete resolved drafts older than a duration",
		Long: `Delete submitted and failed drafts older than a duration.

Pending drafts are never pruned; they are still waiting to be resumed.

Examples:
  tppg records prune --older-than 30d
  tppg records prune --older-than 72h`,
		Args: cobra.ExactArgs(0),
		Run:  runPrune,
	}

	cmd.Flags().String("older-than", "", "Remove resolved drafts older than this duration (e.g. 30d, 72h)")

	return cmd
}

func runPrune(cmd *cobra.Command, args []string) {
	olderThanRaw, _ := cmd.Flags().GetString("older-than")
	olderThanRaw = strings.TrimSpace(olderThanRaw)
	if olderThanRaw == "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: --older-than is required\n")
		return
	}

	olderThan, err := util.ParseAge(olderThanRaw)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	repo, err := draftStoreFactory()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}
	defer repo.Close()

	removed, err := repo.DeleteOlderThan(olderThan)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d draft(s).\n", removed)
}
