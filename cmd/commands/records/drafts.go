package records

import (
	"fmt"
	"text/tabwriter"

	"github.com/pgrowth/tppgUtil/internal/draftstore"
	"github.com/pgrowth/tppgUtil/internal/util"

	"github.com/spf13/cobra"
)

const (
	// recentDraftLimit caps how many drafts --all shows.
	recentDraftLimit = 20

	// draftErrorWidth caps the ERROR column so API messages cannot blow
	// out the table.
	draftErrorWidth = 48
)

// DraftsCommand returns the "records drafts" subcommand.
func DraftsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drafts",
		Short: "List locally drafted record submissions",
		Long: `List record submissions drafted on this machine.

By default only resumable drafts are shown (pending or failed). Use
--all to include submitted ones. Drafts are stored locally; no
authentication is needed to list them.

Examples:
  tppg records drafts
  tppg records drafts --all`,
		Args: cobra.ExactArgs(0),
		Run:  runDrafts,
	}

	cmd.Flags().Bool("all", false, fmt.Sprintf("Include submitted drafts (%d most recent)", recentDraftLimit))

	return cmd
}

func runDrafts(cmd *cobra.Command, args []string) {
	repo, err := draftStoreFactory()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}
	defer repo.Close()

	all, _ := cmd.Flags().GetBool("all")

	var drafts []draftstore.Draft
	if all {
		drafts, err = repo.ListRecent(recentDraftLimit)
	} else {
		drafts, err = repo.ListPending()
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	if len(drafts) == 0 {
		if all {
			fmt.Fprintln(cmd.OutOrStdout(), "No drafts found.")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "No pending drafts.")
		}
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tFORM\tSTATUS\tRECORD\tERROR\tUPDATED")
	fmt.Fprintln(w, "--\t----\t------\t------\t-----\t-------")

	for _, d := range drafts {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			d.ID,
			d.Form,
			d.Status,
			d.RecordID,
			util.Ellipsize(d.ErrorMessage, draftErrorWidth),
			d.UpdatedAt.Local().Format("2006-01-02 15:04"),
		)
	}

	w.Flush()
}
