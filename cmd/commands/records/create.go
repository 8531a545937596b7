package records

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"

	"github.com/pgrowth/tppgUtil/internal/auditlog"
	"github.com/pgrowth/tppgUtil/internal/creator"
	"github.com/pgrowth/tppgUtil/internal/records"
	"github.com/pgrowth/tppgUtil/internal/tui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// CreateCommand returns the "records create" subcommand.
func CreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a record in a form",
		Long: `Create a record by submitting field data to a form.

With --data the payload is submitted as given. Without it, a terminal
gets an interactive form that suggests field names from the report's
existing records. The payload is saved as a local draft before
submission, so a failed create can be resumed with 'records resume'.

Examples:
  tppg records create --form Leads --data '{"Name": "Ada Lovelace"}'
  tppg records create`,
		Args: cobra.ExactArgs(0),
		Run:  runCreate,
	}

	cmd.Flags().String("data", "", "Record fields as a JSON object")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) {
	form := cmd.Flag("form").Value.String()
	data, _ := cmd.Flags().GetString("data")

	svc, err := serviceFactory(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	var rec creator.Record
	switch {
	case data != "":
		if form == "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: no form specified: use --form or set a default with 'tppg config set default-form <link-name>'\n")
			return
		}
		rec, err = decodeRecordData(data)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return
		}

	case term.IsTerminal(int(os.Stdout.Fd())):
		report := cmd.Flag("report").Value.String()
		form, rec, err = tui.CreateRecordForm(svc, report, form)
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "Create cancelled.")
			return
		}
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return
		}

	default:
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: no record data: pass --data or run in a terminal for the interactive form\n")
		return
	}

	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		Application:  cmd.Flag("app").Value.String(),
		ResourceType: auditlog.ResourceRecord,
		ResourceName: form,
	}))

	id, err := submitRecord(cmd, svc, form, rec)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{ResourceID: id}))
	fmt.Fprintf(cmd.OutOrStdout(), "Created record %s in %s\n", id, form)
}

// submitRecord sends the create call, behind a spinner when interactive.
func submitRecord(cmd *cobra.Command, svc *records.Service, form string, rec creator.Record) (string, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return svc.Create(cmd.Context(), form, rec)
	}

	accessible := os.Getenv("ACCESSIBLE") != ""

	var id string
	err := spinner.New().
		Title("Submitting record...").
		Accessible(accessible).
		Output(os.Stderr).
		ActionWithErr(func(ctx context.Context) error {
			var cerr error
			id, cerr = svc.Create(ctx, form, rec)
			return cerr
		}).
		Run()
	return id, err
}

// decodeRecordData parses a JSON object into a record. Numbers stay
// json.Number so large numeric values survive the round trip.
func decodeRecordData(data string) (creator.Record, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(data)))
	dec.UseNumber()

	var rec creator.Record
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("invalid JSON in --data: %w", err)
	}
	if len(rec) == 0 {
		return nil, fmt.Errorf("--data must contain at least one field")
	}
	return rec, nil
}
