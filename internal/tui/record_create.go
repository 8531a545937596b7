package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"

	"github.com/pgrowth/tppgUtil/internal/creator"
	"github.com/pgrowth/tppgUtil/internal/records"
	"github.com/pgrowth/tppgUtil/internal/util"
)

// ErrAborted is returned when a user cancels the interactive flow.
var ErrAborted = errors.New("record creation aborted by user")

// sampleSize is how many records are fetched to suggest field names.
const sampleSize = 10

// CreateRecordForm runs an interactive wizard that collects field values
// for a new record. When a report is given, a small sample of its records
// is fetched first so field name inputs can offer suggestions; reports
// are schemaless, so the sample is the only source of field names. The
// returned payload is ready for Service.Create.
func CreateRecordForm(svc *records.Service, report, defaultForm string) (string, creator.Record, error) {
	accessible := os.Getenv("ACCESSIBLE") != ""

	var suggestions []string
	if report != "" {
		var sample []creator.Record
		fetchErr := spinner.New().
			Title("Fetching field names...").
			Accessible(accessible).
			Output(os.Stderr).
			ActionWithErr(func(ctx context.Context) error {
				recs, err := svc.List(ctx, report, creator.ListOptions{Page: 1, PageSize: sampleSize})
				if err != nil {
					return err
				}
				sample = recs
				return nil
			}).
			Run()
		if errors.Is(fetchErr, huh.ErrUserAborted) || errors.Is(fetchErr, context.Canceled) {
			return "", nil, ErrAborted
		}
		// Any other fetch error just means no suggestions.
		suggestions = fieldSuggestions(sample)
	}

	form := defaultForm
	formInput := huh.NewInput().
		Title("Form link name").
		Validate(util.ValidateLinkName).
		Value(&form)

	if err := runForm(accessible, huh.NewGroup(formInput)); err != nil {
		return "", nil, err
	}

	// --- Collect fields one at a time ---

	rec := creator.Record{}
	for {
		var name, value string
		addMore := false

		nameInput := huh.NewInput().
			Title("Field link name").
			Suggestions(suggestions).
			Validate(util.ValidateLinkName).
			Value(&name)
		valueInput := huh.NewInput().
			Title("Value").
			Value(&value)
		moreConfirm := huh.NewConfirm().
			Title("Add another field?").
			Affirmative("Yes").
			Negative("No").
			Value(&addMore)

		if err := runForm(accessible, huh.NewGroup(nameInput, valueInput, moreConfirm)); err != nil {
			return "", nil, err
		}

		rec[name] = value
		if !addMore {
			break
		}
	}

	// --- Summary + Confirm ---

	summaryNote := huh.NewNote().
		Title("Record details").
		Description(buildRecordSummary(form, rec))

	confirm := false
	confirmField := huh.NewConfirm().
		Title("Submit this record?").
		Affirmative("Yes, submit").
		Negative("Cancel").
		Value(&confirm)

	if err := runForm(accessible, huh.NewGroup(summaryNote, confirmField)); err != nil {
		return "", nil, err
	}
	if !confirm {
		return "", nil, ErrAborted
	}

	return form, rec, nil
}

// runForm creates and runs a huh.Form, translating ErrUserAborted to ErrAborted.
func runForm(accessible bool, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}

// fieldSuggestions collects the field link names seen across the sampled
// records, sorted, with ID excluded.
func fieldSuggestions(sample []creator.Record) []string {
	seen := make(map[string]bool)
	for _, rec := range sample {
		for _, name := range rec.FieldNames() {
			if name != "ID" {
				seen[name] = true
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// buildRecordSummary formats the collected payload for the confirmation
// summary.
func buildRecordSummary(form string, rec creator.Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Form: %s\n", form)
	for _, name := range rec.FieldNames() {
		fmt.Fprintf(&b, "%s: %s\n", name, rec.Field(name))
	}

	return strings.TrimSpace(b.String())
}
