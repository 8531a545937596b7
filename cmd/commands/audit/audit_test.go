package audit

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pgrowth/tppgUtil/internal/auditlog"
	"github.com/pgrowth/tppgUtil/internal/database"
)

// setupTestDB points the shared database at a temp file.
func setupTestDB(t *testing.T) {
	t.Helper()
	database.SetPath(filepath.Join(t.TempDir(), "tppg.db"))
	t.Cleanup(database.ResetPath)
}

func seedEntries(t *testing.T, entries ...*auditlog.AuditEntry) {
	t.Helper()
	repo, err := auditlog.Open()
	if err != nil {
		t.Fatalf("failed to open audit repository: %v", err)
	}
	defer repo.Close()

	for _, entry := range entries {
		if err := repo.Save(entry); err != nil {
			t.Fatalf("failed to seed entry: %v", err)
		}
	}
}

// execAudit creates the audit command, wires up output buffers, runs with
// the given args, and returns what was written to stdout and stderr.
func execAudit(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	cmd.Execute()
	return outBuf.String(), errBuf.String()
}

func TestList_Empty(t *testing.T) {
	setupTestDB(t)

	stdout, stderr := execAudit(t, "list")
	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "No audit entries found.") {
		t.Errorf("expected empty message, got: %s", stdout)
	}
}

func TestList_ShowsEntries(t *testing.T) {
	setupTestDB(t)
	seedEntries(t,
		&auditlog.AuditEntry{
			Command:     "tppg records create",
			Application: "pgrowth/crm",
			Outcome:     auditlog.OutcomeSuccess,
			DurationMs:  42,
		},
		&auditlog.AuditEntry{
			Command:    "tppg theme apply",
			Outcome:    auditlog.OutcomeError,
			Detail:     "colorspace: invalid hex color format",
			DurationMs: 3,
		},
	)

	stdout, stderr := execAudit(t, "list")
	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	for _, want := range []string{
		"TIME", "COMMAND", "APPLICATION", "OUTCOME",
		"tppg records create", "pgrowth/crm", "success", "42ms",
		"tppg theme apply", "error", "invalid hex color format",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output, got: %s", want, stdout)
		}
	}
}

func TestList_FilterByCommand(t *testing.T) {
	setupTestDB(t)
	seedEntries(t,
		&auditlog.AuditEntry{Command: "tppg records create", Outcome: auditlog.OutcomeSuccess},
		&auditlog.AuditEntry{Command: "tppg theme apply", Outcome: auditlog.OutcomeSuccess},
	)

	stdout, _ := execAudit(t, "list", "--command", "tppg theme apply")
	if !strings.Contains(stdout, "tppg theme apply") {
		t.Errorf("expected filtered command in output, got: %s", stdout)
	}
	if strings.Contains(stdout, "tppg records create") {
		t.Errorf("filter leaked other commands: %s", stdout)
	}
}

func TestList_JSON(t *testing.T) {
	setupTestDB(t)
	seedEntries(t, &auditlog.AuditEntry{
		Command:      "tppg records delete",
		Application:  "pgrowth/crm",
		ResourceType: auditlog.ResourceRecord,
		ResourceID:   "101",
		Outcome:      auditlog.OutcomeSuccess,
	})

	stdout, stderr := execAudit(t, "list", "-o", "json")
	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	for _, want := range []string{`"command": "tppg records delete"`, `"resource_id": "101"`} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output, got: %s", want, stdout)
		}
	}
}

func TestList_RejectsZeroLimit(t *testing.T) {
	setupTestDB(t)

	_, stderr := execAudit(t, "list", "--limit", "0")
	if !strings.Contains(stderr, "limit must be greater than 0") {
		t.Errorf("expected limit error, got: %s", stderr)
	}
}

func TestPrune_RemovesOldEntries(t *testing.T) {
	setupTestDB(t)
	seedEntries(t,
		&auditlog.AuditEntry{
			Timestamp: time.Now().UTC().Add(-40 * 24 * time.Hour),
			Command:   "tppg records create",
			Outcome:   auditlog.OutcomeSuccess,
		},
		&auditlog.AuditEntry{
			Command: "tppg records list",
			Outcome: auditlog.OutcomeSuccess,
		},
	)

	stdout, stderr := execAudit(t, "prune", "--older-than", "30d")
	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "Removed 1 audit entr(y/ies).") {
		t.Errorf("expected one removal, got: %s", stdout)
	}

	listOut, _ := execAudit(t, "list")
	if strings.Contains(listOut, "tppg records create") {
		t.Errorf("old entry survived prune: %s", listOut)
	}
	if !strings.Contains(listOut, "tppg records list") {
		t.Errorf("recent entry was pruned: %s", listOut)
	}
}

func TestPrune_RequiresOlderThan(t *testing.T) {
	setupTestDB(t)

	_, stderr := execAudit(t, "prune")
	if !strings.Contains(stderr, "--older-than is required") {
		t.Errorf("expected required flag error, got: %s", stderr)
	}
}

func TestPrune_RejectsMalformedDuration(t *testing.T) {
	setupTestDB(t)

	_, stderr := execAudit(t, "prune", "--older-than", "soon")
	if !strings.Contains(stderr, `invalid duration "soon"`) {
		t.Errorf("expected invalid duration error, got: %s", stderr)
	}
}
