package draftstore

import (
	"path/filepath"
	"testing"
	"time"
)

func tempRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tppg.db")
	r, err := OpenAt(path)
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestSave_Insert(t *testing.T) {
	r := tempRepo(t)

	draft := &Draft{
		Form:    "Lead",
		Payload: `{"Name":"Acme Corp"}`,
	}

	if err := r.Save(draft); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if draft.ID == 0 {
		t.Error("expected ID to be assigned after insert")
	}
	if draft.Status != StatusPending {
		t.Errorf("expected default status pending, got %q", draft.Status)
	}
	if draft.CreatedAt.IsZero() || draft.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestSave_Update(t *testing.T) {
	r := tempRepo(t)

	draft := &Draft{Form: "Lead", Payload: `{"Name":"Acme Corp"}`}
	if err := r.Save(draft); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	draft.Status = StatusSubmitted
	draft.RecordID = "3888833000000114027"
	if err := r.Save(draft); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, err := r.Get(draft.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Status != StatusSubmitted {
		t.Errorf("expected status submitted, got %q", got.Status)
	}
	if got.RecordID != "3888833000000114027" {
		t.Errorf("expected record ID to persist, got %q", got.RecordID)
	}
}

func TestSave_UpdateNotFound(t *testing.T) {
	r := tempRepo(t)

	draft := &Draft{ID: 999, Form: "Lead", Status: StatusFailed}
	if err := r.Save(draft); err == nil {
		t.Fatal("expected error updating non-existent draft")
	}
}

func TestGet_Missing(t *testing.T) {
	r := tempRepo(t)

	got, err := r.Get(12345)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing draft, got %+v", got)
	}
}

func TestListPending(t *testing.T) {
	r := tempRepo(t)

	drafts := []*Draft{
		{Form: "Lead", Payload: "{}", Status: StatusPending},
		{Form: "Lead", Payload: "{}", Status: StatusSubmitted},
		{Form: "Contact", Payload: "{}", Status: StatusFailed},
	}
	for _, d := range drafts {
		if err := r.Save(d); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	pending, err := r.ListPending()
	if err != nil {
		t.Fatalf("ListPending failed: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 resumable drafts, got %d", len(pending))
	}
	for _, d := range pending {
		if d.Status == StatusSubmitted {
			t.Errorf("submitted draft %d should not be resumable", d.ID)
		}
	}
}

func TestListRecent(t *testing.T) {
	r := tempRepo(t)

	for i := 0; i < 3; i++ {
		d := &Draft{
			Form:      "Lead",
			Payload:   "{}",
			CreatedAt: time.Now().UTC().Add(time.Duration(i) * time.Second),
		}
		if err := r.Save(d); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	recent, err := r.ListRecent(2)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(recent))
	}
	if recent[0].CreatedAt.Before(recent[1].CreatedAt) {
		t.Error("expected drafts sorted newest first")
	}
}

func TestDeleteOlderThan(t *testing.T) {
	r := tempRepo(t)

	old := &Draft{Form: "Lead", Payload: "{}", Status: StatusSubmitted}
	if err := r.Save(old); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	// Backdate the resolved draft past the cutoff.
	_, err := r.db.Exec(`UPDATE drafts SET updated_at = ? WHERE id = ?`,
		time.Now().UTC().Add(-48*time.Hour).Format(time.RFC3339Nano), old.ID)
	if err != nil {
		t.Fatalf("backdating failed: %v", err)
	}

	stale := &Draft{Form: "Lead", Payload: "{}", Status: StatusPending}
	if err := r.Save(stale); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	_, err = r.db.Exec(`UPDATE drafts SET updated_at = ? WHERE id = ?`,
		time.Now().UTC().Add(-48*time.Hour).Format(time.RFC3339Nano), stale.ID)
	if err != nil {
		t.Fatalf("backdating failed: %v", err)
	}

	removed, err := r.DeleteOlderThan(24 * time.Hour)
	if err != nil {
		t.Fatalf("DeleteOlderThan failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}

	// The pending draft survives no matter how old it is.
	if got, err := r.Get(stale.ID); err != nil || got == nil {
		t.Errorf("expected pending draft to survive pruning, got %+v err %v", got, err)
	}
}
