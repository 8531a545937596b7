package records

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/pgrowth/tppgUtil/internal/creator"
	"github.com/pgrowth/tppgUtil/internal/draftstore"
)

// saveDraft persists the payload before submission. Returns nil when no
// draft store is configured.
func (s *Service) saveDraft(form string, data creator.Record) (*draftstore.Draft, error) {
	if s.drafts == nil {
		return nil, nil
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode draft payload: %w", err)
	}

	draft := &draftstore.Draft{
		Form:    form,
		Payload: string(payload),
		Status:  draftstore.StatusPending,
	}
	if err := s.drafts.Save(draft); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return draft, nil
}

// settleDraft records the outcome of a submission against its draft.
// Bookkeeping failures are swallowed so they cannot mask the submission
// result.
func (s *Service) settleDraft(draft *draftstore.Draft, id string, submitErr error) {
	if s.drafts == nil || draft == nil {
		return
	}

	if submitErr != nil {
		draft.Status = draftstore.StatusFailed
		draft.ErrorMessage = submitErr.Error()
	} else {
		draft.Status = draftstore.StatusSubmitted
		draft.RecordID = id
		draft.ErrorMessage = ""
	}
	_ = s.drafts.Save(draft)
}

// Drafts returns submissions that have not gone through yet, newest first.
func (s *Service) Drafts() ([]draftstore.Draft, error) {
	if s.drafts == nil {
		return nil, fmt.Errorf("draft store is not configured")
	}
	return s.drafts.ListPending()
}

// RecentDrafts returns the n most recent drafts regardless of status,
// newest first. Submitted drafts remain visible here as a record of what
// was sent.
func (s *Service) RecentDrafts(n int) ([]draftstore.Draft, error) {
	if s.drafts == nil {
		return nil, fmt.Errorf("draft store is not configured")
	}
	return s.drafts.ListRecent(n)
}

// Resume resubmits a stored draft and returns the new record's ID. The
// draft itself is updated in place rather than copied, so a draft only
// ever produces one record.
func (s *Service) Resume(ctx context.Context, draftID int64) (string, error) {
	if s.drafts == nil {
		return "", fmt.Errorf("draft store is not configured")
	}

	draft, err := s.drafts.Get(draftID)
	if err != nil {
		return "", err
	}
	if draft == nil {
		return "", fmt.Errorf("draft %d not found", draftID)
	}
	if draft.Status == draftstore.StatusSubmitted {
		return "", fmt.Errorf("draft %d was already submitted as record %s", draftID, draft.RecordID)
	}

	var data creator.Record
	dec := json.NewDecoder(bytes.NewReader([]byte(draft.Payload)))
	dec.UseNumber()
	if err := dec.Decode(&data); err != nil {
		return "", fmt.Errorf("draft %d has a malformed payload: %w", draftID, err)
	}

	id, err := s.api.CreateRecord(ctx, draft.Form, data)
	s.settleDraft(draft, id, err)
	if err != nil {
		return "", err
	}

	s.invalidate()
	return id, nil
}
