package draftstore

import "time"

// Draft statuses. A draft starts pending, then moves to submitted or
// failed after the create call resolves.
const (
	StatusPending   = "pending"
	StatusSubmitted = "submitted"
	StatusFailed    = "failed"
)

// Draft is a persisted record submission. The payload survives locally
// so an interrupted or failed create can be inspected and resubmitted.
type Draft struct {
	// ID is the auto-increment primary key (assigned on insert).
	ID int64

	// Form is the Creator form link name the payload targets.
	Form string

	// Payload is the JSON-encoded field data exactly as it would be
	// submitted.
	Payload string

	// Status is pending, submitted, or failed.
	Status string

	// RecordID holds the Creator record ID once the submission succeeds.
	RecordID string

	// ErrorMessage explains the failure when Status is failed.
	ErrorMessage string

	// CreatedAt is when the draft was first written.
	CreatedAt time.Time

	// UpdatedAt is the last time the draft changed.
	UpdatedAt time.Time
}
