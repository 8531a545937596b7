package creator

import "errors"

// Sentinel errors for API error classification. The client wraps these so
// callers can handle error categories uniformly with errors.Is, without
// inspecting HTTP status codes or Creator's embedded result codes.
//
//	return fmt.Errorf("failed to fetch record: %w", creator.ErrNotFound)
var (
	// ErrNotFound indicates the record, report, or form does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized indicates the request was rejected due to an
	// invalid, expired, or missing OAuth token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates Creator throttled the request and the
	// client's retries were exhausted.
	ErrRateLimited = errors.New("rate limited")

	// ErrConflict indicates a duplicate entry or state conflict, such as
	// a unique-field collision on submit.
	ErrConflict = errors.New("conflict")
)
