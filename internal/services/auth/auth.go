package auth

import (
	"errors"

	"github.com/pgrowth/tppgUtil/internal/util"
)

const ServiceName = "tppg"

var ErrTokenNotFound = errors.New("auth token not found")

// Store persists OAuth tokens keyed by data center. Accounts live in
// exactly one Zoho data center, so a token is only valid against the
// API origin of the data center it was issued in.
type Store interface {
	SetToken(dataCenter string, token string) error
	GetToken(dataCenter string) (string, error)
	DeleteToken(dataCenter string) error
}

// DefaultStore returns the standard auth store backed by the OS keychain.
func DefaultStore() Store {
	return NewKeyringStore(ServiceName)
}

// NormalizeDataCenter normalizes a data center name for consistent key lookup.
func NormalizeDataCenter(dataCenter string) string {
	return util.NormalizeKey(dataCenter)
}
