// Package sessionstore provides the durable key-value store that holds the
// persisted session: exactly two logical entries, the bearer token and the
// JSON-encoded user record.
//
// The co-presence invariant is the whole point of the composite operations:
// token and user are always written together and removed together. A store
// with only one of the two entries is corrupt and must be treated as empty.
package sessionstore

import "errors"

const (
	// KeyToken holds the raw bearer token string.
	KeyToken = "token"
	// KeyUser holds the JSON-serialized user record.
	KeyUser = "user"
)

// ErrUnknownKey is returned for keys outside the two-entry contract.
var ErrUnknownKey = errors.New("sessionstore: unknown key")

// Store is the persisted session store contract. Entries have no expiry;
// they live until explicitly removed. The token is stored as plain text;
// an accepted risk for a local development credential store.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error

	// SaveSession writes both entries in one logical operation.
	SaveSession(token, userJSON string) error
	// ClearSession removes both entries in one logical operation.
	// Clearing an already-empty store is not an error.
	ClearSession() error
}

func validKey(key string) bool {
	return key == KeyToken || key == KeyUser
}
