// Package session holds the client-side login state: a small set of named
// string values with independent expiry, modeled on a browser cookie jar.
package session

import (
	"errors"
	"fmt"
	"time"
)

// Well-known session keys.
const (
	KeyUserID = "userId"
	KeyRole   = "role"
)

// DefaultTTL is how long a login survives without a fresh one.
const DefaultTTL = 30 * time.Minute

var (
	// ErrEmptyValue is logged when Set is called with an empty value. The
	// call is a no-op so that a missing value never overwrites a valid
	// session.
	ErrEmptyValue = errors.New("session value is empty")
	// ErrAttributeMismatch means a clear was attempted with attributes that
	// do not match the original write, which would silently leave the stored
	// value readable.
	ErrAttributeMismatch = errors.New("cookie attributes do not match original write")
)

// Role is the closed set of account roles.
type Role string

const (
	RoleFarmer   Role = "Farmer"
	RoleStaff    Role = "Staff"
	RoleCustomer Role = "Customer"
)

// ParseRole validates a role string at the session boundary.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleFarmer, RoleStaff, RoleCustomer:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Store is durable client-side key/value storage with explicit expiry.
// Implementations are injected into callers; there is no ambient global
// store.
type Store interface {
	// Get returns the currently valid value for key. Expired and absent
	// entries are indistinguishable.
	Get(key string) (string, bool)
	// Set persists value under key, expiring ttl from now. An empty value
	// is a logged no-op.
	Set(key, value string, ttl time.Duration) error
	// Clear expires the entry immediately.
	Clear(key string)
}

// Session is the authenticated identity derived from a Store.
type Session struct {
	UserID string
	Role   Role
}

// Authenticated reports whether the session identifies a logged-in user.
func (s Session) Authenticated() bool {
	return s.UserID != ""
}

// Current reads the session out of a store. A role without a user ID, or a
// role outside the closed set, is treated as not authenticated.
func Current(store Store) Session {
	userID, ok := store.Get(KeyUserID)
	if !ok || userID == "" {
		return Session{}
	}
	roleValue, ok := store.Get(KeyRole)
	if !ok {
		return Session{UserID: userID}
	}
	role, err := ParseRole(roleValue)
	if err != nil {
		return Session{}
	}
	return Session{UserID: userID, Role: role}
}

// Begin records a fresh login, overwriting any previous values.
func Begin(store Store, userID string, role Role, ttl time.Duration) error {
	if err := store.Set(KeyUserID, userID, ttl); err != nil {
		return err
	}
	return store.Set(KeyRole, string(role), ttl)
}

// End logs out by expiring both session keys immediately.
func End(store Store) {
	store.Clear(KeyUserID)
	store.Clear(KeyRole)
}
