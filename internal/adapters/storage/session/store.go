package session

import (
	"context"
	"errors"

	domain "smartevents/internal/domain/session"
)

// ErrNotFound is returned when no live session exists for an ID. Missing,
// malformed and expired rows all read as not-found: absence of a session
// is the unauthenticated state, never an error surfaced to the user.
var ErrNotFound = errors.New("session not found")

// Store persists Session state across restarts. One row per logged-in
// browser; the row ID is the opaque value carried by the session cookie.
type Store interface {
	// Create stores a new session and returns its opaque ID.
	Create(ctx context.Context, value domain.Session) (string, error)
	// Get retrieves a live session by ID.
	Get(ctx context.Context, id string) (domain.Session, error)
	// Update replaces the session payload in place (profile refresh).
	Update(ctx context.Context, id string, value domain.Session) error
	// Delete removes a session. Idempotent: deleting an absent ID is nil.
	Delete(ctx context.Context, id string) error
}
