package session

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	domain "smartevents/internal/domain/session"
)

// MaxAge is how long a persisted session may live regardless of token
// expiry. Matches a campus week; the backend token usually expires first.
const MaxAge = 7 * 24 * time.Hour

const timeFormat = "2006-01-02T15:04:05.999999999Z07:00"

// SQLiteStore implements Store using SQLite, with the bearer token sealed
// at rest.
type SQLiteStore struct {
	db     *sql.DB
	sealer *sealer
	now    func() time.Time
}

// NewSQLiteStore creates a session store over an open database. keyHex is
// the hex-encoded seal key; empty means a random per-process key.
func NewSQLiteStore(db *sql.DB, keyHex string) (*SQLiteStore, error) {
	s, err := newSealer(keyHex)
	if err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db, sealer: s, now: time.Now}, nil
}

// Migrate creates the session table if it does not exist.
func Migrate(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS session (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL,
		role TEXT NOT NULL,
		token_sealed BLOB NOT NULL,
		profile_picture TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("migrate session table: %w", err)
	}
	return nil
}

// Create stores a new session and returns its opaque ID.
// PRE: value passed domain validation (non-empty token, valid role)
// POST: session is persisted; returned ID is a 64-char random hex string
func (s *SQLiteStore) Create(ctx context.Context, value domain.Session) (string, error) {
	id, err := generateID()
	if err != nil {
		return "", err
	}
	sealed, err := s.sealer.seal(value.Token)
	if err != nil {
		return "", err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO session (id, user_id, name, email, role, token_sealed, profile_picture, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, value.UserID, value.Name, value.Email, value.Role, sealed,
		value.ProfilePicture, s.now().Format(timeFormat))
	if err != nil {
		return "", fmt.Errorf("insert session: %w", err)
	}
	return id, nil
}

// Get retrieves a live session by ID. Rows that are missing, older than
// MaxAge, or whose sealed token cannot be opened read as ErrNotFound, and
// dead rows are deleted on the way out.
// PRE: id is non-empty
// POST: returned session carries the unsealed bearer token
func (s *SQLiteStore) Get(ctx context.Context, id string) (domain.Session, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT user_id, name, email, role, token_sealed, profile_picture, created_at
		 FROM session WHERE id = ?`, id)

	var value domain.Session
	var sealed []byte
	var createdAt string
	err := row.Scan(&value.UserID, &value.Name, &value.Email, &value.Role, &sealed, &value.ProfilePicture, &createdAt)
	if err == sql.ErrNoRows {
		return domain.Session{}, ErrNotFound
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("scan session: %w", err)
	}

	created, err := time.Parse(timeFormat, createdAt)
	if err != nil || s.now().Sub(created) > MaxAge {
		s.drop(ctx, id, "expired")
		return domain.Session{}, ErrNotFound
	}
	value.CreatedAt = created

	token, err := s.sealer.open(sealed)
	if err != nil {
		// Wrong or rotated seal key: the row is unreadable, treat as logged out.
		s.drop(ctx, id, "unsealable")
		return domain.Session{}, ErrNotFound
	}
	value.Token = token
	return value, nil
}

// Update replaces the session payload in place, keeping the cookie ID.
// PRE: a row with this id exists
// POST: row carries the new payload with a freshly sealed token
func (s *SQLiteStore) Update(ctx context.Context, id string, value domain.Session) error {
	sealed, err := s.sealer.seal(value.Token)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE session SET user_id = ?, name = ?, email = ?, role = ?, token_sealed = ?, profile_picture = ?
		 WHERE id = ?`,
		value.UserID, value.Name, value.Email, value.Role, sealed, value.ProfilePicture, id)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a session.
// POST: no row with this id remains; absent ids are a no-op
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) drop(ctx context.Context, id, reason string) {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE id = ?`, id); err != nil {
		slog.Error("session_drop_failed", "reason", reason, "error", err.Error())
		return
	}
	slog.Info("session_dropped", "reason", reason)
}

func generateID() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
