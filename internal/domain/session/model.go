package session

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role constants
const (
	RoleStudent   = "student"
	RoleOrganizer = "organizer"
	RoleAdmin     = "admin"
)

// ValidRoles contains all valid role values.
var ValidRoles = []string{RoleStudent, RoleOrganizer, RoleAdmin}

// Domain errors
var (
	ErrEmptyToken   = errors.New("session token cannot be empty")
	ErrEmptyUserID  = errors.New("session user id cannot be empty")
	ErrInvalidEmail = errors.New("email must contain '@'")
	ErrInvalidRole  = errors.New("role must be one of: student, organizer, admin")
)

// Session holds the authenticated user's identity and bearer token.
// A Session only exists for an authenticated user; absence of a Session
// means unauthenticated. The Token is treated as immutable for the
// lifetime of any request that reads it.
type Session struct {
	UserID         string
	Name           string
	Email          string
	Role           string
	Token          string
	ProfilePicture string
	CreatedAt      time.Time
}

// Validate checks the Session invariants.
// PRE: Session struct is populated from a login or profile response
// POST: Returns nil if valid, error otherwise
func (s *Session) Validate() error {
	if strings.TrimSpace(s.UserID) == "" {
		return ErrEmptyUserID
	}
	if !strings.Contains(s.Email, "@") {
		return ErrInvalidEmail
	}
	if !isValidRole(s.Role) {
		return ErrInvalidRole
	}
	if strings.TrimSpace(s.Token) == "" {
		return ErrEmptyToken
	}
	return nil
}

// TokenExpired reports whether the bearer token carries an exp claim in the
// past. The signature is NOT verified here; only the backend can do that.
// Tokens without an exp claim, or that do not parse as JWTs, are treated as
// live and left for the backend to reject.
// INVARIANT: Session fields are not mutated
func (s *Session) TokenExpired(now time.Time) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(s.Token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}

func isValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
