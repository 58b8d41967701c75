package session

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func validSession() Session {
	return Session{
		UserID: "user-001",
		Name:   "Alice Chen",
		Email:  "alice@example.com",
		Role:   RoleStudent,
		Token:  "token-abc",
	}
}

// signedToken builds a real HS256 JWT with the given expiry claim.
func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-001",
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

// TestValidate_Valid tests that a fully populated session passes.
func TestValidate_Valid(t *testing.T) {
	s := validSession()
	if err := s.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// TestValidate_Errors tests each invariant violation in isolation.
func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Session)
		wantErr error
	}{
		{"empty user id", func(s *Session) { s.UserID = "  " }, ErrEmptyUserID},
		{"bad email", func(s *Session) { s.Email = "not-an-email" }, ErrInvalidEmail},
		{"unknown role", func(s *Session) { s.Role = "superuser" }, ErrInvalidRole},
		{"empty role", func(s *Session) { s.Role = "" }, ErrInvalidRole},
		{"empty token", func(s *Session) { s.Token = "" }, ErrEmptyToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSession()
			tt.mutate(&s)
			if err := s.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestTokenExpired_Past tests that a JWT with a past exp claim reads as expired.
func TestTokenExpired_Past(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	s := validSession()
	s.Token = signedToken(t, now.Add(-time.Hour))
	if !s.TokenExpired(now) {
		t.Error("expected token to be expired")
	}
}

// TestTokenExpired_Future tests that a JWT expiring later reads as live.
func TestTokenExpired_Future(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	s := validSession()
	s.Token = signedToken(t, now.Add(time.Hour))
	if s.TokenExpired(now) {
		t.Error("expected token to be live")
	}
}

// TestTokenExpired_NotAJWT tests that an opaque token is treated as live;
// only the backend can judge it.
func TestTokenExpired_NotAJWT(t *testing.T) {
	s := validSession()
	s.Token = "opaque-bearer-token"
	if s.TokenExpired(time.Now()) {
		t.Error("expected opaque token to be treated as live")
	}
}

// TestTokenExpired_NoExpClaim tests that a JWT without exp is treated as live.
func TestTokenExpired_NoExpClaim(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user-001"})
	signed, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	s := validSession()
	s.Token = signed
	if s.TokenExpired(time.Now()) {
		t.Error("expected token without exp to be treated as live")
	}
}
