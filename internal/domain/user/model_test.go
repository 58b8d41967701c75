package user

import (
	"errors"
	"testing"

	"smartevents/internal/domain/session"
)

func validUser() User {
	return User{
		ID:    "user-001",
		Name:  "Alice Chen",
		Email: "alice@example.com",
		Role:  session.RoleStudent,
	}
}

// TestValidate tests the profile/admin form checks.
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*User)
		wantErr error
	}{
		{"valid", func(u *User) {}, nil},
		{"empty name", func(u *User) { u.Name = " " }, ErrEmptyName},
		{"bad email", func(u *User) { u.Email = "nope" }, ErrInvalidEmail},
		{"bad role", func(u *User) { u.Role = "root" }, ErrInvalidRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(&u)
			if err := u.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestValidate_AllRoles tests every valid role passes.
func TestValidate_AllRoles(t *testing.T) {
	for _, role := range session.ValidRoles {
		u := validUser()
		u.Role = role
		if err := u.Validate(); err != nil {
			t.Errorf("role %q: unexpected error: %v", role, err)
		}
	}
}
