package user

import (
	"errors"
	"strings"

	"smartevents/internal/domain/session"
)

// MaxNameLength bounds user-supplied display names.
const MaxNameLength = 100

// Domain errors
var (
	ErrEmptyName    = errors.New("name is required")
	ErrInvalidEmail = errors.New("email must contain '@'")
	ErrInvalidRole  = errors.New("role must be one of: student, organizer, admin")
)

// User is the client-side copy of a backend user record, shown on the
// admin moderation panel and the profile forms.
type User struct {
	ID             string `json:"_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	ProfilePicture string `json:"profilePicture"`
}

// Validate runs the required-field checks before a profile update or an
// admin role change is submitted.
// PRE: User struct is populated from a form
// POST: Returns nil if submittable, error otherwise
func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return ErrEmptyName
	}
	if len(u.Name) > MaxNameLength {
		return errors.New("name cannot exceed 100 characters")
	}
	if !strings.Contains(u.Email, "@") {
		return ErrInvalidEmail
	}
	if !isValidRole(u.Role) {
		return ErrInvalidRole
	}
	return nil
}

func isValidRole(role string) bool {
	for _, r := range session.ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
