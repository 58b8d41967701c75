package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"smartevents/internal/domain/session"
	"smartevents/internal/domain/user"
)

// ProfileUpdater is the slice of the API client used by profile edits.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, token string, u user.User) (session.Session, error)
}

// SessionUpdater replaces a session payload in place after a profile
// refresh.
type SessionUpdater interface {
	Update(ctx context.Context, id string, value session.Session) error
}

// UpdateProfileInput carries input for the orchestrator.
type UpdateProfileInput struct {
	SessionID    string
	Name         string
	Email        string
	ImageDataURL string // optional new picture as a data URL
}

// UpdateProfileDeps holds dependencies for UpdateProfile.
type UpdateProfileDeps struct {
	API      ProfileUpdater
	Upload   Uploader
	Sessions SessionUpdater
}

var ErrBadProfilePayload = errors.New("the server returned an unusable profile response")

// ExecuteUpdateProfile validates the edited profile, uploads a new
// picture when one was chosen, submits the update and replaces the stored
// session with the refreshed payload. Role never changes on this path:
// login is an Authenticated→Authenticated transition with the same role.
// PRE: current is the session loaded for this request
// POST: on success the session row matches the backend's refreshed payload
func ExecuteUpdateProfile(ctx context.Context, current session.Session, input UpdateProfileInput, deps UpdateProfileDeps) (session.Session, error) {
	u := user.User{
		ID:             current.UserID,
		Name:           input.Name,
		Email:          input.Email,
		Role:           current.Role,
		ProfilePicture: current.ProfilePicture,
	}
	if err := u.Validate(); err != nil {
		return session.Session{}, err
	}

	if input.ImageDataURL != "" {
		url, err := deps.Upload.Upload(ctx, current.Token, input.ImageDataURL)
		if err != nil {
			return session.Session{}, err
		}
		u.ProfilePicture = url
	}

	refreshed, err := deps.API.UpdateProfile(ctx, current.Token, u)
	if err != nil {
		return session.Session{}, err
	}
	if refreshed.Token == "" {
		// Some backends omit the token on profile updates; keep the old one.
		refreshed.Token = current.Token
	}
	if refreshed.Role != current.Role {
		slog.Error("auth_event", "event", "profile_role_drift", "was", current.Role, "got", refreshed.Role)
		return session.Session{}, ErrBadProfilePayload
	}
	if err := refreshed.Validate(); err != nil {
		return session.Session{}, ErrBadProfilePayload
	}

	if err := deps.Sessions.Update(ctx, input.SessionID, refreshed); err != nil {
		return session.Session{}, err
	}

	slog.Info("auth_event", "event", "profile_updated", "email", refreshed.Email)
	return refreshed, nil
}
