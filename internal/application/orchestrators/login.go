package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"smartevents/internal/domain/session"
)

// Authenticator is the slice of the API client used by login and
// registration.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (session.Session, error)
	Register(ctx context.Context, name, email, password, role string) (session.Session, error)
}

// SessionCreator is the slice of the session store used after a
// successful authentication.
type SessionCreator interface {
	Create(ctx context.Context, value session.Session) (string, error)
}

// LoginInput carries input for the orchestrator.
type LoginInput struct {
	Email    string
	Password string
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	API      Authenticator
	Sessions SessionCreator
}

// LoginResult carries the created session and its cookie ID.
type LoginResult struct {
	SessionID string
	Session   session.Session
}

var (
	ErrEmptyCredentials = errors.New("email and password are required")
	ErrBadLoginPayload  = errors.New("the server returned an unusable login response")
)

// ExecuteLogin authenticates against the backend and persists the
// returned session. The caller must not store a session the backend did
// not vouch for: a payload failing domain validation is rejected here.
// PRE: deps are non-nil
// POST: on success a session row exists and its cookie ID is returned
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (LoginResult, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return LoginResult{}, ErrEmptyCredentials
	}

	sess, err := deps.API.Login(ctx, input.Email, input.Password)
	if err != nil {
		return LoginResult{}, err
	}
	if err := sess.Validate(); err != nil {
		slog.Error("auth_event", "event", "login_payload_invalid", "error", err.Error())
		return LoginResult{}, ErrBadLoginPayload
	}

	id, err := deps.Sessions.Create(ctx, sess)
	if err != nil {
		return LoginResult{}, err
	}

	slog.Info("auth_event", "event", "login", "email", sess.Email, "role", sess.Role)
	return LoginResult{SessionID: id, Session: sess}, nil
}

// RegisterInput carries input for the orchestrator.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Role            string
}

// ExecuteRegister creates an account and logs the new user straight in.
// Only student and organizer roles may self-register; admins are created
// server-side.
func ExecuteRegister(ctx context.Context, input RegisterInput, deps LoginDeps) (LoginResult, error) {
	if strings.TrimSpace(input.Name) == "" {
		return LoginResult{}, errors.New("name is required")
	}
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return LoginResult{}, ErrEmptyCredentials
	}
	if input.Password != input.ConfirmPassword {
		return LoginResult{}, errors.New("passwords do not match")
	}
	if input.Role != session.RoleStudent && input.Role != session.RoleOrganizer {
		return LoginResult{}, errors.New("role must be student or organizer")
	}

	sess, err := deps.API.Register(ctx, input.Name, input.Email, input.Password, input.Role)
	if err != nil {
		return LoginResult{}, err
	}
	if err := sess.Validate(); err != nil {
		slog.Error("auth_event", "event", "register_payload_invalid", "error", err.Error())
		return LoginResult{}, ErrBadLoginPayload
	}

	id, err := deps.Sessions.Create(ctx, sess)
	if err != nil {
		return LoginResult{}, err
	}

	slog.Info("auth_event", "event", "registered", "email", sess.Email, "role", sess.Role)
	return LoginResult{SessionID: id, Session: sess}, nil
}
