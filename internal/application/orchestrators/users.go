package orchestrators

import (
	"context"
	"log/slog"

	"smartevents/internal/domain/user"
)

// UserWriter is the slice of the API client used by admin user
// moderation.
type UserWriter interface {
	UpdateUser(ctx context.Context, token string, u user.User) error
	DeleteUser(ctx context.Context, token, id string) error
}

// UserDeps holds dependencies for user moderation.
type UserDeps struct {
	API UserWriter
}

// ExecuteUpdateUser validates and submits an admin edit of another user
// (typically a role change).
// PRE: token belongs to an admin session; u.ID is non-empty
func ExecuteUpdateUser(ctx context.Context, token string, u user.User, deps UserDeps) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if err := deps.API.UpdateUser(ctx, token, u); err != nil {
		return err
	}
	slog.Info("user_updated", "id", u.ID, "role", u.Role)
	return nil
}

// ExecuteDeleteUser fires the delete call after the confirmation step.
func ExecuteDeleteUser(ctx context.Context, token, id string, deps UserDeps) error {
	if err := deps.API.DeleteUser(ctx, token, id); err != nil {
		return err
	}
	slog.Info("user_deleted", "id", id)
	return nil
}
