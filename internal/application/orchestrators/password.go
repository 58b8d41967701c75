package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"
)

// PasswordResetter is the slice of the API client used by the reset
// flow. Email delivery belongs to the backend on this path.
type PasswordResetter interface {
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, password, confirm string) error
}

// PasswordDeps holds dependencies for the password reset flow.
type PasswordDeps struct {
	API PasswordResetter
}

// ExecuteForgotPassword asks the backend to email a reset link.
func ExecuteForgotPassword(ctx context.Context, email string, deps PasswordDeps) error {
	if !strings.Contains(email, "@") {
		return errors.New("a valid email is required")
	}
	if err := deps.API.ForgotPassword(ctx, email); err != nil {
		return err
	}
	slog.Info("auth_event", "event", "reset_link_requested", "email", email)
	return nil
}

// ExecuteResetPassword completes a reset with the emailed token. The
// confirm-match check runs locally so a mismatch never leaves the form.
func ExecuteResetPassword(ctx context.Context, resetToken, password, confirm string, deps PasswordDeps) error {
	if strings.TrimSpace(resetToken) == "" {
		return errors.New("reset token is missing")
	}
	if password == "" {
		return errors.New("password is required")
	}
	if password != confirm {
		return errors.New("passwords do not match")
	}
	if err := deps.API.ResetPassword(ctx, resetToken, password, confirm); err != nil {
		return err
	}
	slog.Info("auth_event", "event", "password_reset")
	return nil
}
