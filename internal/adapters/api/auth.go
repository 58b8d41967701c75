package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"smartevents/internal/domain/session"
	"smartevents/internal/domain/user"
)

// authResponse is the backend payload for login, register and profile
// update: the user record with a bearer token attached.
type authResponse struct {
	ID             string `json:"_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	Token          string `json:"token"`
	ProfilePicture string `json:"profilePicture"`
}

func (a authResponse) session() session.Session {
	return session.Session{
		UserID:         a.ID,
		Name:           a.Name,
		Email:          a.Email,
		Role:           a.Role,
		Token:          a.Token,
		ProfilePicture: a.ProfilePicture,
		CreatedAt:      time.Now(),
	}
}

// Login authenticates against the backend and returns the session payload.
// POST: returned Session passes session.Validate on a well-behaved backend
func (c *Client) Login(ctx context.Context, email, password string) (session.Session, error) {
	var resp authResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/users/login", "", body, &resp); err != nil {
		return session.Session{}, err
	}
	return resp.session(), nil
}

// Register creates an account and returns the session payload, so a
// successful sign-up logs the user straight in.
func (c *Client) Register(ctx context.Context, name, email, password, role string) (session.Session, error) {
	var resp authResponse
	body := map[string]string{"name": name, "email": email, "password": password, "role": role}
	if err := c.do(ctx, http.MethodPost, "/users/register", "", body, &resp); err != nil {
		return session.Session{}, err
	}
	return resp.session(), nil
}

// ForgotPassword asks the backend to email a reset link. The backend owns
// delivery; this client only surfaces its confirmation or error message.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/users/forgotpassword", "", body, nil)
}

// ResetPassword completes a reset using the emailed token.
func (c *Client) ResetPassword(ctx context.Context, resetToken, password, confirm string) error {
	body := map[string]string{"password": password, "confirmPassword": confirm}
	return c.do(ctx, http.MethodPut, "/users/resetpassword/"+url.PathEscape(resetToken), "", body, nil)
}

// UpdateProfile updates the authenticated user's own record and returns
// the refreshed session payload (same role, possibly new name/email/
// picture and a reissued token).
func (c *Client) UpdateProfile(ctx context.Context, token string, u user.User) (session.Session, error) {
	var resp authResponse
	body := map[string]string{
		"name":           u.Name,
		"email":          u.Email,
		"profilePicture": u.ProfilePicture,
	}
	if err := c.do(ctx, http.MethodPut, "/users/profile", token, body, &resp); err != nil {
		return session.Session{}, err
	}
	return resp.session(), nil
}
