package api

import (
	"context"
	"net/http"
	"net/url"

	"smartevents/internal/domain/user"
)

// ListUsers fetches all users for the admin moderation panel.
func (c *Client) ListUsers(ctx context.Context, token string) ([]user.User, error) {
	var users []user.User
	if err := c.do(ctx, http.MethodGet, "/users", token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser changes another user's record, typically the role (admin
// only).
func (c *Client) UpdateUser(ctx context.Context, token string, u user.User) error {
	return c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(u.ID), token, u, nil)
}

// DeleteUser removes a user (admin only). Callers must have run the
// confirmation step first.
func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), token, nil, nil)
}
