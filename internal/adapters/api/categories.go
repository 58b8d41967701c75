package api

import (
	"context"
	"net/http"
	"net/url"

	"smartevents/internal/domain/category"
)

// ListCategories fetches the category reference data used by event
// selectors and the admin categories panel.
func (c *Client) ListCategories(ctx context.Context, token string) ([]category.Category, error) {
	var cats []category.Category
	if err := c.do(ctx, http.MethodGet, "/categories", token, nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// CreateCategory adds a category (admin only).
func (c *Client) CreateCategory(ctx context.Context, token, name string) error {
	body := map[string]string{"name": name}
	return c.do(ctx, http.MethodPost, "/categories", token, body, nil)
}

// UpdateCategory renames a category (admin only).
func (c *Client) UpdateCategory(ctx context.Context, token, id, name string) error {
	body := map[string]string{"name": name}
	return c.do(ctx, http.MethodPut, "/categories/"+url.PathEscape(id), token, body, nil)
}

// DeleteCategory removes a category (admin only).
func (c *Client) DeleteCategory(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/categories/"+url.PathEscape(id), token, nil, nil)
}
