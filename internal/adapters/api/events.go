package api

import (
	"context"
	"net/http"
	"net/url"

	"smartevents/internal/domain/event"
)

// ListEvents fetches approved events for public browsing. Search and
// category filter through to the backend query string when set.
func (c *Client) ListEvents(ctx context.Context, search, category string) ([]event.Event, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	if category != "" {
		q.Set("category", category)
	}
	path := "/events"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var events []event.Event
	if err := c.do(ctx, http.MethodGet, path, "", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// MyEvents fetches the authenticated organizer's own events, approved or
// not.
func (c *Client) MyEvents(ctx context.Context, token string) ([]event.Event, error) {
	var events []event.Event
	if err := c.do(ctx, http.MethodGet, "/events/myevents", token, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// AllEvents fetches every event regardless of approval, for the admin
// moderation panel.
func (c *Client) AllEvents(ctx context.Context, token string) ([]event.Event, error) {
	var events []event.Event
	if err := c.do(ctx, http.MethodGet, "/events/all", token, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetEvent fetches one event by ID.
func (c *Client) GetEvent(ctx context.Context, token, id string) (event.Event, error) {
	var ev event.Event
	if err := c.do(ctx, http.MethodGet, "/events/"+url.PathEscape(id), token, nil, &ev); err != nil {
		return event.Event{}, err
	}
	return ev, nil
}

// CreateEvent submits a new event. The backend assigns the ID and the
// organizer, and new events start unapproved; the response is discarded
// because panels refetch the full list instead of patching local state.
func (c *Client) CreateEvent(ctx context.Context, token string, ev event.Event) error {
	return c.do(ctx, http.MethodPost, "/events", token, ev, nil)
}

// UpdateEvent replaces an event's editable fields.
func (c *Client) UpdateEvent(ctx context.Context, token string, ev event.Event) error {
	return c.do(ctx, http.MethodPut, "/events/"+url.PathEscape(ev.ID), token, ev, nil)
}

// DeleteEvent removes an event. Callers must have run the confirmation
// step first; this fires exactly one request.
func (c *Client) DeleteEvent(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/events/"+url.PathEscape(id), token, nil, nil)
}

// ApproveEvent toggles an event's approval flag (admin only).
func (c *Client) ApproveEvent(ctx context.Context, token, id string, approved bool) error {
	body := map[string]bool{"isApproved": approved}
	return c.do(ctx, http.MethodPut, "/events/"+url.PathEscape(id)+"/approve", token, body, nil)
}

// RegisterForEvent signs the authenticated student up for an event.
func (c *Client) RegisterForEvent(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodPost, "/events/"+url.PathEscape(id)+"/register", token, nil, nil)
}

// RegisteredEvents fetches the events the authenticated student has
// registered for (the "my tickets" panel).
func (c *Client) RegisteredEvents(ctx context.Context, token string) ([]event.Event, error) {
	var events []event.Event
	if err := c.do(ctx, http.MethodGet, "/events/registered", token, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}
