package orchestrators

import (
	"context"
	"log/slog"

	"smartevents/internal/domain/event"
)

// EventWriter is the slice of the API client used by event mutations.
type EventWriter interface {
	CreateEvent(ctx context.Context, token string, ev event.Event) error
	UpdateEvent(ctx context.Context, token string, ev event.Event) error
	DeleteEvent(ctx context.Context, token, id string) error
	ApproveEvent(ctx context.Context, token, id string, approved bool) error
	RegisterForEvent(ctx context.Context, token, id string) error
}

// Uploader is the slice of the API client that stores images.
type Uploader interface {
	Upload(ctx context.Context, token, dataURL string) (string, error)
}

// EventDeps holds dependencies for event mutations.
type EventDeps struct {
	API    EventWriter
	Upload Uploader
}

// ExecuteCreateEvent validates the form and submits a new event. The
// mutation response is discarded: the caller redirects to the list page,
// whose fetch is the only way displayed state gets updated.
// PRE: token belongs to an organizer session
// POST: on nil return the backend accepted the event (unapproved)
func ExecuteCreateEvent(ctx context.Context, token string, ev event.Event, imageDataURL string, deps EventDeps) error {
	if err := ev.Validate(); err != nil {
		return err
	}
	if imageDataURL != "" {
		url, err := deps.Upload.Upload(ctx, token, imageDataURL)
		if err != nil {
			return err
		}
		ev.EventImage = url
	}
	if err := deps.API.CreateEvent(ctx, token, ev); err != nil {
		return err
	}
	slog.Info("event_created", "title", ev.Title, "category", ev.Category)
	return nil
}

// ExecuteUpdateEvent validates the edited form and replaces the event.
// PRE: ev.ID is non-empty; token belongs to the owning organizer or an admin
func ExecuteUpdateEvent(ctx context.Context, token string, ev event.Event, imageDataURL string, deps EventDeps) error {
	if err := ev.Validate(); err != nil {
		return err
	}
	if imageDataURL != "" {
		url, err := deps.Upload.Upload(ctx, token, imageDataURL)
		if err != nil {
			return err
		}
		ev.EventImage = url
	}
	if err := deps.API.UpdateEvent(ctx, token, ev); err != nil {
		return err
	}
	slog.Info("event_updated", "id", ev.ID, "title", ev.Title)
	return nil
}

// ExecuteDeleteEvent fires the delete call. The two-stage confirmation
// happens in the web layer; by the time this runs the user has confirmed.
func ExecuteDeleteEvent(ctx context.Context, token, id string, deps EventDeps) error {
	if err := deps.API.DeleteEvent(ctx, token, id); err != nil {
		return err
	}
	slog.Info("event_deleted", "id", id)
	return nil
}

// ExecuteApproveEvent flips an event's approval flag (admin only).
func ExecuteApproveEvent(ctx context.Context, token, id string, approved bool, deps EventDeps) error {
	if err := deps.API.ApproveEvent(ctx, token, id, approved); err != nil {
		return err
	}
	slog.Info("event_approval_changed", "id", id, "approved", approved)
	return nil
}

// ExecuteRegisterForEvent signs the current student up for an event.
func ExecuteRegisterForEvent(ctx context.Context, token, id string, deps EventDeps) error {
	if err := deps.API.RegisterForEvent(ctx, token, id); err != nil {
		return err
	}
	slog.Info("event_registration", "id", id)
	return nil
}
