package orchestrators

import (
	"context"
	"log/slog"

	"smartevents/internal/domain/category"
)

// CategoryWriter is the slice of the API client used by category
// mutations.
type CategoryWriter interface {
	CreateCategory(ctx context.Context, token, name string) error
	UpdateCategory(ctx context.Context, token, id, name string) error
	DeleteCategory(ctx context.Context, token, id string) error
}

// CategoryDeps holds dependencies for category mutations.
type CategoryDeps struct {
	API CategoryWriter
}

// ExecuteCreateCategory validates and creates a category.
// PRE: token belongs to an admin session
func ExecuteCreateCategory(ctx context.Context, token, name string, deps CategoryDeps) error {
	c := category.Category{Name: name}
	if err := c.Validate(); err != nil {
		return err
	}
	if err := deps.API.CreateCategory(ctx, token, name); err != nil {
		return err
	}
	slog.Info("category_created", "name", name)
	return nil
}

// ExecuteUpdateCategory validates and renames a category.
func ExecuteUpdateCategory(ctx context.Context, token, id, name string, deps CategoryDeps) error {
	c := category.Category{ID: id, Name: name}
	if err := c.Validate(); err != nil {
		return err
	}
	if err := deps.API.UpdateCategory(ctx, token, id, name); err != nil {
		return err
	}
	slog.Info("category_updated", "id", id, "name", name)
	return nil
}

// ExecuteDeleteCategory fires the delete call after the confirmation
// step.
func ExecuteDeleteCategory(ctx context.Context, token, id string, deps CategoryDeps) error {
	if err := deps.API.DeleteCategory(ctx, token, id); err != nil {
		return err
	}
	slog.Info("category_deleted", "id", id)
	return nil
}
