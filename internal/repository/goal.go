package repository

import (
	"context"

	"healthtrack/internal/model"
)

// GoalRepository defines data access for health goals.
type GoalRepository interface {
	// Create inserts a new goal record.
	Create(ctx context.Context, g *model.Goal) (*model.Goal, error)

	// FindByID returns a goal by its ID.
	FindByID(ctx context.Context, id string) (*model.Goal, error)

	// List returns goals filtered by status, newest first.
	// An empty status returns every goal.
	List(ctx context.Context, status string) ([]model.Goal, error)

	// UpdateStatus sets the status of an existing goal.
	UpdateStatus(ctx context.Context, id, status string) (*model.Goal, error)

	// Delete removes a goal by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}
