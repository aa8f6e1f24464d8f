package repository

import (
	"context"

	"healthtrack/internal/model"
)

// InterventionRepository defines data access for tracked interventions.
// Weekly goals are stored as a JSONB document alongside the row.
type InterventionRepository interface {
	// Create inserts a new tracked intervention record.
	Create(ctx context.Context, iv *model.TrackedIntervention) (*model.TrackedIntervention, error)

	// FindByID returns a tracked intervention by its ID.
	FindByID(ctx context.Context, id string) (*model.TrackedIntervention, error)

	// List returns tracked interventions filtered by status, newest first.
	// An empty status returns every tracked intervention.
	List(ctx context.Context, status string) ([]model.TrackedIntervention, error)

	// Update replaces the mutable fields (status, progress, notes, weekly goals)
	// of an existing tracked intervention.
	Update(ctx context.Context, iv *model.TrackedIntervention) (*model.TrackedIntervention, error)

	// Delete removes a tracked intervention by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}
