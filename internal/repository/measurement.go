package repository

import (
	"context"
	"time"

	"healthtrack/internal/model"
)

// MeasurementQuery filters and paginates a measurement listing.
// Zero From/To mean no bound on that side.
type MeasurementQuery struct {
	PageQuery
	From time.Time
	To   time.Time
}

// MeasurementRepository defines data access for health measurements using SQL
// queries only. No business logic here — strictly persistence operations.
type MeasurementRepository interface {
	// Create inserts a new measurement record.
	// The caller should provide required fields (e.g., ID, CreatedAt) according to the database schema defaults.
	// Returns the stored measurement (may include values set by the DB).
	Create(ctx context.Context, m *model.Measurement) (*model.Measurement, error)

	// CreateBatch inserts measurements in a single transaction and returns the
	// number of rows inserted. Used by bulk import.
	CreateBatch(ctx context.Context, ms []model.Measurement) (int, error)

	// FindByID returns a measurement by its ID.
	FindByID(ctx context.Context, id string) (*model.Measurement, error)

	// List returns a paginated list of measurements and total rows count for
	// the given filter, newest first.
	List(ctx context.Context, mq MeasurementQuery) (*PageResult[model.Measurement], error)

	// History returns the full measurement history ordered oldest first.
	// Analytics (risk, alerts, trends) consume this ordering.
	History(ctx context.Context) ([]model.Measurement, error)

	// Latest returns the most recent measurement by recorded_at.
	Latest(ctx context.Context) (*model.Measurement, error)

	// Update replaces the metric fields of an existing measurement.
	Update(ctx context.Context, m *model.Measurement) (*model.Measurement, error)

	// Delete removes a measurement by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}
