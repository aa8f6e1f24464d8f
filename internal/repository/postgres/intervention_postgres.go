package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"healthtrack/internal/model"
	"healthtrack/internal/repository"
)

const interventionColumns = `id, title, category, priority, duration, start_date, status, overall_progress, notes, weekly_goals, updated_at`

// InterventionPostgres is a PostgreSQL implementation of repository.InterventionRepository.
// Weekly goals are serialized to a JSONB column.
type InterventionPostgres struct {
	db *sql.DB
}

// NewInterventionPostgres creates a new InterventionPostgres repository.
func NewInterventionPostgres(db *sql.DB) *InterventionPostgres {
	return &InterventionPostgres{db: db}
}

var _ repository.InterventionRepository = (*InterventionPostgres)(nil)

func scanIntervention(row interface{ Scan(...any) error }) (*model.TrackedIntervention, error) {
	var iv model.TrackedIntervention
	var goalsRaw []byte
	if err := row.Scan(
		&iv.ID,
		&iv.Title,
		&iv.Category,
		&iv.Priority,
		&iv.Duration,
		&iv.StartDate,
		&iv.Status,
		&iv.OverallProgress,
		&iv.Notes,
		&goalsRaw,
		&iv.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(goalsRaw, &iv.WeeklyGoals); err != nil {
		return nil, err
	}
	return &iv, nil
}

// Create inserts a new tracked intervention row and returns the stored record.
func (r *InterventionPostgres) Create(ctx context.Context, iv *model.TrackedIntervention) (*model.TrackedIntervention, error) {
	goalsRaw, err := json.Marshal(iv.WeeklyGoals)
	if err != nil {
		return nil, err
	}

	const q = `
		INSERT INTO interventions (id, title, category, priority, duration, start_date, status, overall_progress, notes, weekly_goals, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + interventionColumns
	row := r.db.QueryRowContext(ctx, q,
		iv.ID,
		iv.Title,
		iv.Category,
		iv.Priority,
		iv.Duration,
		iv.StartDate,
		iv.Status,
		iv.OverallProgress,
		iv.Notes,
		goalsRaw,
		iv.UpdatedAt,
	)
	return scanIntervention(row)
}

// FindByID fetches a single tracked intervention by its ID.
func (r *InterventionPostgres) FindByID(ctx context.Context, id string) (*model.TrackedIntervention, error) {
	const q = `SELECT ` + interventionColumns + ` FROM interventions WHERE id = $1`
	return scanIntervention(r.db.QueryRowContext(ctx, q, id))
}

// List returns tracked interventions newest first, optionally filtered by status.
func (r *InterventionPostgres) List(ctx context.Context, status string) ([]model.TrackedIntervention, error) {
	q := `SELECT ` + interventionColumns + ` FROM interventions ORDER BY start_date DESC, id DESC`
	var args []any
	if status != "" {
		q = `SELECT ` + interventionColumns + ` FROM interventions WHERE status = $1 ORDER BY start_date DESC, id DESC`
		args = append(args, status)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.TrackedIntervention, 0)
	for rows.Next() {
		iv, err := scanIntervention(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *iv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update replaces the mutable fields of an existing tracked intervention row.
func (r *InterventionPostgres) Update(ctx context.Context, iv *model.TrackedIntervention) (*model.TrackedIntervention, error) {
	goalsRaw, err := json.Marshal(iv.WeeklyGoals)
	if err != nil {
		return nil, err
	}

	const q = `
		UPDATE interventions
		SET status = $2, overall_progress = $3, notes = $4, weekly_goals = $5, updated_at = $6
		WHERE id = $1
		RETURNING ` + interventionColumns
	row := r.db.QueryRowContext(ctx, q,
		iv.ID,
		iv.Status,
		iv.OverallProgress,
		iv.Notes,
		goalsRaw,
		iv.UpdatedAt,
	)
	return scanIntervention(row)
}

// Delete removes a tracked intervention by ID. It does not return an error if the row does not exist.
func (r *InterventionPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM interventions WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
