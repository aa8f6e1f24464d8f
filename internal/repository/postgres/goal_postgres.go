package postgres

import (
	"context"
	"database/sql"

	"healthtrack/internal/model"
	"healthtrack/internal/repository"
)

const goalColumns = `id, type, metric, start_value, target_value, target_systolic, target_diastolic, target_date, status, created_at`

// GoalPostgres is a PostgreSQL implementation of repository.GoalRepository.
type GoalPostgres struct {
	db *sql.DB
}

// NewGoalPostgres creates a new GoalPostgres repository.
func NewGoalPostgres(db *sql.DB) *GoalPostgres {
	return &GoalPostgres{db: db}
}

var _ repository.GoalRepository = (*GoalPostgres)(nil)

func scanGoal(row interface{ Scan(...any) error }) (*model.Goal, error) {
	var g model.Goal
	if err := row.Scan(
		&g.ID,
		&g.Type,
		&g.Metric,
		&g.StartValue,
		&g.TargetValue,
		&g.TargetSystolic,
		&g.TargetDiastolic,
		&g.TargetDate,
		&g.Status,
		&g.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &g, nil
}

// Create inserts a new goal row and returns the stored record.
func (r *GoalPostgres) Create(ctx context.Context, g *model.Goal) (*model.Goal, error) {
	const q = `
		INSERT INTO goals (id, type, metric, start_value, target_value, target_systolic, target_diastolic, target_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + goalColumns
	row := r.db.QueryRowContext(ctx, q,
		g.ID,
		g.Type,
		g.Metric,
		g.StartValue,
		g.TargetValue,
		g.TargetSystolic,
		g.TargetDiastolic,
		g.TargetDate,
		g.Status,
		g.CreatedAt,
	)
	return scanGoal(row)
}

// FindByID fetches a single goal by its ID.
func (r *GoalPostgres) FindByID(ctx context.Context, id string) (*model.Goal, error) {
	const q = `SELECT ` + goalColumns + ` FROM goals WHERE id = $1`
	return scanGoal(r.db.QueryRowContext(ctx, q, id))
}

// List returns goals newest first, optionally filtered by status.
func (r *GoalPostgres) List(ctx context.Context, status string) ([]model.Goal, error) {
	q := `SELECT ` + goalColumns + ` FROM goals ORDER BY created_at DESC, id DESC`
	var args []any
	if status != "" {
		q = `SELECT ` + goalColumns + ` FROM goals WHERE status = $1 ORDER BY created_at DESC, id DESC`
		args = append(args, status)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Goal, 0)
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateStatus sets the status of an existing goal.
func (r *GoalPostgres) UpdateStatus(ctx context.Context, id, status string) (*model.Goal, error) {
	const q = `UPDATE goals SET status = $2 WHERE id = $1 RETURNING ` + goalColumns
	return scanGoal(r.db.QueryRowContext(ctx, q, id, status))
}

// Delete removes a goal by ID. It does not return an error if the row does not exist.
func (r *GoalPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM goals WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
