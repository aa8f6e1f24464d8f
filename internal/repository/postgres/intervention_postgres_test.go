package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"healthtrack/internal/model"
)

var interventionColumnList = []string{
	"id", "title", "category", "priority", "duration", "start_date",
	"status", "overall_progress", "notes", "weekly_goals", "updated_at",
}

func sampleTracked(id string) *model.TrackedIntervention {
	return &model.TrackedIntervention{
		ID:        id,
		Title:     "Mediterranean Diet Adoption",
		Category:  model.CategoryDietary,
		Priority:  model.PriorityHigh,
		Duration:  "3-6 months",
		StartDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Status:    "active",
		Notes:     "",
		WeeklyGoals: []model.WeeklyGoal{
			{Week: 1, Goal: "Increase olive oil consumption to 2-3 tablespoons daily"},
			{Week: 2, Goal: "Eat fish 2-3 times per week"},
		},
		UpdatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}
}

func addTrackedRow(rows *sqlmock.Rows, iv *model.TrackedIntervention) *sqlmock.Rows {
	return rows.AddRow(
		iv.ID, iv.Title, iv.Category, iv.Priority, iv.Duration, iv.StartDate,
		iv.Status, iv.OverallProgress, iv.Notes,
		[]byte(`[{"week":1,"goal":"Increase olive oil consumption to 2-3 tablespoons daily","completed":false},{"week":2,"goal":"Eat fish 2-3 times per week","completed":false}]`),
		iv.UpdatedAt,
	)
}

func TestInterventionPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewInterventionPostgres(db)
	ctx := context.Background()

	iv := sampleTracked("iv-id")
	rows := addTrackedRow(sqlmock.NewRows(interventionColumnList), iv)

	mock.ExpectQuery("INSERT INTO interventions").
		WillReturnRows(rows)

	result, err := repo.Create(ctx, iv)

	assert.NoError(t, err)
	assert.Equal(t, iv.ID, result.ID)
	assert.Len(t, result.WeeklyGoals, 2)
	assert.Equal(t, 1, result.WeeklyGoals[0].Week)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInterventionPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewInterventionPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := addTrackedRow(sqlmock.NewRows(interventionColumnList), sampleTracked("iv-id"))

		mock.ExpectQuery("SELECT (.+) FROM interventions WHERE id = ?").
			WithArgs("iv-id").
			WillReturnRows(rows)

		iv, err := repo.FindByID(ctx, "iv-id")

		assert.NoError(t, err)
		assert.Equal(t, "iv-id", iv.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM interventions WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		iv, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, iv)
	})
}

func TestInterventionPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewInterventionPostgres(db)
	ctx := context.Background()

	rows := addTrackedRow(sqlmock.NewRows(interventionColumnList), sampleTracked("iv-id"))

	mock.ExpectQuery("SELECT (.+) FROM interventions WHERE status = ?").
		WithArgs("active").
		WillReturnRows(rows)

	items, err := repo.List(ctx, "active")

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "active", items[0].Status)
}

func TestInterventionPostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewInterventionPostgres(db)
	ctx := context.Background()

	iv := sampleTracked("iv-id")
	iv.OverallProgress = 40
	rows := addTrackedRow(sqlmock.NewRows(interventionColumnList), iv)

	mock.ExpectQuery("UPDATE interventions").
		WillReturnRows(rows)

	got, err := repo.Update(ctx, iv)

	assert.NoError(t, err)
	assert.Equal(t, 40, got.OverallProgress)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInterventionPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewInterventionPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM interventions WHERE id = ?").
		WithArgs("iv-id").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(ctx, "iv-id")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
