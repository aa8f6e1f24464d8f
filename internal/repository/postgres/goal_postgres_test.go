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

var goalColumnList = []string{
	"id", "type", "metric", "start_value", "target_value",
	"target_systolic", "target_diastolic", "target_date", "status", "created_at",
}

func sampleGoal(id string) *model.Goal {
	return &model.Goal{
		ID:          id,
		Type:        model.GoalWeightLoss,
		Metric:      "weight_kg",
		StartValue:  80,
		TargetValue: 72,
		TargetDate:  time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:      model.GoalActive,
		CreatedAt:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func addGoalRow(rows *sqlmock.Rows, g *model.Goal) *sqlmock.Rows {
	return rows.AddRow(
		g.ID, g.Type, g.Metric, g.StartValue, g.TargetValue,
		g.TargetSystolic, g.TargetDiastolic, g.TargetDate, g.Status, g.CreatedAt,
	)
}

func TestGoalPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewGoalPostgres(db)
	ctx := context.Background()

	g := sampleGoal("goal-id")
	rows := addGoalRow(sqlmock.NewRows(goalColumnList), g)

	mock.ExpectQuery("INSERT INTO goals").
		WithArgs(g.ID, g.Type, g.Metric, g.StartValue, g.TargetValue,
			g.TargetSystolic, g.TargetDiastolic, g.TargetDate, g.Status, g.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, g)

	assert.NoError(t, err)
	assert.Equal(t, g.ID, result.ID)
	assert.Equal(t, model.GoalActive, result.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewGoalPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := addGoalRow(sqlmock.NewRows(goalColumnList), sampleGoal("goal-id"))

		mock.ExpectQuery("SELECT (.+) FROM goals WHERE id = ?").
			WithArgs("goal-id").
			WillReturnRows(rows)

		g, err := repo.FindByID(ctx, "goal-id")

		assert.NoError(t, err)
		assert.Equal(t, "goal-id", g.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM goals WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		g, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, g)
	})
}

func TestGoalPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewGoalPostgres(db)
	ctx := context.Background()

	t.Run("all", func(t *testing.T) {
		rows := addGoalRow(sqlmock.NewRows(goalColumnList), sampleGoal("goal-id"))

		mock.ExpectQuery("SELECT (.+) FROM goals ORDER BY").
			WillReturnRows(rows)

		goals, err := repo.List(ctx, "")

		assert.NoError(t, err)
		assert.Len(t, goals, 1)
	})

	t.Run("by status", func(t *testing.T) {
		rows := addGoalRow(sqlmock.NewRows(goalColumnList), sampleGoal("goal-id"))

		mock.ExpectQuery("SELECT (.+) FROM goals WHERE status = ?").
			WithArgs(model.GoalActive).
			WillReturnRows(rows)

		goals, err := repo.List(ctx, model.GoalActive)

		assert.NoError(t, err)
		assert.Len(t, goals, 1)
		assert.Equal(t, model.GoalActive, goals[0].Status)
	})
}

func TestGoalPostgres_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewGoalPostgres(db)
	ctx := context.Background()

	g := sampleGoal("goal-id")
	g.Status = model.GoalAchieved
	rows := addGoalRow(sqlmock.NewRows(goalColumnList), g)

	mock.ExpectQuery("UPDATE goals SET status = ?").
		WithArgs("goal-id", model.GoalAchieved).
		WillReturnRows(rows)

	got, err := repo.UpdateStatus(ctx, "goal-id", model.GoalAchieved)

	assert.NoError(t, err)
	assert.Equal(t, model.GoalAchieved, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewGoalPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM goals WHERE id = ?").
		WithArgs("goal-id").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(ctx, "goal-id")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
