package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"healthtrack/internal/model"
	"healthtrack/internal/repository"
)

var measurementColumnList = []string{
	"id", "recorded_at", "age", "gender", "height_cm", "weight_kg", "bmi", "waist_cm",
	"systolic_bp", "diastolic_bp", "resting_heart_rate", "glucose_fasting", "hba1c",
	"total_cholesterol", "hdl_cholesterol", "ldl_cholesterol", "triglycerides",
	"exercise_minutes_per_week", "sleep_hours", "stress_level", "smoking_status",
	"alcohol_consumption", "created_at",
}

func sampleMeasurement(id string, recordedAt time.Time) *model.Measurement {
	return &model.Measurement{
		ID:                     id,
		RecordedAt:             recordedAt,
		Age:                    40,
		Gender:                 "female",
		HeightCm:               165,
		WeightKg:               68,
		BMI:                    25,
		WaistCm:                80,
		SystolicBP:             120,
		DiastolicBP:            80,
		RestingHeartRate:       70,
		GlucoseFasting:         90,
		HbA1c:                  5.4,
		TotalCholesterol:       200,
		HDLCholesterol:         50,
		LDLCholesterol:         100,
		Triglycerides:          150,
		ExerciseMinutesPerWeek: 150,
		SleepHours:             7,
		StressLevel:            5,
		CreatedAt:              recordedAt,
	}
}

func addMeasurementRow(rows *sqlmock.Rows, m *model.Measurement) *sqlmock.Rows {
	return rows.AddRow(
		m.ID, m.RecordedAt, m.Age, m.Gender, m.HeightCm, m.WeightKg, m.BMI, m.WaistCm,
		m.SystolicBP, m.DiastolicBP, m.RestingHeartRate, m.GlucoseFasting, m.HbA1c,
		m.TotalCholesterol, m.HDLCholesterol, m.LDLCholesterol, m.Triglycerides,
		m.ExerciseMinutesPerWeek, m.SleepHours, m.StressLevel, m.SmokingStatus,
		m.AlcoholConsumption, m.CreatedAt,
	)
}

func TestMeasurementPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewMeasurementPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	m := sampleMeasurement("test-uuid", now)

	rows := addMeasurementRow(sqlmock.NewRows(measurementColumnList), m)
	mock.ExpectQuery("INSERT INTO measurements").
		WillReturnRows(rows)

	result, err := repo.Create(ctx, m)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, m.ID, result.ID)
	assert.Equal(t, m.GlucoseFasting, result.GlucoseFasting)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMeasurementPostgres_CreateBatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewMeasurementPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	ms := []model.Measurement{
		*sampleMeasurement("id-1", now.AddDate(0, 0, -7)),
		*sampleMeasurement("id-2", now),
	}

	mock.ExpectBegin()
	mock.ExpectPrepare("INSERT INTO measurements")
	for i := range ms {
		rows := addMeasurementRow(sqlmock.NewRows(measurementColumnList), &ms[i])
		mock.ExpectQuery("INSERT INTO measurements").WillReturnRows(rows)
	}
	mock.ExpectCommit()

	n, err := repo.CreateBatch(ctx, ms)

	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMeasurementPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewMeasurementPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		m := sampleMeasurement("test-id", time.Now())
		rows := addMeasurementRow(sqlmock.NewRows(measurementColumnList), m)

		mock.ExpectQuery("SELECT (.+) FROM measurements WHERE id = ?").
			WithArgs("test-id").
			WillReturnRows(rows)

		got, err := repo.FindByID(ctx, "test-id")

		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, "test-id", got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM measurements WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		got, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, got)
	})
}

func TestMeasurementPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewMeasurementPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM measurements").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		rows := addMeasurementRow(sqlmock.NewRows(measurementColumnList), sampleMeasurement("test-id", time.Now()))
		mock.ExpectQuery("SELECT (.+) FROM measurements ORDER BY").
			WithArgs(10, 0).
			WillReturnRows(rows)

		res, err := repo.List(ctx, repository.MeasurementQuery{PageQuery: repository.PageQuery{Limit: 10, Offset: 0}})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		assert.Len(t, res.Items, 1)
	})

	t.Run("date range", func(t *testing.T) {
		from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM measurements WHERE").
			WithArgs(from, to).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		mock.ExpectQuery("SELECT (.+) FROM measurements WHERE (.+) ORDER BY").
			WithArgs(from, to, 10, 0).
			WillReturnRows(sqlmock.NewRows(measurementColumnList))

		res, err := repo.List(ctx, repository.MeasurementQuery{
			PageQuery: repository.PageQuery{Limit: 10, Offset: 0},
			From:      from,
			To:        to,
		})

		assert.NoError(t, err)
		assert.Equal(t, 0, res.Total)
		assert.Empty(t, res.Items)
	})
}

func TestMeasurementPostgres_History(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewMeasurementPostgres(db)
	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.NewRows(measurementColumnList)
	addMeasurementRow(rows, sampleMeasurement("id-1", now.AddDate(0, 0, -7)))
	addMeasurementRow(rows, sampleMeasurement("id-2", now))

	mock.ExpectQuery("SELECT (.+) FROM measurements ORDER BY recorded_at ASC").
		WillReturnRows(rows)

	items, err := repo.History(ctx)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "id-1", items[0].ID)
}

func TestMeasurementPostgres_Latest(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewMeasurementPostgres(db)
	ctx := context.Background()

	rows := addMeasurementRow(sqlmock.NewRows(measurementColumnList), sampleMeasurement("latest-id", time.Now()))
	mock.ExpectQuery("SELECT (.+) FROM measurements ORDER BY recorded_at DESC").
		WillReturnRows(rows)

	got, err := repo.Latest(ctx)

	assert.NoError(t, err)
	assert.Equal(t, "latest-id", got.ID)
}

func TestMeasurementPostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewMeasurementPostgres(db)
	ctx := context.Background()

	m := sampleMeasurement("test-id", time.Now())
	m.GlucoseFasting = 105

	rows := addMeasurementRow(sqlmock.NewRows(measurementColumnList), m)
	mock.ExpectQuery("UPDATE measurements SET").
		WillReturnRows(rows)

	got, err := repo.Update(ctx, m)

	assert.NoError(t, err)
	assert.Equal(t, 105.0, got.GlucoseFasting)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMeasurementPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewMeasurementPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM measurements WHERE id = ?").
		WithArgs("test-id").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(ctx, "test-id")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
