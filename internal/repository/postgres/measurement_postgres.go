package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"healthtrack/internal/model"
	"healthtrack/internal/repository"
)

const measurementColumns = `id, recorded_at, age, gender, height_cm, weight_kg, bmi, waist_cm,
	systolic_bp, diastolic_bp, resting_heart_rate, glucose_fasting, hba1c,
	total_cholesterol, hdl_cholesterol, ldl_cholesterol, triglycerides,
	exercise_minutes_per_week, sleep_hours, stress_level, smoking_status,
	alcohol_consumption, created_at`

// MeasurementPostgres is a PostgreSQL implementation of repository.MeasurementRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type MeasurementPostgres struct {
	db *sql.DB
}

// NewMeasurementPostgres creates a new MeasurementPostgres repository.
func NewMeasurementPostgres(db *sql.DB) *MeasurementPostgres {
	return &MeasurementPostgres{db: db}
}

var _ repository.MeasurementRepository = (*MeasurementPostgres)(nil)

func scanMeasurement(row interface{ Scan(...any) error }) (*model.Measurement, error) {
	var m model.Measurement
	if err := row.Scan(
		&m.ID,
		&m.RecordedAt,
		&m.Age,
		&m.Gender,
		&m.HeightCm,
		&m.WeightKg,
		&m.BMI,
		&m.WaistCm,
		&m.SystolicBP,
		&m.DiastolicBP,
		&m.RestingHeartRate,
		&m.GlucoseFasting,
		&m.HbA1c,
		&m.TotalCholesterol,
		&m.HDLCholesterol,
		&m.LDLCholesterol,
		&m.Triglycerides,
		&m.ExerciseMinutesPerWeek,
		&m.SleepHours,
		&m.StressLevel,
		&m.SmokingStatus,
		&m.AlcoholConsumption,
		&m.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}

func measurementArgs(m *model.Measurement) []any {
	return []any{
		m.ID,
		m.RecordedAt,
		m.Age,
		m.Gender,
		m.HeightCm,
		m.WeightKg,
		m.BMI,
		m.WaistCm,
		m.SystolicBP,
		m.DiastolicBP,
		m.RestingHeartRate,
		m.GlucoseFasting,
		m.HbA1c,
		m.TotalCholesterol,
		m.HDLCholesterol,
		m.LDLCholesterol,
		m.Triglycerides,
		m.ExerciseMinutesPerWeek,
		m.SleepHours,
		m.StressLevel,
		m.SmokingStatus,
		m.AlcoholConsumption,
		m.CreatedAt,
	}
}

var insertMeasurementQuery = fmt.Sprintf(`
	INSERT INTO measurements (%s)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
	RETURNING %s
`, measurementColumns, measurementColumns)

// Create inserts a new measurement row and returns the stored record.
func (r *MeasurementPostgres) Create(ctx context.Context, m *model.Measurement) (*model.Measurement, error) {
	row := r.db.QueryRowContext(ctx, insertMeasurementQuery, measurementArgs(m)...)
	return scanMeasurement(row)
}

// CreateBatch inserts measurements in one transaction and returns the row count.
func (r *MeasurementPostgres) CreateBatch(ctx context.Context, ms []model.Measurement) (int, error) {
	if len(ms) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertMeasurementQuery)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for i := range ms {
		if _, err := scanMeasurement(stmt.QueryRowContext(ctx, measurementArgs(&ms[i])...)); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(ms), nil
}

// FindByID fetches a single measurement by its ID.
func (r *MeasurementPostgres) FindByID(ctx context.Context, id string) (*model.Measurement, error) {
	q := fmt.Sprintf(`SELECT %s FROM measurements WHERE id = $1`, measurementColumns)
	return scanMeasurement(r.db.QueryRowContext(ctx, q, id))
}

// List returns measurements using LIMIT/OFFSET pagination and a total count,
// optionally bounded by recorded_at.
func (r *MeasurementPostgres) List(ctx context.Context, mq repository.MeasurementQuery) (*repository.PageResult[model.Measurement], error) {
	var conds []string
	var args []any
	if !mq.From.IsZero() {
		args = append(args, mq.From)
		conds = append(conds, fmt.Sprintf("recorded_at >= $%d", len(args)))
	}
	if !mq.To.IsZero() {
		args = append(args, mq.To)
		conds = append(conds, fmt.Sprintf("recorded_at <= $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	qCount := `SELECT COUNT(*) FROM measurements` + where
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, args...).Scan(&total); err != nil {
		return nil, err
	}

	qList := fmt.Sprintf(`SELECT %s FROM measurements%s ORDER BY recorded_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		measurementColumns, where, len(args)+1, len(args)+2)
	rows, err := r.db.QueryContext(ctx, qList, append(args, mq.Limit, mq.Offset)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Measurement, 0)
	for rows.Next() {
		m, err := scanMeasurement(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Measurement]{
		Items: items,
		Total: total,
	}, nil
}

// History returns every measurement ordered oldest first.
func (r *MeasurementPostgres) History(ctx context.Context) ([]model.Measurement, error) {
	q := fmt.Sprintf(`SELECT %s FROM measurements ORDER BY recorded_at ASC, id ASC`, measurementColumns)
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Measurement, 0)
	for rows.Next() {
		m, err := scanMeasurement(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Latest fetches the most recent measurement by recorded_at.
func (r *MeasurementPostgres) Latest(ctx context.Context) (*model.Measurement, error) {
	q := fmt.Sprintf(`SELECT %s FROM measurements ORDER BY recorded_at DESC, id DESC LIMIT 1`, measurementColumns)
	return scanMeasurement(r.db.QueryRowContext(ctx, q))
}

// Update replaces the metric fields of an existing measurement row.
func (r *MeasurementPostgres) Update(ctx context.Context, m *model.Measurement) (*model.Measurement, error) {
	q := fmt.Sprintf(`
		UPDATE measurements SET
			recorded_at = $2, age = $3, gender = $4, height_cm = $5, weight_kg = $6,
			bmi = $7, waist_cm = $8, systolic_bp = $9, diastolic_bp = $10,
			resting_heart_rate = $11, glucose_fasting = $12, hba1c = $13,
			total_cholesterol = $14, hdl_cholesterol = $15, ldl_cholesterol = $16,
			triglycerides = $17, exercise_minutes_per_week = $18, sleep_hours = $19,
			stress_level = $20, smoking_status = $21, alcohol_consumption = $22
		WHERE id = $1
		RETURNING %s
	`, measurementColumns)
	row := r.db.QueryRowContext(ctx, q, measurementArgs(m)[:22]...)
	return scanMeasurement(row)
}

// Delete removes a measurement by ID. It does not return an error if the row does not exist.
func (r *MeasurementPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM measurements WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
