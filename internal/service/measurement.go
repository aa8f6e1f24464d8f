package service

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"

	"healthtrack/internal/model"
	"healthtrack/internal/repository"
	"healthtrack/internal/risk"
	"healthtrack/internal/storage"
)

// Supported import/export formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Reference defaults filled in for metrics the caller omits.
var defaults = struct {
	age                    int
	bmi                    float64
	waistCm                float64
	systolicBP             float64
	diastolicBP            float64
	glucoseFasting         float64
	totalCholesterol       float64
	hdlCholesterol         float64
	ldlCholesterol         float64
	triglycerides          float64
	exerciseMinutesPerWeek float64
	sleepHours             float64
	stressLevel            int
}{
	age:                    40,
	bmi:                    25,
	waistCm:                80,
	systolicBP:             120,
	diastolicBP:            80,
	glucoseFasting:         90,
	totalCholesterol:       200,
	hdlCholesterol:         50,
	ldlCholesterol:         100,
	triglycerides:          150,
	exerciseMinutesPerWeek: 150,
	sleepHours:             7,
	stressLevel:            5,
}

// MeasurementListResult is the service-level DTO for paginated measurements.
type MeasurementListResult struct {
	Items []model.Measurement `json:"data"`
	Total int                 `json:"total"`
}

// ExportResult describes an export file uploaded to object storage.
type ExportResult struct {
	Key         string    `json:"key"`
	URL         string    `json:"url"`
	ContentType string    `json:"content_type"`
	Count       int       `json:"count"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// MeasurementService defines the use cases for handling health measurements.
type MeasurementService interface {
	// Create validates the input, fills missing metrics with reference
	// defaults, and stores the measurement.
	Create(ctx context.Context, in *model.MeasurementInput) (*model.Measurement, error)

	// List returns measurements using limit/offset and a total count,
	// optionally bounded by recorded_at.
	List(ctx context.Context, limit, offset int, from, to time.Time) (*MeasurementListResult, error)

	// Get returns a single measurement by its ID.
	Get(ctx context.Context, id string) (*model.Measurement, error)

	// Latest returns the most recent measurement.
	Latest(ctx context.Context) (*model.Measurement, error)

	// Update revalidates and replaces an existing measurement's metrics.
	Update(ctx context.Context, id string, in *model.MeasurementInput) (*model.Measurement, error)

	// Delete removes a measurement by ID.
	Delete(ctx context.Context, id string) error

	// Statistics summarizes the whole measurement history per metric.
	Statistics(ctx context.Context) (*model.HealthStatistics, error)

	// Import parses CSV or JSON measurements from r, validates each row, and
	// stores them in one batch. Returns the number of imported rows.
	Import(ctx context.Context, r io.Reader, format string) (int, error)

	// Export renders the history as CSV or JSON, uploads it to object storage,
	// and returns a presigned download URL.
	Export(ctx context.Context, format string) (*ExportResult, error)
}

// measurementService is a concrete implementation of MeasurementService.
type measurementService struct {
	repo      repository.MeasurementRepository
	store     storage.Storage
	risk      *risk.Engine
	urlExpiry time.Duration
	now       func() time.Time
}

// NewMeasurementService constructs a new MeasurementService.
func NewMeasurementService(repo repository.MeasurementRepository, store storage.Storage, engine *risk.Engine, urlExpiry time.Duration) MeasurementService {
	return &measurementService{
		repo:      repo,
		store:     store,
		risk:      engine,
		urlExpiry: urlExpiry,
		now:       time.Now,
	}
}

func (s *measurementService) Create(ctx context.Context, in *model.MeasurementInput) (*model.Measurement, error) {
	m, err := s.prepare(in)
	if err != nil {
		return nil, err
	}
	m.ID = uuid.New().String()
	m.CreatedAt = s.now().UTC()
	return s.repo.Create(ctx, m)
}

func (s *measurementService) List(ctx context.Context, limit, offset int, from, to time.Time) (*MeasurementListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.MeasurementQuery{
		PageQuery: repository.PageQuery{Limit: limit, Offset: offset},
		From:      from,
		To:        to,
	})
	if err != nil {
		return nil, err
	}
	return &MeasurementListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *measurementService) Get(ctx context.Context, id string) (*model.Measurement, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *measurementService) Latest(ctx context.Context) (*model.Measurement, error) {
	m, err := s.repo.Latest(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoData
		}
		return nil, err
	}
	return m, nil
}

func (s *measurementService) Update(ctx context.Context, id string, in *model.MeasurementInput) (*model.Measurement, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	m, err := s.prepare(in)
	if err != nil {
		return nil, err
	}
	m.ID = existing.ID
	m.CreatedAt = existing.CreatedAt
	if in.RecordedAt == nil {
		m.RecordedAt = existing.RecordedAt
	}
	return s.repo.Update(ctx, m)
}

func (s *measurementService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *measurementService) Statistics(ctx context.Context) (*model.HealthStatistics, error) {
	history, err := s.repo.History(ctx)
	if err != nil {
		return nil, err
	}
	return s.risk.Statistics(history), nil
}

// prepare validates the input ranges, fills missing metrics with reference
// defaults, and derives BMI from height/weight when not supplied directly.
func (s *measurementService) prepare(in *model.MeasurementInput) (*model.Measurement, error) {
	if in == nil {
		return nil, &ValidationError{Violations: []string{"request body is required"}}
	}

	m := &model.Measurement{
		Gender:                 in.Gender,
		Age:                    defaults.age,
		BMI:                    defaults.bmi,
		WaistCm:                defaults.waistCm,
		SystolicBP:             defaults.systolicBP,
		DiastolicBP:            defaults.diastolicBP,
		GlucoseFasting:         defaults.glucoseFasting,
		TotalCholesterol:       defaults.totalCholesterol,
		HDLCholesterol:         defaults.hdlCholesterol,
		LDLCholesterol:         defaults.ldlCholesterol,
		Triglycerides:          defaults.triglycerides,
		ExerciseMinutesPerWeek: defaults.exerciseMinutesPerWeek,
		SleepHours:             defaults.sleepHours,
		StressLevel:            defaults.stressLevel,
	}

	m.RecordedAt = s.now().UTC()
	if in.RecordedAt != nil {
		m.RecordedAt = in.RecordedAt.UTC()
	}

	if in.Age != nil {
		m.Age = *in.Age
	}
	if in.HeightCm != nil {
		m.HeightCm = *in.HeightCm
	}
	if in.WeightKg != nil {
		m.WeightKg = *in.WeightKg
	}
	switch {
	case in.BMI != nil:
		m.BMI = *in.BMI
	case in.HeightCm != nil && in.WeightKg != nil && *in.HeightCm > 0:
		h := *in.HeightCm / 100
		m.BMI = *in.WeightKg / (h * h)
	}
	if in.WaistCm != nil {
		m.WaistCm = *in.WaistCm
	}
	if in.SystolicBP != nil {
		m.SystolicBP = *in.SystolicBP
	}
	if in.DiastolicBP != nil {
		m.DiastolicBP = *in.DiastolicBP
	}
	if in.RestingHeartRate != nil {
		m.RestingHeartRate = *in.RestingHeartRate
	}
	if in.GlucoseFasting != nil {
		m.GlucoseFasting = *in.GlucoseFasting
	}
	if in.HbA1c != nil {
		m.HbA1c = *in.HbA1c
	}
	if in.TotalCholesterol != nil {
		m.TotalCholesterol = *in.TotalCholesterol
	}
	if in.HDLCholesterol != nil {
		m.HDLCholesterol = *in.HDLCholesterol
	}
	if in.LDLCholesterol != nil {
		m.LDLCholesterol = *in.LDLCholesterol
	}
	if in.Triglycerides != nil {
		m.Triglycerides = *in.Triglycerides
	}
	if in.ExerciseMinutesPerWeek != nil {
		m.ExerciseMinutesPerWeek = *in.ExerciseMinutesPerWeek
	}
	if in.SleepHours != nil {
		m.SleepHours = *in.SleepHours
	}
	if in.StressLevel != nil {
		m.StressLevel = *in.StressLevel
	}
	if in.SmokingStatus != nil {
		m.SmokingStatus = *in.SmokingStatus
	}
	if in.AlcoholConsumption != nil {
		m.AlcoholConsumption = *in.AlcoholConsumption
	}

	if violations := validate(m); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}
	return m, nil
}

// validate checks the clinical plausibility ranges.
func validate(m *model.Measurement) []string {
	var violations []string
	if m.Age <= 0 || m.Age > 150 {
		violations = append(violations, "age must be between 1 and 150 years")
	}
	if m.BMI < 10 || m.BMI > 60 {
		violations = append(violations, "bmi must be between 10 and 60")
	}
	if m.SystolicBP < 70 || m.SystolicBP > 250 {
		violations = append(violations, "systolic blood pressure must be between 70 and 250 mmHg")
	}
	if m.DiastolicBP < 40 || m.DiastolicBP > 150 {
		violations = append(violations, "diastolic blood pressure must be between 40 and 150 mmHg")
	}
	if m.GlucoseFasting < 50 || m.GlucoseFasting > 400 {
		violations = append(violations, "fasting glucose must be between 50 and 400 mg/dL")
	}
	if m.TotalCholesterol < 100 || m.TotalCholesterol > 500 {
		violations = append(violations, "total cholesterol must be between 100 and 500 mg/dL")
	}
	if m.StressLevel < 1 || m.StressLevel > 10 {
		violations = append(violations, "stress level must be between 1 and 10")
	}
	return violations
}

var exportHeader = []string{
	"recorded_at", "age", "gender", "height_cm", "weight_kg", "bmi", "waist_cm",
	"systolic_bp", "diastolic_bp", "resting_heart_rate", "glucose_fasting", "hba1c",
	"total_cholesterol", "hdl_cholesterol", "ldl_cholesterol", "triglycerides",
	"exercise_minutes_per_week", "sleep_hours", "stress_level", "smoking_status",
	"alcohol_consumption",
}

func (s *measurementService) Import(ctx context.Context, r io.Reader, format string) (int, error) {
	if r == nil {
		return 0, ErrReaderNil
	}

	var inputs []model.MeasurementInput
	var err error
	switch format {
	case FormatCSV:
		inputs, err = parseCSV(r)
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&inputs)
	default:
		return 0, ErrUnsupportedFormat
	}
	if err != nil {
		return 0, &ValidationError{Violations: []string{fmt.Sprintf("parse %s: %v", format, err)}}
	}

	now := s.now().UTC()
	ms := make([]model.Measurement, 0, len(inputs))
	for i := range inputs {
		m, err := s.prepare(&inputs[i])
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", i+1, err)
		}
		m.ID = uuid.New().String()
		m.CreatedAt = now
		ms = append(ms, *m)
	}

	return s.repo.CreateBatch(ctx, ms)
}

func (s *measurementService) Export(ctx context.Context, format string) (*ExportResult, error) {
	if format != FormatCSV && format != FormatJSON {
		return nil, ErrUnsupportedFormat
	}

	history, err := s.repo.History(ctx)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, ErrNoData
	}

	var buf bytes.Buffer
	contentType := "application/json"
	if format == FormatCSV {
		contentType = "text/csv"
		if err := writeCSV(&buf, history); err != nil {
			return nil, fmt.Errorf("render csv: %w", err)
		}
	} else {
		if err := json.NewEncoder(&buf).Encode(history); err != nil {
			return nil, fmt.Errorf("render json: %w", err)
		}
	}

	key := fmt.Sprintf("exports/%s.%s", uuid.New().String(), format)
	if _, err := s.store.Put(ctx, key, &buf, storage.PutObjectOptions{
		Size:        int64(buf.Len()),
		ContentType: contentType,
		Metadata:    map[string]string{"rows": strconv.Itoa(len(history))},
	}); err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	url, err := s.store.PresignGet(ctx, key, s.urlExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign export url: %w", err)
	}

	return &ExportResult{
		Key:         key,
		URL:         url,
		ContentType: contentType,
		Count:       len(history),
		ExpiresAt:   s.now().UTC().Add(s.urlExpiry),
	}, nil
}

func writeCSV(w io.Writer, history []model.Measurement) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for i := range history {
		m := &history[i]
		rec := []string{
			m.RecordedAt.UTC().Format(time.RFC3339),
			strconv.Itoa(m.Age),
			m.Gender,
			formatFloat(m.HeightCm),
			formatFloat(m.WeightKg),
			formatFloat(m.BMI),
			formatFloat(m.WaistCm),
			formatFloat(m.SystolicBP),
			formatFloat(m.DiastolicBP),
			formatFloat(m.RestingHeartRate),
			formatFloat(m.GlucoseFasting),
			formatFloat(m.HbA1c),
			formatFloat(m.TotalCholesterol),
			formatFloat(m.HDLCholesterol),
			formatFloat(m.LDLCholesterol),
			formatFloat(m.Triglycerides),
			formatFloat(m.ExerciseMinutesPerWeek),
			formatFloat(m.SleepHours),
			strconv.Itoa(m.StressLevel),
			strconv.Itoa(m.SmokingStatus),
			strconv.Itoa(m.AlcoholConsumption),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseCSV reads measurements from a header-keyed CSV document. Unknown
// columns are ignored; empty cells fall back to the reference defaults.
func parseCSV(r io.Reader) ([]model.MeasurementInput, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, err
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}

	cell := func(rec []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	var inputs []model.MeasurementInput
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		var in model.MeasurementInput
		if v := cell(rec, "recorded_at"); v != "" {
			t, err := parseTimestamp(v)
			if err != nil {
				return nil, fmt.Errorf("recorded_at %q: %w", v, err)
			}
			in.RecordedAt = &t
		} else if v := cell(rec, "date"); v != "" {
			t, err := parseTimestamp(v)
			if err != nil {
				return nil, fmt.Errorf("date %q: %w", v, err)
			}
			in.RecordedAt = &t
		}
		in.Gender = cell(rec, "gender")

		if err := firstErr(
			parseIntCell(cell(rec, "age"), &in.Age),
			parseFloatCell(cell(rec, "height_cm"), &in.HeightCm),
			parseFloatCell(cell(rec, "weight_kg"), &in.WeightKg),
			parseFloatCell(cell(rec, "bmi"), &in.BMI),
			parseFloatCell(cell(rec, "waist_cm"), &in.WaistCm),
			parseFloatCell(cell(rec, "waist_circumference"), &in.WaistCm),
			parseFloatCell(cell(rec, "systolic_bp"), &in.SystolicBP),
			parseFloatCell(cell(rec, "diastolic_bp"), &in.DiastolicBP),
			parseFloatCell(cell(rec, "resting_heart_rate"), &in.RestingHeartRate),
			parseFloatCell(cell(rec, "glucose_fasting"), &in.GlucoseFasting),
			parseFloatCell(cell(rec, "hba1c"), &in.HbA1c),
			parseFloatCell(cell(rec, "total_cholesterol"), &in.TotalCholesterol),
			parseFloatCell(cell(rec, "hdl_cholesterol"), &in.HDLCholesterol),
			parseFloatCell(cell(rec, "ldl_cholesterol"), &in.LDLCholesterol),
			parseFloatCell(cell(rec, "triglycerides"), &in.Triglycerides),
			parseFloatCell(cell(rec, "exercise_minutes_per_week"), &in.ExerciseMinutesPerWeek),
			parseFloatCell(cell(rec, "sleep_hours"), &in.SleepHours),
			parseIntCell(cell(rec, "stress_level"), &in.StressLevel),
			parseIntCell(cell(rec, "smoking_status"), &in.SmokingStatus),
			parseIntCell(cell(rec, "alcohol_consumption"), &in.AlcoholConsumption),
		); err != nil {
			return nil, err
		}

		inputs = append(inputs, in)
	}
	return inputs, nil
}

func parseTimestamp(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}

func parseFloatCell(v string, dst **float64) error {
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return err
	}
	*dst = &f
	return nil
}

func parseIntCell(v string, dst **int) error {
	if v == "" {
		return nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	*dst = &i
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
