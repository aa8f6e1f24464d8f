package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"healthtrack/internal/model"
	"healthtrack/internal/repository"
)

// GoalInput is the write payload for a goal.
type GoalInput struct {
	Type            string    `json:"type"`
	Metric          string    `json:"metric"`
	StartValue      float64   `json:"start_value"`
	TargetValue     float64   `json:"target_value"`
	TargetSystolic  float64   `json:"target_systolic"`
	TargetDiastolic float64   `json:"target_diastolic"`
	TargetDate      time.Time `json:"target_date"`
}

// goalMetrics maps a goal type to the measurement metric it tracks.
var goalMetrics = map[string]string{
	model.GoalWeightLoss:    "weight_kg",
	model.GoalGlucose:       "glucose_fasting",
	model.GoalCholesterol:   "total_cholesterol",
	model.GoalExercise:      "exercise_minutes_per_week",
	model.GoalBloodPressure: "blood_pressure",
}

// GoalService defines the goal tracking use cases.
type GoalService interface {
	// Create stores a new goal. When no start value is given, it is seeded
	// from the latest measurement.
	Create(ctx context.Context, in *GoalInput) (*model.Goal, error)

	// List returns goals, optionally filtered by status.
	List(ctx context.Context, status string) ([]model.Goal, error)

	// UpdateStatus sets the status of a goal (active, achieved, abandoned).
	UpdateStatus(ctx context.Context, id, status string) (*model.Goal, error)

	// Delete removes a goal.
	Delete(ctx context.Context, id string) error

	// Progress evaluates every active goal against the latest measurement.
	Progress(ctx context.Context) ([]model.GoalProgress, error)
}

// goalService is a concrete implementation of GoalService.
type goalService struct {
	repo     repository.GoalRepository
	measures repository.MeasurementRepository
	now      func() time.Time
}

// NewGoalService constructs a new GoalService.
func NewGoalService(repo repository.GoalRepository, measures repository.MeasurementRepository) GoalService {
	return &goalService{repo: repo, measures: measures, now: time.Now}
}

func (s *goalService) Create(ctx context.Context, in *GoalInput) (*model.Goal, error) {
	if in == nil {
		return nil, &ValidationError{Violations: []string{"request body is required"}}
	}

	metric := in.Metric
	if known, ok := goalMetrics[in.Type]; ok {
		metric = known
	} else if in.Type != model.GoalCustom {
		return nil, &ValidationError{Violations: []string{fmt.Sprintf("unknown goal type %q", in.Type)}}
	}
	if in.Type == model.GoalCustom {
		if metric == "" {
			return nil, &ValidationError{Violations: []string{"metric is required for custom goals"}}
		}
		if !supportedMetrics[metric] {
			return nil, &ValidationError{Violations: []string{fmt.Sprintf("unsupported metric %q", metric)}}
		}
	}

	now := s.now().UTC()
	if !in.TargetDate.After(now) {
		return nil, &ValidationError{Violations: []string{"target date must be in the future"}}
	}

	g := &model.Goal{
		ID:              uuid.New().String(),
		Type:            in.Type,
		Metric:          metric,
		StartValue:      in.StartValue,
		TargetValue:     in.TargetValue,
		TargetSystolic:  in.TargetSystolic,
		TargetDiastolic: in.TargetDiastolic,
		TargetDate:      in.TargetDate,
		Status:          model.GoalActive,
		CreatedAt:       now,
	}

	if g.StartValue == 0 && g.Type != model.GoalBloodPressure {
		latest, err := s.measures.Latest(ctx)
		if err == nil {
			g.StartValue = metricValue(latest, metric)
		} else if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
	}

	return s.repo.Create(ctx, g)
}

func (s *goalService) List(ctx context.Context, status string) ([]model.Goal, error) {
	return s.repo.List(ctx, status)
}

func (s *goalService) UpdateStatus(ctx context.Context, id, status string) (*model.Goal, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	switch status {
	case model.GoalActive, model.GoalAchieved, model.GoalAbandoned:
	default:
		return nil, &ValidationError{Violations: []string{fmt.Sprintf("unknown goal status %q", status)}}
	}

	g, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (s *goalService) Delete(ctx context.Context, id string) error {
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

func (s *goalService) Progress(ctx context.Context) ([]model.GoalProgress, error) {
	goals, err := s.repo.List(ctx, model.GoalActive)
	if err != nil {
		return nil, err
	}
	if len(goals) == 0 {
		return []model.GoalProgress{}, nil
	}

	latest, err := s.measures.Latest(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoData
		}
		return nil, err
	}

	now := s.now().UTC()
	progress := make([]model.GoalProgress, 0, len(goals))
	for i := range goals {
		progress = append(progress, evaluateGoal(&goals[i], latest, now))
	}
	return progress, nil
}

// evaluateGoal computes completion for one goal against the latest
// measurement. Blood pressure goals are binary: both readings at or below
// target count as achieved.
func evaluateGoal(g *model.Goal, latest *model.Measurement, now time.Time) model.GoalProgress {
	gp := model.GoalProgress{
		GoalID:        g.ID,
		Type:          g.Type,
		DaysRemaining: int(g.TargetDate.UTC().Sub(now).Hours() / 24),
	}

	if g.Type == model.GoalBloodPressure {
		gp.CurrentValue = latest.SystolicBP
		gp.Achieved = latest.SystolicBP <= g.TargetSystolic && latest.DiastolicBP <= g.TargetDiastolic
		if gp.Achieved {
			gp.ProgressPct = 100
		}
		return gp
	}

	current := metricValue(latest, g.Metric)
	gp.CurrentValue = current

	if g.TargetValue != g.StartValue {
		pct := (current - g.StartValue) / (g.TargetValue - g.StartValue) * 100
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		gp.ProgressPct = pct
	}

	if g.TargetValue < g.StartValue {
		gp.Achieved = current <= g.TargetValue
	} else {
		gp.Achieved = current >= g.TargetValue
	}
	return gp
}

// supportedMetrics are the measurement fields a custom goal can track.
// metricValue reads current values for exactly this set.
var supportedMetrics = map[string]bool{
	"weight_kg":                 true,
	"bmi":                       true,
	"waist_cm":                  true,
	"systolic_bp":               true,
	"diastolic_bp":              true,
	"glucose_fasting":           true,
	"total_cholesterol":         true,
	"hdl_cholesterol":           true,
	"ldl_cholesterol":           true,
	"triglycerides":             true,
	"exercise_minutes_per_week": true,
	"sleep_hours":               true,
	"stress_level":              true,
}

func metricValue(m *model.Measurement, metric string) float64 {
	switch metric {
	case "weight_kg":
		return m.WeightKg
	case "bmi":
		return m.BMI
	case "waist_cm":
		return m.WaistCm
	case "systolic_bp":
		return m.SystolicBP
	case "diastolic_bp":
		return m.DiastolicBP
	case "glucose_fasting":
		return m.GlucoseFasting
	case "total_cholesterol":
		return m.TotalCholesterol
	case "hdl_cholesterol":
		return m.HDLCholesterol
	case "ldl_cholesterol":
		return m.LDLCholesterol
	case "triglycerides":
		return m.Triglycerides
	case "exercise_minutes_per_week":
		return m.ExerciseMinutesPerWeek
	case "sleep_hours":
		return m.SleepHours
	case "stress_level":
		return float64(m.StressLevel)
	default:
		return 0
	}
}
