package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"healthtrack/internal/intervention"
	"healthtrack/internal/model"
	"healthtrack/internal/repository"
	"healthtrack/internal/risk"
)

// Tracked intervention statuses.
const (
	InterventionActive    = "active"
	InterventionCompleted = "completed"
	InterventionAbandoned = "abandoned"
)

var ErrTitleRequired = errors.New("title is required")

// InterventionService defines the intervention recommendation and tracking use cases.
type InterventionService interface {
	// Recommendations returns the personalized intervention set per category,
	// built from the latest measurement and current risk scores.
	Recommendations(ctx context.Context) (map[string][]model.Intervention, error)

	// Track starts tracking an intervention: weekly goals are seeded from its
	// action steps and progress starts at zero.
	Track(ctx context.Context, iv *model.Intervention) (*model.TrackedIntervention, error)

	// List returns tracked interventions, optionally filtered by status.
	List(ctx context.Context, status string) ([]model.TrackedIntervention, error)

	// UpdateProgress applies a progress mutation. Reaching 100% marks the
	// intervention completed.
	UpdateProgress(ctx context.Context, id string, upd *model.ProgressUpdate) (*model.TrackedIntervention, error)

	// Delete stops tracking an intervention.
	Delete(ctx context.Context, id string) error
}

// interventionService is a concrete implementation of InterventionService.
type interventionService struct {
	repo     repository.InterventionRepository
	measures repository.MeasurementRepository
	engine   *intervention.Engine
	risk     *risk.Engine
	now      func() time.Time
}

// NewInterventionService constructs a new InterventionService.
func NewInterventionService(repo repository.InterventionRepository, measures repository.MeasurementRepository, engine *intervention.Engine, riskEngine *risk.Engine) InterventionService {
	return &interventionService{
		repo:     repo,
		measures: measures,
		engine:   engine,
		risk:     riskEngine,
		now:      time.Now,
	}
}

func (s *interventionService) Recommendations(ctx context.Context) (map[string][]model.Intervention, error) {
	latest, err := s.measures.Latest(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoData
		}
		return nil, err
	}
	return s.engine.Recommend(latest, s.risk.Score(latest)), nil
}

func (s *interventionService) Track(ctx context.Context, iv *model.Intervention) (*model.TrackedIntervention, error) {
	if iv == nil || iv.Title == "" {
		return nil, ErrTitleRequired
	}

	now := s.now().UTC()
	tpl := s.engine.Template(iv, now)

	tracked := &model.TrackedIntervention{
		ID:          uuid.New().String(),
		Title:       iv.Title,
		Category:    iv.Category,
		Priority:    iv.Priority,
		Duration:    tpl.TargetDuration,
		StartDate:   now,
		Status:      InterventionActive,
		WeeklyGoals: tpl.WeeklyGoals,
		UpdatedAt:   now,
	}
	return s.repo.Create(ctx, tracked)
}

func (s *interventionService) List(ctx context.Context, status string) ([]model.TrackedIntervention, error) {
	return s.repo.List(ctx, status)
}

func (s *interventionService) UpdateProgress(ctx context.Context, id string, upd *model.ProgressUpdate) (*model.TrackedIntervention, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	tracked, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if upd != nil {
		if upd.OverallProgress != nil {
			tracked.OverallProgress = clampProgress(*upd.OverallProgress)
		}
		if upd.Notes != nil {
			tracked.Notes = *upd.Notes
		}
		for _, week := range upd.CompletedWeeks {
			for i := range tracked.WeeklyGoals {
				if tracked.WeeklyGoals[i].Week == week {
					tracked.WeeklyGoals[i].Completed = true
				}
			}
		}
	}

	if tracked.OverallProgress >= 100 {
		tracked.Status = InterventionCompleted
	}
	tracked.UpdatedAt = s.now().UTC()

	return s.repo.Update(ctx, tracked)
}

func (s *interventionService) Delete(ctx context.Context, id string) error {
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

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
