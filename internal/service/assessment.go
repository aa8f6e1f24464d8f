package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"healthtrack/internal/model"
	"healthtrack/internal/repository"
	"healthtrack/internal/risk"
)

// AssessmentService defines the risk assessment use cases.
type AssessmentService interface {
	// Assess scores every condition from the latest measurement and bundles
	// risk factors, health score, derived metrics and insights.
	Assess(ctx context.Context) (*model.Assessment, error)

	// Condition returns the per-criterion breakdown for one condition.
	Condition(ctx context.Context, cond model.Condition) (*model.ConditionAnalysis, error)

	// Trends analyzes how key metrics moved across the measurement history.
	Trends(ctx context.Context) ([]model.Trend, error)
}

// assessmentService is a concrete implementation of AssessmentService.
type assessmentService struct {
	repo repository.MeasurementRepository
	risk *risk.Engine
	now  func() time.Time
}

// NewAssessmentService constructs a new AssessmentService.
func NewAssessmentService(repo repository.MeasurementRepository, engine *risk.Engine) AssessmentService {
	return &assessmentService{repo: repo, risk: engine, now: time.Now}
}

func (s *assessmentService) Assess(ctx context.Context) (*model.Assessment, error) {
	latest, err := s.repo.Latest(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoData
		}
		return nil, err
	}

	return &model.Assessment{
		Scores:      s.risk.Score(latest),
		Factors:     s.risk.AnalyzeRiskFactors(latest),
		HealthScore: s.risk.HealthScore(latest),
		Derived:     s.risk.Derived(latest),
		Insights:    s.risk.Insights(latest),
		AssessedAt:  s.now().UTC(),
	}, nil
}

func (s *assessmentService) Condition(ctx context.Context, cond model.Condition) (*model.ConditionAnalysis, error) {
	latest, err := s.repo.Latest(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoData
		}
		return nil, err
	}
	return s.risk.AnalyzeCondition(cond, latest)
}

func (s *assessmentService) Trends(ctx context.Context) ([]model.Trend, error) {
	history, err := s.repo.History(ctx)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, ErrNoData
	}
	return s.risk.Trends(history), nil
}
