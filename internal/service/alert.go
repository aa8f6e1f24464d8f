package service

import (
	"context"
	"time"

	"healthtrack/internal/alert"
	"healthtrack/internal/model"
	"healthtrack/internal/repository"
)

// AlertService defines the alerting use cases.
type AlertService interface {
	// Check evaluates the measurement history and returns the triggered
	// alerts sorted by severity.
	Check(ctx context.Context) ([]model.Alert, error)

	// Summary aggregates the current alert state.
	Summary(ctx context.Context) (*model.AlertSummary, error)

	// Recommendations consolidates the triggered alerts into one
	// recommendation per metric.
	Recommendations(ctx context.Context) ([]model.AlertRecommendation, error)
}

// alertService is a concrete implementation of AlertService.
type alertService struct {
	repo   repository.MeasurementRepository
	engine *alert.Engine
	now    func() time.Time
}

// NewAlertService constructs a new AlertService.
func NewAlertService(repo repository.MeasurementRepository, engine *alert.Engine) AlertService {
	return &alertService{repo: repo, engine: engine, now: time.Now}
}

func (s *alertService) Check(ctx context.Context) ([]model.Alert, error) {
	history, err := s.repo.History(ctx)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, ErrNoData
	}
	return s.engine.Check(history, s.now()), nil
}

func (s *alertService) Summary(ctx context.Context) (*model.AlertSummary, error) {
	history, err := s.repo.History(ctx)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, ErrNoData
	}
	return s.engine.Summary(history, s.now()), nil
}

func (s *alertService) Recommendations(ctx context.Context) ([]model.AlertRecommendation, error) {
	alerts, err := s.Check(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.Recommendations(alerts), nil
}
