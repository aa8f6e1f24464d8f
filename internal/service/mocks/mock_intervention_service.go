package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"healthtrack/internal/model"
)

type MockInterventionService struct {
	mock.Mock
}

func (m *MockInterventionService) Recommendations(ctx context.Context) (map[string][]model.Intervention, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]model.Intervention), args.Error(1)
}

func (m *MockInterventionService) Track(ctx context.Context, iv *model.Intervention) (*model.TrackedIntervention, error) {
	args := m.Called(ctx, iv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TrackedIntervention), args.Error(1)
}

func (m *MockInterventionService) List(ctx context.Context, status string) ([]model.TrackedIntervention, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TrackedIntervention), args.Error(1)
}

func (m *MockInterventionService) UpdateProgress(ctx context.Context, id string, upd *model.ProgressUpdate) (*model.TrackedIntervention, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TrackedIntervention), args.Error(1)
}

func (m *MockInterventionService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
