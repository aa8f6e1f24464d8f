package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"healthtrack/internal/model"
)

type MockInterventionRepository struct {
	mock.Mock
}

func (m *MockInterventionRepository) Create(ctx context.Context, iv *model.TrackedIntervention) (*model.TrackedIntervention, error) {
	args := m.Called(ctx, iv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TrackedIntervention), args.Error(1)
}

func (m *MockInterventionRepository) FindByID(ctx context.Context, id string) (*model.TrackedIntervention, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TrackedIntervention), args.Error(1)
}

func (m *MockInterventionRepository) List(ctx context.Context, status string) ([]model.TrackedIntervention, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TrackedIntervention), args.Error(1)
}

func (m *MockInterventionRepository) Update(ctx context.Context, iv *model.TrackedIntervention) (*model.TrackedIntervention, error) {
	args := m.Called(ctx, iv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TrackedIntervention), args.Error(1)
}

func (m *MockInterventionRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
