package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"healthtrack/internal/model"
)

type MockAssessmentService struct {
	mock.Mock
}

func (m *MockAssessmentService) Assess(ctx context.Context) (*model.Assessment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Assessment), args.Error(1)
}

func (m *MockAssessmentService) Condition(ctx context.Context, cond model.Condition) (*model.ConditionAnalysis, error) {
	args := m.Called(ctx, cond)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ConditionAnalysis), args.Error(1)
}

func (m *MockAssessmentService) Trends(ctx context.Context) ([]model.Trend, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Trend), args.Error(1)
}
