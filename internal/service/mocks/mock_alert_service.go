package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"healthtrack/internal/model"
)

type MockAlertService struct {
	mock.Mock
}

func (m *MockAlertService) Check(ctx context.Context) ([]model.Alert, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Alert), args.Error(1)
}

func (m *MockAlertService) Summary(ctx context.Context) (*model.AlertSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AlertSummary), args.Error(1)
}

func (m *MockAlertService) Recommendations(ctx context.Context) ([]model.AlertRecommendation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AlertRecommendation), args.Error(1)
}
