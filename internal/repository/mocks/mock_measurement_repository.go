package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"healthtrack/internal/model"
	"healthtrack/internal/repository"
)

type MockMeasurementRepository struct {
	mock.Mock
}

func (m *MockMeasurementRepository) Create(ctx context.Context, mm *model.Measurement) (*model.Measurement, error) {
	args := m.Called(ctx, mm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Measurement), args.Error(1)
}

func (m *MockMeasurementRepository) CreateBatch(ctx context.Context, ms []model.Measurement) (int, error) {
	args := m.Called(ctx, ms)
	return args.Int(0), args.Error(1)
}

func (m *MockMeasurementRepository) FindByID(ctx context.Context, id string) (*model.Measurement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Measurement), args.Error(1)
}

func (m *MockMeasurementRepository) List(ctx context.Context, mq repository.MeasurementQuery) (*repository.PageResult[model.Measurement], error) {
	args := m.Called(ctx, mq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Measurement]), args.Error(1)
}

func (m *MockMeasurementRepository) History(ctx context.Context) ([]model.Measurement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Measurement), args.Error(1)
}

func (m *MockMeasurementRepository) Latest(ctx context.Context) (*model.Measurement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Measurement), args.Error(1)
}

func (m *MockMeasurementRepository) Update(ctx context.Context, mm *model.Measurement) (*model.Measurement, error) {
	args := m.Called(ctx, mm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Measurement), args.Error(1)
}

func (m *MockMeasurementRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
