package mocks

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"healthtrack/internal/model"
	"healthtrack/internal/service"
)

type MockMeasurementService struct {
	mock.Mock
}

func (m *MockMeasurementService) Create(ctx context.Context, in *model.MeasurementInput) (*model.Measurement, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Measurement), args.Error(1)
}

func (m *MockMeasurementService) List(ctx context.Context, limit, offset int, from, to time.Time) (*service.MeasurementListResult, error) {
	args := m.Called(ctx, limit, offset, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MeasurementListResult), args.Error(1)
}

func (m *MockMeasurementService) Get(ctx context.Context, id string) (*model.Measurement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Measurement), args.Error(1)
}

func (m *MockMeasurementService) Latest(ctx context.Context) (*model.Measurement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Measurement), args.Error(1)
}

func (m *MockMeasurementService) Update(ctx context.Context, id string, in *model.MeasurementInput) (*model.Measurement, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Measurement), args.Error(1)
}

func (m *MockMeasurementService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMeasurementService) Statistics(ctx context.Context) (*model.HealthStatistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HealthStatistics), args.Error(1)
}

func (m *MockMeasurementService) Import(ctx context.Context, r io.Reader, format string) (int, error) {
	args := m.Called(ctx, r, format)
	return args.Int(0), args.Error(1)
}

func (m *MockMeasurementService) Export(ctx context.Context, format string) (*service.ExportResult, error) {
	args := m.Called(ctx, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportResult), args.Error(1)
}
