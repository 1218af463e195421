package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"deedcheck/internal/domain"
	"deedcheck/internal/service"
	"deedcheck/internal/validator"
	"deedcheck/internal/validator/deed"
)

// MockCheckService is a mock implementation of service.CheckService.
type MockCheckService struct {
	mock.Mock
}

func (m *MockCheckService) CheckPosthumous(ctx context.Context, input *service.PosthumousCheckInput) (*domain.PosthumousResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PosthumousResult), args.Error(1)
}

func (m *MockCheckService) CheckRegistration(ctx context.Context, input *service.RegistrationCheckInput) (*domain.RegistrationResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RegistrationResult), args.Error(1)
}

func (m *MockCheckService) ValidateDeed(ctx context.Context, rec *deed.Record) (*validator.Report, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*validator.Report), args.Error(1)
}

func (m *MockCheckService) RegistrationRules() service.RegistrationRules {
	args := m.Called()
	return args.Get(0).(service.RegistrationRules)
}
