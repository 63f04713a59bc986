package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"flyerscan/internal/domain"
	"flyerscan/internal/service"
)

// MockFlyerService is a mock implementation of service.FlyerService.
type MockFlyerService struct {
	mock.Mock
}

func (m *MockFlyerService) AnalyzeUpload(ctx context.Context, input service.FlyerUploadInput) (*domain.FlyerAnalysisResponse, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlyerAnalysisResponse), args.Error(1)
}
