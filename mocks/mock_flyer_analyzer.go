package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"flyerscan/internal/domain"
)

// MockFlyerAnalyzer is a mock implementation of service.FlyerAnalyzer.
type MockFlyerAnalyzer struct {
	mock.Mock
}

func (m *MockFlyerAnalyzer) Analyze(ctx context.Context, image []byte, mimeType string) *domain.FlyerAnalysisResult {
	args := m.Called(ctx, image, mimeType)
	return args.Get(0).(*domain.FlyerAnalysisResult)
}
