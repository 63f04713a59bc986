package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"flyerscan/internal/port"
)

// MockImageAnalyzer is a mock implementation of port.ImageAnalyzer.
type MockImageAnalyzer struct {
	mock.Mock
}

func (m *MockImageAnalyzer) AnalyzeImage(ctx context.Context, input port.ImageInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}
