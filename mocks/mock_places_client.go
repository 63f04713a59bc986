package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"flyerscan/internal/port"
)

// MockPlacesClient is a mock implementation of port.PlacesClient.
type MockPlacesClient struct {
	mock.Mock
}

func (m *MockPlacesClient) FindPlace(ctx context.Context, query string) ([]string, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPlacesClient) PlaceDetails(ctx context.Context, placeID string) (*port.PlaceDetails, error) {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.PlaceDetails), args.Error(1)
}
