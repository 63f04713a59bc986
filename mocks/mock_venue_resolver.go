package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"flyerscan/internal/domain"
)

// MockVenueResolver is a mock implementation of service.VenueResolver.
type MockVenueResolver struct {
	mock.Mock
}

func (m *MockVenueResolver) Resolve(ctx context.Context, venueName, locationHint string) *domain.VenueDetails {
	args := m.Called(ctx, venueName, locationHint)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.VenueDetails)
}

func (m *MockVenueResolver) ResolveByID(ctx context.Context, placeID string) *domain.VenueDetails {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.VenueDetails)
}

func (m *MockVenueResolver) SearchCandidates(ctx context.Context, venueName, locationHint string) []domain.VenueDetails {
	args := m.Called(ctx, venueName, locationHint)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.VenueDetails)
}
