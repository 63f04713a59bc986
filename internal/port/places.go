package port

import (
	"context"

	"flyerscan/internal/domain"
)

// PlaceDetails is the detail record of a single place as returned upstream.
type PlaceDetails struct {
	PlaceID           string
	Name              string
	FormattedAddress  string
	AddressComponents []domain.AddressComponent
	Latitude          *float64
	Longitude         *float64
	Website           *string
	BusinessStatus    *string
}

// PlacesClient abstracts the places/geocoding service.
type PlacesClient interface {
	// FindPlace returns the place identifiers matching a free-text query,
	// in upstream order. No match is an empty slice and a nil error.
	FindPlace(ctx context.Context, query string) ([]string, error)
	// PlaceDetails fetches the full record for a place identifier.
	PlaceDetails(ctx context.Context, placeID string) (*PlaceDetails, error)
}
