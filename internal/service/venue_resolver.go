package service

import (
	"context"
	"log"
	"strings"

	"flyerscan/internal/domain"
	"flyerscan/internal/port"
)

// MaxVenueCandidates caps the number of venues returned by SearchCandidates.
const MaxVenueCandidates = 5

// VenueResolver resolves venue names to canonical place records.
// Upstream failures are soft: they yield nil, never an error.
type VenueResolver interface {
	Resolve(ctx context.Context, venueName, locationHint string) *domain.VenueDetails
	ResolveByID(ctx context.Context, placeID string) *domain.VenueDetails
	SearchCandidates(ctx context.Context, venueName, locationHint string) []domain.VenueDetails
}

type venueResolver struct {
	places        port.PlacesClient
	maxCandidates int
}

// NewVenueResolver creates a VenueResolver. maxCandidates outside 1..5 falls back to 5.
func NewVenueResolver(places port.PlacesClient, maxCandidates int) VenueResolver {
	if maxCandidates <= 0 || maxCandidates > MaxVenueCandidates {
		maxCandidates = MaxVenueCandidates
	}
	return &venueResolver{places: places, maxCandidates: maxCandidates}
}

func (r *venueResolver) Resolve(ctx context.Context, venueName, locationHint string) *domain.VenueDetails {
	query := venueName + ", " + locationHint
	ids, err := r.places.FindPlace(ctx, query)
	if err != nil {
		log.Printf("venueResolver.Resolve: find place for %q failed: %v", query, err)
		return nil
	}
	if len(ids) == 0 {
		log.Printf("venueResolver.Resolve: no place found for %q", query)
		return nil
	}
	return r.ResolveByID(ctx, ids[0])
}

func (r *venueResolver) ResolveByID(ctx context.Context, placeID string) *domain.VenueDetails {
	details, err := r.places.PlaceDetails(ctx, placeID)
	if err != nil {
		log.Printf("venueResolver.ResolveByID: details for %s failed: %v", placeID, err)
		return nil
	}
	if details == nil {
		return nil
	}
	return toVenueDetails(details)
}

func (r *venueResolver) SearchCandidates(ctx context.Context, venueName, locationHint string) []domain.VenueDetails {
	query := venueName
	if hint := strings.TrimSpace(locationHint); hint != "" {
		query = venueName + " " + hint
	}

	venues := []domain.VenueDetails{}
	ids, err := r.places.FindPlace(ctx, query)
	if err != nil {
		log.Printf("venueResolver.SearchCandidates: find place for %q failed: %v", query, err)
		return venues
	}

	for _, id := range ids {
		if len(venues) == r.maxCandidates {
			break
		}
		if v := r.ResolveByID(ctx, id); v != nil {
			venues = append(venues, *v)
		}
	}
	return venues
}

func toVenueDetails(p *port.PlaceDetails) *domain.VenueDetails {
	components := p.AddressComponents
	if components == nil {
		components = []domain.AddressComponent{}
	}
	country, region, locality := FlattenAddressComponents(components)
	return &domain.VenueDetails{
		PlaceID:           p.PlaceID,
		Name:              p.Name,
		FormattedAddress:  p.FormattedAddress,
		AddressComponents: components,
		Country:           country,
		Region:            region,
		Locality:          locality,
		Latitude:          p.Latitude,
		Longitude:         p.Longitude,
		Website:           p.Website,
		BusinessStatus:    p.BusinessStatus,
	}
}

// FlattenAddressComponents picks the short names of the first components
// tagged country, administrative_area_level_1 and locality. A missing tag
// yields "".
func FlattenAddressComponents(components []domain.AddressComponent) (country, region, locality string) {
	var haveCountry, haveRegion, haveLocality bool
	for _, c := range components {
		if !haveCountry && c.HasType(domain.ComponentCountry) {
			country, haveCountry = c.ShortName, true
		}
		if !haveRegion && c.HasType(domain.ComponentRegion) {
			region, haveRegion = c.ShortName, true
		}
		if !haveLocality && c.HasType(domain.ComponentLocality) {
			locality, haveLocality = c.ShortName, true
		}
	}
	return country, region, locality
}
