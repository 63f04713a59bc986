package domain

import "math"

// FlyerAnalysisResult is the normalized reply of the vision/language model
// for a single flyer image.
type FlyerAnalysisResult struct {
	IsEventFlyer bool           `json:"is_event_flyer"`
	Confidence   float64        `json:"confidence"`
	EventNames   []string       `json:"event_names,omitempty"`
	Dates        []string       `json:"dates,omitempty"`
	Venues       []string       `json:"venues,omitempty"`
	Locations    []string       `json:"locations,omitempty"`
	Status       AnalysisStatus `json:"analysis_status"`
	ErrorMessage string         `json:"error_message,omitempty"`
	RawResponse  string         `json:"raw_response,omitempty"`
}

// AddressComponent is a typed fragment of a structured address.
type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

// HasType reports whether the component is tagged with t.
func (a AddressComponent) HasType(t string) bool {
	for _, typ := range a.Types {
		if typ == t {
			return true
		}
	}
	return false
}

// VenueDetails is a place record resolved from the places service.
// Country, Region and Locality are never nil; a missing tag yields "".
type VenueDetails struct {
	PlaceID           string             `json:"place_id"`
	Name              string             `json:"gmap_name"`
	FormattedAddress  string             `json:"formatted_address"`
	AddressComponents []AddressComponent `json:"address_components"`
	Country           string             `json:"country"`
	Region            string             `json:"administrative_area_level_1"`
	Locality          string             `json:"locality"`
	Latitude          *float64           `json:"latitude,omitempty"`
	Longitude         *float64           `json:"longitude,omitempty"`
	Website           *string            `json:"website,omitempty"`
	BusinessStatus    *string            `json:"business_status,omitempty"`
}

// Geocode returns [lat, lng] when both coordinates are present and finite,
// otherwise nil.
func (v *VenueDetails) Geocode() []float64 {
	if v == nil || v.Latitude == nil || v.Longitude == nil {
		return nil
	}
	lat, lng := *v.Latitude, *v.Longitude
	if !isFinite(lat) || !isFinite(lng) {
		return nil
	}
	return []float64{lat, lng}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// FlyerAnalysisResponse merges the first extracted event with its resolved venue.
// When IsEventFlyer is false every venue and geocode field is nil.
type FlyerAnalysisResponse struct {
	AnalysisID        string               `json:"analysis_id"`
	IsEventFlyer      bool                 `json:"is_event_flyer"`
	EventTitle        *string              `json:"event_title,omitempty"`
	EventDate         *string              `json:"event_date,omitempty"`
	EventVenue        *string              `json:"event_venue,omitempty"`
	EventLocation     *string              `json:"event_location,omitempty"`
	EventAddress      *string              `json:"event_address,omitempty"`
	AddressComponents []AddressComponent   `json:"address_components,omitempty"`
	Country           *string              `json:"country,omitempty"`
	Region            *string              `json:"administrative_area_level_1,omitempty"`
	Locality          *string              `json:"locality,omitempty"`
	EventGeocode      []float64            `json:"event_geocode,omitempty"`
	Status            FlyerStatus          `json:"analysis_status"`
	Confidence        *float64             `json:"confidence,omitempty"`
	RawGeminiData     *FlyerAnalysisResult `json:"raw_gemini_data,omitempty"`
	RawGmapData       *VenueDetails        `json:"raw_gmap_data,omitempty"`
}

// ApplyVenue copies the resolved venue's address and geocode onto the response.
func (r *FlyerAnalysisResponse) ApplyVenue(v *VenueDetails) {
	if v == nil {
		return
	}
	r.EventAddress = stringPtr(v.FormattedAddress)
	r.AddressComponents = v.AddressComponents
	r.Country = stringPtr(v.Country)
	r.Region = stringPtr(v.Region)
	r.Locality = stringPtr(v.Locality)
	r.EventGeocode = v.Geocode()
	r.RawGmapData = v
}

// VenueSearchResponse lists venue candidates for user disambiguation.
type VenueSearchResponse struct {
	Venues       []VenueDetails `json:"venues"`
	SearchStatus SearchStatus   `json:"search_status"`
	ErrorMessage string         `json:"error_message,omitempty"`
}

func stringPtr(s string) *string {
	return &s
}
