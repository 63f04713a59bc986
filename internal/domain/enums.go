package domain

// AnalysisStatus is the outcome of a single flyer analysis call.
type AnalysisStatus string

const (
	AnalysisStatusSuccess    AnalysisStatus = "success"
	AnalysisStatusParseError AnalysisStatus = "json_parse_error"
	AnalysisStatusError      AnalysisStatus = "error"
)

// FlyerStatus is the outcome reported to clients of POST /analyze-flyer.
type FlyerStatus string

const (
	FlyerStatusSuccess       FlyerStatus = "success"
	FlyerStatusGeminiError   FlyerStatus = "gemini_error"
	FlyerStatusNotEventFlyer FlyerStatus = "not_event_flyer"
)

// SearchStatus is the outcome reported to clients of POST /search-venues.
type SearchStatus string

const (
	SearchStatusSuccess SearchStatus = "success"
	SearchStatusError   SearchStatus = "error"
)

// Place service status codes.
const (
	PlacesStatusOK          = "OK"
	PlacesStatusZeroResults = "ZERO_RESULTS"
)

// Address component types flattened into VenueDetails.
const (
	ComponentCountry  = "country"
	ComponentRegion   = "administrative_area_level_1"
	ComponentLocality = "locality"
)

// SupportedImageTypes maps MIME types accepted by the vision model.
var SupportedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/heic": true,
	"image/heif": true,
}
