package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"flyerscan/internal/config"
	"flyerscan/internal/domain"
	"flyerscan/internal/metrics"
	"flyerscan/internal/port"
)

const (
	defaultBaseURL  = "https://maps.googleapis.com/maps/api/place"
	defaultLanguage = "en"
	serviceName     = "places"
)

// detailFields is the field mask requested from the details endpoint.
var detailFields = []string{
	"place_id",
	"name",
	"formatted_address",
	"address_components",
	"geometry",
	"website",
	"business_status",
}

// ErrUpstreamStatus is returned when the API answers with a status other than OK.
var ErrUpstreamStatus = errors.New("places API returned non-OK status")

// Client implements port.PlacesClient against the Google Places web service.
type Client struct {
	apiKey   string
	baseURL  string
	language string
	client   *http.Client
	metrics  *metrics.Metrics
}

// NewClient creates a Places client. Every query is pinned to cfg.Language (English by default).
func NewClient(cfg *config.PlacesConfig, m *metrics.Metrics) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	language := cfg.Language
	if language == "" {
		language = defaultLanguage
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		apiKey:   cfg.APIKey,
		baseURL:  baseURL,
		language: language,
		client:   &http.Client{Timeout: timeout},
		metrics:  m,
	}
}

// findPlaceResponse models the Find Place response.
type findPlaceResponse struct {
	Candidates []struct {
		PlaceID string `json:"place_id"`
	} `json:"candidates"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

func (c *Client) FindPlace(ctx context.Context, query string) ([]string, error) {
	params := url.Values{}
	params.Set("input", query)
	params.Set("inputtype", "textquery")
	params.Set("fields", "place_id")

	start := time.Now()
	var resp findPlaceResponse
	err := c.get(ctx, "findplacefromtext/json", params, &resp)
	if err == nil && resp.Status != domain.PlacesStatusOK && resp.Status != domain.PlacesStatusZeroResults {
		err = statusError(resp.Status, resp.ErrorMessage)
	}

	outcome := metrics.OutcomeOK
	switch {
	case err != nil:
		outcome = metrics.OutcomeError
	case len(resp.Candidates) == 0:
		outcome = metrics.OutcomeMiss
	}
	c.metrics.ObserveUpstream(serviceName, "find_place", outcome, time.Since(start))
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(resp.Candidates))
	for _, cand := range resp.Candidates {
		if cand.PlaceID != "" {
			ids = append(ids, cand.PlaceID)
		}
	}
	return ids, nil
}

// detailsResponse models the Place Details response.
type detailsResponse struct {
	Result struct {
		PlaceID           string                    `json:"place_id"`
		Name              string                    `json:"name"`
		FormattedAddress  string                    `json:"formatted_address"`
		AddressComponents []domain.AddressComponent `json:"address_components"`
		Geometry          struct {
			Location struct {
				Lat *float64 `json:"lat"`
				Lng *float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		Website        *string `json:"website"`
		BusinessStatus *string `json:"business_status"`
	} `json:"result"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

func (c *Client) PlaceDetails(ctx context.Context, placeID string) (*port.PlaceDetails, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", strings.Join(detailFields, ","))

	start := time.Now()
	var resp detailsResponse
	err := c.get(ctx, "details/json", params, &resp)
	if err == nil && resp.Status != domain.PlacesStatusOK {
		err = statusError(resp.Status, resp.ErrorMessage)
	}
	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = metrics.OutcomeError
	}
	c.metrics.ObserveUpstream(serviceName, "place_details", outcome, time.Since(start))
	if err != nil {
		return nil, err
	}

	r := resp.Result
	return &port.PlaceDetails{
		PlaceID:           r.PlaceID,
		Name:              r.Name,
		FormattedAddress:  r.FormattedAddress,
		AddressComponents: r.AddressComponents,
		Latitude:          r.Geometry.Location.Lat,
		Longitude:         r.Geometry.Location.Lng,
		Website:           r.Website,
		BusinessStatus:    r.BusinessStatus,
	}, nil
}

// get issues a GET against path with the credential and language appended,
// decoding the JSON body into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	if c.apiKey == "" {
		return domain.ErrMissingAPIKey
	}
	params.Set("key", c.apiKey)
	params.Set("language", c.language)

	reqURL := c.baseURL + "/" + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling places API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("places API error (status %d)", resp.StatusCode)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unmarshaling response: %w", err)
	}
	return nil
}

func statusError(status, message string) error {
	if message != "" {
		return fmt.Errorf("%w: %s (%s)", ErrUpstreamStatus, status, message)
	}
	return fmt.Errorf("%w: %s", ErrUpstreamStatus, status)
}
