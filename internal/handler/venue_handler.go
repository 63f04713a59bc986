package handler

import (
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"flyerscan/internal/domain"
	"flyerscan/internal/metrics"
	"flyerscan/internal/service"
)

// VenueHandler handles venue search endpoints.
type VenueHandler struct {
	resolver service.VenueResolver
	metrics  *metrics.Metrics
}

// NewVenueHandler creates a new VenueHandler.
func NewVenueHandler(resolver service.VenueResolver, m *metrics.Metrics) *VenueHandler {
	return &VenueHandler{resolver: resolver, metrics: m}
}

// Search handles POST /search-venues
// @Summary Search venue candidates
// @Description List up to five venues matching a name, for user disambiguation. Always answers 200; failures are reported in search_status.
// @Tags venues
// @Produce json
// @Param venue_name query string true "Venue name (venueName is also accepted)"
// @Param location_hint query string false "Location hint (locationHint is also accepted)"
// @Success 200 {object} domain.VenueSearchResponse "Search result"
// @Router /search-venues [post]
func (h *VenueHandler) Search(c *gin.Context) {
	venueName := strings.TrimSpace(queryAlias(c, "venue_name", "venueName"))
	locationHint := strings.TrimSpace(queryAlias(c, "location_hint", "locationHint"))

	resp := h.search(c, venueName, locationHint)
	h.metrics.IncVenueSearch(string(resp.SearchStatus))
	RespondOK(c, resp)
}

func (h *VenueHandler) search(c *gin.Context, venueName, locationHint string) (resp *domain.VenueSearchResponse) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("venueHandler.Search: recovered from panic: %v", r)
			resp = searchError(fmt.Errorf("%v", r))
		}
	}()

	if venueName == "" {
		return searchError(domain.ErrVenueNameRequired)
	}

	return &domain.VenueSearchResponse{
		Venues:       h.resolver.SearchCandidates(c.Request.Context(), venueName, locationHint),
		SearchStatus: domain.SearchStatusSuccess,
	}
}

func searchError(err error) *domain.VenueSearchResponse {
	return &domain.VenueSearchResponse{
		Venues:       []domain.VenueDetails{},
		SearchStatus: domain.SearchStatusError,
		ErrorMessage: "Venue search failed: " + err.Error(),
	}
}

// queryAlias returns the first non-empty query parameter among keys.
func queryAlias(c *gin.Context, keys ...string) string {
	for _, k := range keys {
		if v := c.Query(k); v != "" {
			return v
		}
	}
	return ""
}
