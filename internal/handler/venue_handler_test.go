package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"flyerscan/internal/domain"
	"flyerscan/internal/handler"
	"flyerscan/mocks"
)

func newSearchContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, target, http.NoBody)
	return c, w
}

func decodeSearch(t *testing.T, w *httptest.ResponseRecorder) domain.VenueSearchResponse {
	t.Helper()
	var resp domain.VenueSearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestVenueHandler_Search_Success(t *testing.T) {
	resolver := new(mocks.MockVenueResolver)
	h := handler.NewVenueHandler(resolver, nil)

	venues := []domain.VenueDetails{
		{
			PlaceID:           "p1",
			Name:              "Club Quattro",
			AddressComponents: []domain.AddressComponent{},
			Country:           "JP",
			Region:            "Tokyo",
			Locality:          "Shibuya",
		},
	}
	resolver.On("SearchCandidates", mock.Anything, "Quattro", "Shibuya").Return(venues)

	c, w := newSearchContext("/search-venues?venue_name=Quattro&location_hint=Shibuya")
	h.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeSearch(t, w)
	assert.Equal(t, domain.SearchStatusSuccess, resp.SearchStatus)
	require.Len(t, resp.Venues, 1)
	assert.Equal(t, "Club Quattro", resp.Venues[0].Name)
	assert.Empty(t, resp.ErrorMessage)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	first := raw["venues"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "Club Quattro", first["gmap_name"])
	assert.Equal(t, "Tokyo", first["administrative_area_level_1"])
	resolver.AssertExpectations(t)
}

func TestVenueHandler_Search_CamelCaseParams(t *testing.T) {
	resolver := new(mocks.MockVenueResolver)
	h := handler.NewVenueHandler(resolver, nil)
	resolver.On("SearchCandidates", mock.Anything, "渋谷クラブクアトロ", "").Return([]domain.VenueDetails{})

	c, w := newSearchContext("/search-venues?venueName=%E6%B8%8B%E8%B0%B7%E3%82%AF%E3%83%A9%E3%83%96%E3%82%AF%E3%82%A2%E3%83%88%E3%83%AD")
	h.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeSearch(t, w)
	assert.Equal(t, domain.SearchStatusSuccess, resp.SearchStatus)
	assert.NotNil(t, resp.Venues)
	assert.Empty(t, resp.Venues)
	resolver.AssertExpectations(t)
}

func TestVenueHandler_Search_MissingName(t *testing.T) {
	resolver := new(mocks.MockVenueResolver)
	h := handler.NewVenueHandler(resolver, nil)

	c, w := newSearchContext("/search-venues?venue_name=%20%20")
	h.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeSearch(t, w)
	assert.Equal(t, domain.SearchStatusError, resp.SearchStatus)
	assert.Empty(t, resp.Venues)
	assert.Contains(t, resp.ErrorMessage, "Venue search failed")
	resolver.AssertNotCalled(t, "SearchCandidates", mock.Anything, mock.Anything, mock.Anything)
}

func TestVenueHandler_Search_RecoversFromPanic(t *testing.T) {
	resolver := new(mocks.MockVenueResolver)
	h := handler.NewVenueHandler(resolver, nil)
	resolver.On("SearchCandidates", mock.Anything, "Quattro", "").Run(func(mock.Arguments) {
		panic("resolver exploded")
	}).Return([]domain.VenueDetails{})

	c, w := newSearchContext("/search-venues?venue_name=Quattro")
	h.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeSearch(t, w)
	assert.Equal(t, domain.SearchStatusError, resp.SearchStatus)
	assert.Equal(t, "Venue search failed: resolver exploded", resp.ErrorMessage)
	assert.NotNil(t, resp.Venues)
}
