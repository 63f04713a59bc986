package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"flyerscan/internal/domain"
	"flyerscan/internal/port"
	"flyerscan/internal/service"
	"flyerscan/mocks"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"no fence", "  {\"a\":1}\n", `{"a":1}`},
		{"unterminated fence", "```json\n{\"a\":1}", `{"a":1}`},
		{"prose around fence", "Here you go:\n```json\n{\"a\":1}\n```\nThanks!", `{"a":1}`},
		{"inline fence", "```{\"a\":1}```", `{"a":1}`},
		{"inline json fence", "```json{\"a\":1}```", `{"a":1}`},
		{"first fence wins", "```json\n{\"a\":1}\n```\nand\n```json\n{\"b\":2}\n```", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.StripCodeFence(tt.in))
		})
	}
}

func TestParseFlyerReply_FencedMatchesUnfenced(t *testing.T) {
	plain := `{"is_event_flyer":false,"confidence":0.1}`
	fenced := "```json\n" + plain + "\n```"

	a := service.ParseFlyerReply(plain)
	b := service.ParseFlyerReply(fenced)

	assert.Equal(t, domain.AnalysisStatusSuccess, b.Status)
	assert.Equal(t, a.IsEventFlyer, b.IsEventFlyer)
	assert.Equal(t, a.Confidence, b.Confidence)
	assert.Equal(t, a.EventNames, b.EventNames)
	assert.Equal(t, a.Venues, b.Venues)
	assert.Equal(t, fenced, b.RawResponse)
}

func TestParseFlyerReply_FullReply(t *testing.T) {
	raw := `{
		"is_event_flyer": true,
		"confidence": 0.92,
		"event_names": ["Night Drive", "  "],
		"dates": ["2024-11-03"],
		"venues": [" 渋谷クラブクアトロ "],
		"locations": ["Tokyo"]
	}`

	result := service.ParseFlyerReply(raw)

	assert.Equal(t, domain.AnalysisStatusSuccess, result.Status)
	assert.True(t, result.IsEventFlyer)
	assert.InDelta(t, 0.92, result.Confidence, 1e-9)
	assert.Equal(t, []string{"Night Drive"}, result.EventNames)
	assert.Equal(t, []string{"2024-11-03"}, result.Dates)
	assert.Equal(t, []string{"渋谷クラブクアトロ"}, result.Venues)
	assert.Equal(t, []string{"Tokyo"}, result.Locations)
	assert.Empty(t, result.ErrorMessage)
	assert.Equal(t, raw, result.RawResponse)
}

func TestParseFlyerReply_Truncated(t *testing.T) {
	raw := `{"is_event_flyer":`

	result := service.ParseFlyerReply(raw)

	assert.Equal(t, domain.AnalysisStatusParseError, result.Status)
	assert.False(t, result.IsEventFlyer)
	assert.Equal(t, raw, result.RawResponse)
	assert.True(t, strings.HasPrefix(result.ErrorMessage, "Failed to parse JSON response:"))
}

func TestParseFlyerReply_NotAnObject(t *testing.T) {
	for _, raw := range []string{"null", "[1,2]", "I could not read this image."} {
		t.Run(raw, func(t *testing.T) {
			result := service.ParseFlyerReply(raw)
			assert.Equal(t, domain.AnalysisStatusParseError, result.Status)
			assert.Equal(t, raw, result.RawResponse)
		})
	}
}

func TestParseFlyerReply_LegacyLocationKey(t *testing.T) {
	result := service.ParseFlyerReply(`{"is_event_flyer":true,"confidence":0.8,"venues":["X Hall"],"location":["Osaka"]}`)

	require.Equal(t, domain.AnalysisStatusSuccess, result.Status)
	assert.Equal(t, []string{"Osaka"}, result.Locations)
}

func TestParseFlyerReply_ClampsConfidence(t *testing.T) {
	high := service.ParseFlyerReply(`{"is_event_flyer":true,"confidence":1.7}`)
	low := service.ParseFlyerReply(`{"is_event_flyer":true,"confidence":-0.2}`)

	assert.Equal(t, 1.0, high.Confidence)
	assert.Equal(t, 0.0, low.Confidence)
}

func TestFlyerAnalyzer_Analyze_Success(t *testing.T) {
	model := new(mocks.MockImageAnalyzer)
	image := []byte("\x89PNG\r\n\x1a\nfake")

	model.On("AnalyzeImage", mock.Anything, mock.MatchedBy(func(in port.ImageInput) bool {
		return in.MIMEType == "image/png" &&
			string(in.Bytes) == string(image) &&
			strings.Contains(in.Prompt, "is_event_flyer")
	})).Return("```json\n{\"is_event_flyer\":true,\"confidence\":0.9,\"venues\":[\"X Hall\"],\"locations\":[\"Tokyo\"]}\n```", nil)

	result := service.NewFlyerAnalyzer(model).Analyze(context.Background(), image, "image/png")

	assert.Equal(t, domain.AnalysisStatusSuccess, result.Status)
	assert.True(t, result.IsEventFlyer)
	assert.Equal(t, []string{"X Hall"}, result.Venues)
	model.AssertExpectations(t)
}

func TestFlyerAnalyzer_Analyze_UpstreamError(t *testing.T) {
	model := new(mocks.MockImageAnalyzer)
	model.On("AnalyzeImage", mock.Anything, mock.Anything).Return("", errors.New("gemini API error (status 500): boom"))

	result := service.NewFlyerAnalyzer(model).Analyze(context.Background(), []byte("x"), "image/jpeg")

	assert.Equal(t, domain.AnalysisStatusError, result.Status)
	assert.False(t, result.IsEventFlyer)
	assert.Contains(t, result.ErrorMessage, "Gemini API analysis failed")
	assert.Contains(t, result.ErrorMessage, "status 500")
	assert.Empty(t, result.RawResponse)
}

func TestFlyerAnalyzer_Analyze_MissingKey(t *testing.T) {
	model := new(mocks.MockImageAnalyzer)
	model.On("AnalyzeImage", mock.Anything, mock.Anything).Return("", domain.ErrMissingAPIKey)

	result := service.NewFlyerAnalyzer(model).Analyze(context.Background(), []byte("x"), "image/jpeg")

	assert.Equal(t, domain.AnalysisStatusError, result.Status)
	assert.Equal(t, "Google API key is not configured", result.ErrorMessage)
}

func TestFlyerAnalyzer_Analyze_UnparseableReply(t *testing.T) {
	model := new(mocks.MockImageAnalyzer)
	model.On("AnalyzeImage", mock.Anything, mock.Anything).Return(`{"is_event_flyer":`, nil)

	result := service.NewFlyerAnalyzer(model).Analyze(context.Background(), []byte("x"), "image/jpeg")

	assert.Equal(t, domain.AnalysisStatusParseError, result.Status)
	assert.Equal(t, `{"is_event_flyer":`, result.RawResponse)
}
