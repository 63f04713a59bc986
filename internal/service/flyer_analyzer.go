package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"flyerscan/internal/domain"
	"flyerscan/internal/port"
)

// FlyerAnalyzer extracts structured event data from a flyer image.
type FlyerAnalyzer interface {
	// Analyze never fails; problems are reported through the result's status.
	Analyze(ctx context.Context, image []byte, mimeType string) *domain.FlyerAnalysisResult
}

type flyerAnalyzer struct {
	model port.ImageAnalyzer
}

// NewFlyerAnalyzer creates a FlyerAnalyzer backed by a vision/language model.
func NewFlyerAnalyzer(model port.ImageAnalyzer) FlyerAnalyzer {
	return &flyerAnalyzer{model: model}
}

func (a *flyerAnalyzer) Analyze(ctx context.Context, image []byte, mimeType string) *domain.FlyerAnalysisResult {
	raw, err := a.model.AnalyzeImage(ctx, port.ImageInput{
		Bytes:    image,
		MIMEType: mimeType,
		Prompt:   BuildFlyerPrompt(),
	})
	if err != nil {
		msg := fmt.Sprintf("Gemini API analysis failed: %v", err)
		if errors.Is(err, domain.ErrMissingAPIKey) {
			msg = "Google API key is not configured"
		}
		log.Printf("flyerAnalyzer.Analyze: %s", msg)
		return &domain.FlyerAnalysisResult{
			Status:       domain.AnalysisStatusError,
			ErrorMessage: msg,
		}
	}

	result := ParseFlyerReply(raw)
	if result.Status == domain.AnalysisStatusParseError {
		log.Printf("flyerAnalyzer.Analyze: %s", result.ErrorMessage)
	}
	return result
}

// flyerReply is the JSON object the prompt asks the model for.
type flyerReply struct {
	IsEventFlyer bool     `json:"is_event_flyer"`
	Confidence   float64  `json:"confidence"`
	EventNames   []string `json:"event_names"`
	Dates        []string `json:"dates"`
	Venues       []string `json:"venues"`
	Locations    []string `json:"locations"`
	// Older prompts used the singular key.
	Location []string `json:"location"`
}

// ParseFlyerReply decodes a raw model reply. The raw text is kept on the
// result whether or not decoding succeeds.
func ParseFlyerReply(raw string) *domain.FlyerAnalysisResult {
	payload := StripCodeFence(raw)

	var reply flyerReply
	err := json.Unmarshal([]byte(payload), &reply)
	if err == nil && !strings.HasPrefix(payload, "{") {
		err = errors.New("reply is not a JSON object")
	}
	if err != nil {
		return &domain.FlyerAnalysisResult{
			Status:       domain.AnalysisStatusParseError,
			ErrorMessage: fmt.Sprintf("Failed to parse JSON response: %v", err),
			RawResponse:  raw,
		}
	}

	locations := reply.Locations
	if len(locations) == 0 {
		locations = reply.Location
	}

	return &domain.FlyerAnalysisResult{
		IsEventFlyer: reply.IsEventFlyer,
		Confidence:   clamp01(reply.Confidence),
		EventNames:   cleanList(reply.EventNames),
		Dates:        cleanList(reply.Dates),
		Venues:       cleanList(reply.Venues),
		Locations:    cleanList(locations),
		Status:       domain.AnalysisStatusSuccess,
		RawResponse:  raw,
	}
}

const fence = "```"

// StripCodeFence returns the body of the first markdown code block in text,
// or the trimmed text itself when there is none. An info string such as
// "json" after the opening fence is dropped.
func StripCodeFence(text string) string {
	open := strings.Index(text, fence)
	if open < 0 {
		return strings.TrimSpace(text)
	}
	body := text[open+len(fence):]

	if nl := strings.IndexByte(body, '\n'); nl >= 0 && isInfoString(body[:nl]) {
		body = body[nl+1:]
	} else if nl < 0 && strings.HasPrefix(body, "json") {
		body = body[len("json"):]
	}

	if end := strings.Index(body, fence); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}

func isInfoString(s string) bool {
	s = strings.TrimSpace(s)
	return !strings.ContainsAny(s, "{}[]\"")
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func clamp01(f float64) float64 {
	switch {
	case f < 0 || math.IsNaN(f):
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
