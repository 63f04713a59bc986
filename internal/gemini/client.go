package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"flyerscan/internal/config"
	"flyerscan/internal/domain"
	"flyerscan/internal/metrics"
	"flyerscan/internal/port"
)

const (
	apiBaseURL   = "https://generativelanguage.googleapis.com/v1beta/models"
	defaultModel = "gemini-1.5-flash"
	serviceName  = "gemini"
)

// Client implements port.ImageAnalyzer using Google's Gemini generateContent API.
type Client struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
	metrics  *metrics.Metrics
}

// NewClient creates a Gemini client. A custom endpoint in cfg replaces the public API URL.
func NewClient(cfg *config.GeminiConfig, m *metrics.Metrics) *Client {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("%s/%s:generateContent", apiBaseURL, model)
	}
	return &Client{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		metrics:  m,
	}
}

// Model returns the model name requests are sent to.
func (c *Client) Model() string {
	return c.model
}

func (c *Client) AnalyzeImage(ctx context.Context, input port.ImageInput) (string, error) {
	if c.apiKey == "" {
		return "", domain.ErrMissingAPIKey
	}
	if !domain.SupportedImageTypes[input.MIMEType] {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedImageType, input.MIMEType)
	}

	start := time.Now()
	text, err := c.generate(ctx, input)
	c.metrics.ObserveUpstream(serviceName, "generate_content", outcomeOf(err), time.Since(start))
	return text, err
}

func (c *Client) generate(ctx context.Context, input port.ImageInput) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role": "user",
				"parts": []map[string]interface{}{
					{
						"inline_data": map[string]interface{}{
							"mime_type": input.MIMEType,
							"data":      base64.StdEncoding.EncodeToString(input.Bytes),
						},
					},
					{
						"text": input.Prompt,
					},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
			"maxOutputTokens":  4096,
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling gemini API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		baseErr := fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, truncate(string(respBody), 500))
		if resp.StatusCode == http.StatusTooManyRequests {
			retryAfter := ParseRetryAfterHeader(resp.Header.Get("Retry-After"))
			log.Printf("gemini.AnalyzeImage: rate limited by upstream (model %s)", c.model)
			return "", NewRateLimitError(serviceName, baseErr, retryAfter)
		}
		return "", baseErr
	}

	return extractText(respBody)
}

// generateContentResponse models the Gemini API response.
type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

func extractText(body []byte) (string, error) {
	var resp generateContentResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}

	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("request blocked by API: %s", resp.PromptFeedback.BlockReason)
		}
		return "", fmt.Errorf("empty response from API: no candidates")
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		text += part.Text
	}
	if text == "" {
		return "", fmt.Errorf("empty response from API: no text parts")
	}
	return text, nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case IsRateLimit(err):
		return metrics.OutcomeRateLimited
	default:
		return metrics.OutcomeError
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
