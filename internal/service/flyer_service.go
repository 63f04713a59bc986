package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"flyerscan/internal/config"
	"flyerscan/internal/domain"
	"flyerscan/internal/metrics"
	"flyerscan/internal/port"
)

// FlyerUploadInput is the DTO for flyer analysis requests.
type FlyerUploadInput struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// FlyerService runs the upload -> analysis -> venue resolution pipeline.
type FlyerService interface {
	AnalyzeUpload(ctx context.Context, input FlyerUploadInput) (*domain.FlyerAnalysisResponse, error)
}

type flyerService struct {
	analyzer FlyerAnalyzer
	resolver VenueResolver
	stager   port.UploadStager
	cfg      *config.UploadConfig
	metrics  *metrics.Metrics
}

// NewFlyerService creates a new FlyerService implementation.
func NewFlyerService(
	analyzer FlyerAnalyzer,
	resolver VenueResolver,
	stager port.UploadStager,
	cfg *config.UploadConfig,
	m *metrics.Metrics,
) FlyerService {
	return &flyerService{
		analyzer: analyzer,
		resolver: resolver,
		stager:   stager,
		cfg:      cfg,
		metrics:  m,
	}
}

func (s *flyerService) AnalyzeUpload(ctx context.Context, input FlyerUploadInput) (*domain.FlyerAnalysisResponse, error) {
	if !isImageType(input.ContentType) {
		return nil, domain.ErrNotAnImage
	}
	maxBytes := s.cfg.MaxBytes()
	if maxBytes > 0 && input.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	analysisID := uuid.New().String()

	body := input.Body
	if maxBytes > 0 {
		body = io.LimitReader(body, maxBytes+1)
	}
	staged, err := s.stager.Stage(ctx, body, uploadSuffix(input.FileName))
	if err != nil {
		log.Printf("flyerService.AnalyzeUpload: [%s] staging failed: %v", analysisID, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrStagingFailed, err)
	}
	defer func() {
		if err := s.stager.Remove(staged); err != nil {
			log.Printf("flyerService.AnalyzeUpload: [%s] cleanup failed: %v", analysisID, err)
		}
	}()

	if maxBytes > 0 && staged.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}
	if staged.Size == 0 {
		return nil, domain.ErrEmptyUpload
	}

	image, err := s.stager.Read(staged)
	if err != nil {
		return nil, fmt.Errorf("reading staged upload: %w", err)
	}
	mimeType := detectImageType(image, input.ContentType)

	log.Printf("flyerService.AnalyzeUpload: [%s] analyzing %s (%s, %d bytes)",
		analysisID, input.FileName, mimeType, staged.Size)

	resp := s.buildResponse(ctx, analysisID, s.analyzer.Analyze(ctx, image, mimeType))
	s.metrics.IncAnalysis(string(resp.Status))
	return resp, nil
}

func (s *flyerService) buildResponse(ctx context.Context, analysisID string, result *domain.FlyerAnalysisResult) *domain.FlyerAnalysisResponse {
	if result.Status != domain.AnalysisStatusSuccess {
		return &domain.FlyerAnalysisResponse{
			AnalysisID:    analysisID,
			IsEventFlyer:  false,
			Status:        domain.FlyerStatusGeminiError,
			RawGeminiData: result,
		}
	}

	confidence := result.Confidence
	if !result.IsEventFlyer {
		return &domain.FlyerAnalysisResponse{
			AnalysisID:    analysisID,
			IsEventFlyer:  false,
			Status:        domain.FlyerStatusNotEventFlyer,
			Confidence:    &confidence,
			RawGeminiData: result,
		}
	}

	// Multi-event flyers collapse to their first listed event.
	resp := &domain.FlyerAnalysisResponse{
		AnalysisID:    analysisID,
		IsEventFlyer:  true,
		EventTitle:    first(result.EventNames),
		EventDate:     first(result.Dates),
		EventVenue:    first(result.Venues),
		EventLocation: first(result.Locations),
		Status:        domain.FlyerStatusSuccess,
		Confidence:    &confidence,
		RawGeminiData: result,
	}

	if resp.EventVenue != nil && resp.EventLocation != nil {
		venue := s.resolver.Resolve(ctx, *resp.EventVenue, *resp.EventLocation)
		if venue == nil {
			log.Printf("flyerService.AnalyzeUpload: [%s] venue %q not resolved", analysisID, *resp.EventVenue)
		}
		resp.ApplyVenue(venue)
	}
	return resp
}

func first(items []string) *string {
	if len(items) == 0 {
		return nil
	}
	v := items[0]
	return &v
}

func isImageType(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/")
}

// detectImageType prefers the sniffed type of the staged bytes and falls back
// to the declared content type for formats the sniffer does not know.
func detectImageType(data []byte, declared string) string {
	if detected := http.DetectContentType(data); strings.HasPrefix(detected, "image/") {
		return detected
	}
	if mediaType, _, err := mime.ParseMediaType(declared); err == nil {
		return mediaType
	}
	return strings.ToLower(strings.TrimSpace(declared))
}

func uploadSuffix(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" || len(ext) > 6 {
		return ".jpg"
	}
	return ext
}
