package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flyerscan/internal/service"
)

// FlyerHandler handles flyer analysis endpoints.
type FlyerHandler struct {
	flyerService service.FlyerService
}

// NewFlyerHandler creates a new FlyerHandler.
func NewFlyerHandler(flyerService service.FlyerService) *FlyerHandler {
	return &FlyerHandler{flyerService: flyerService}
}

// Analyze handles POST /analyze-flyer
// @Summary Analyze an event flyer
// @Description Extract event data from a flyer image and resolve its venue address and geocode
// @Tags flyers
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Flyer image"
// @Success 200 {object} domain.FlyerAnalysisResponse "Analysis result"
// @Failure 400 {object} ErrorResponseBody "Missing file or not an image"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 500 {object} ErrorResponseBody "Analysis failed"
// @Router /analyze-flyer [post]
func (h *FlyerHandler) Analyze(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	resp, err := h.flyerService.AnalyzeUpload(c.Request.Context(), service.FlyerUploadInput{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, resp)
}
