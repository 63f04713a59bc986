package handler

// Swagger type definitions for API documentation.

// ErrorResponseBody represents an error response.
type ErrorResponseBody struct {
	Success bool     `json:"success" example:"false"`
	Error   APIError `json:"error"`
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message" example:"Flyer Analysis API is running"`
}
