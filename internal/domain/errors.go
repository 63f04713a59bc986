package domain

import "errors"

var (
	ErrNotAnImage           = errors.New("file must be an image")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrEmptyUpload          = errors.New("uploaded file is empty")
	ErrMissingAPIKey        = errors.New("google API key is not configured")
	ErrUnsupportedImageType = errors.New("unsupported image type for analysis")
	ErrVenueNameRequired    = errors.New("venue name is required")
	ErrStagingFailed        = errors.New("failed to stage upload")
)
