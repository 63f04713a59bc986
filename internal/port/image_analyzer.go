package port

import "context"

// ImageInput carries an image and the instruction sent alongside it.
type ImageInput struct {
	Bytes    []byte
	MIMEType string
	Prompt   string
}

// ImageAnalyzer abstracts a vision/language model that answers a prompt about an image.
// It returns the model's free-text reply.
type ImageAnalyzer interface {
	AnalyzeImage(ctx context.Context, input ImageInput) (string, error)
}
