package port

import (
	"context"
	"io"
)

// StagedUpload references an upload held in transient storage for one request.
type StagedUpload struct {
	Path string
	Size int64
}

// UploadStager holds request uploads in transient storage.
type UploadStager interface {
	Stage(ctx context.Context, body io.Reader, suffix string) (*StagedUpload, error)
	Read(staged *StagedUpload) ([]byte, error)
	Remove(staged *StagedUpload) error
}
