package tempfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"flyerscan/internal/config"
	"flyerscan/internal/port"
)

const filePattern = "flyer-*"

type stager struct {
	dir string
}

// NewStager creates a port.UploadStager backed by uniquely named files in
// cfg.TempDir, or the OS temp directory when it is empty.
func NewStager(cfg *config.UploadConfig) (port.UploadStager, error) {
	dir := cfg.TempDir
	if dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating upload temp dir: %w", err)
		}
	}
	return &stager{dir: dir}, nil
}

func (s *stager) Stage(ctx context.Context, body io.Reader, suffix string) (*port.StagedUpload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.CreateTemp(s.dir, filePattern+suffix)
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}

	n, copyErr := io.Copy(f, body)
	closeErr := f.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		_ = os.Remove(f.Name())
		return nil, fmt.Errorf("writing temp file: %w", err)
	}

	return &port.StagedUpload{Path: f.Name(), Size: n}, nil
}

func (s *stager) Read(staged *port.StagedUpload) ([]byte, error) {
	data, err := os.ReadFile(staged.Path)
	if err != nil {
		return nil, fmt.Errorf("reading staged upload: %w", err)
	}
	return data, nil
}

func (s *stager) Remove(staged *port.StagedUpload) error {
	if err := os.Remove(staged.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing staged upload: %w", err)
	}
	return nil
}
