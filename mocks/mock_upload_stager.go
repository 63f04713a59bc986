package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"flyerscan/internal/port"
)

// MockUploadStager is a mock implementation of port.UploadStager.
type MockUploadStager struct {
	mock.Mock
}

func (m *MockUploadStager) Stage(ctx context.Context, body io.Reader, suffix string) (*port.StagedUpload, error) {
	args := m.Called(ctx, body, suffix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.StagedUpload), args.Error(1)
}

func (m *MockUploadStager) Read(staged *port.StagedUpload) ([]byte, error) {
	args := m.Called(staged)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockUploadStager) Remove(staged *port.StagedUpload) error {
	args := m.Called(staged)
	return args.Error(0)
}
