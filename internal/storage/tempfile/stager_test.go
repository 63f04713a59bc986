package tempfile_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flyerscan/internal/config"
	"flyerscan/internal/storage/tempfile"
)

func TestStager_StageReadRemove(t *testing.T) {
	dir := t.TempDir()
	s, err := tempfile.NewStager(&config.UploadConfig{TempDir: dir})
	require.NoError(t, err)

	staged, err := s.Stage(context.Background(), strings.NewReader("flyer bytes"), ".png")
	require.NoError(t, err)
	assert.Equal(t, int64(len("flyer bytes")), staged.Size)
	assert.Equal(t, dir, filepath.Dir(staged.Path))
	assert.True(t, strings.HasSuffix(staged.Path, ".png"))

	data, err := s.Read(staged)
	require.NoError(t, err)
	assert.Equal(t, "flyer bytes", string(data))

	require.NoError(t, s.Remove(staged))
	_, err = os.Stat(staged.Path)
	assert.True(t, os.IsNotExist(err))

	// A second remove is a no-op.
	assert.NoError(t, s.Remove(staged))
}

func TestStager_UniquePaths(t *testing.T) {
	s, err := tempfile.NewStager(&config.UploadConfig{TempDir: t.TempDir()})
	require.NoError(t, err)

	a, err := s.Stage(context.Background(), strings.NewReader("a"), ".jpg")
	require.NoError(t, err)
	b, err := s.Stage(context.Background(), strings.NewReader("b"), ".jpg")
	require.NoError(t, err)

	assert.NotEqual(t, a.Path, b.Path)
}

func TestStager_CreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := tempfile.NewStager(&config.UploadConfig{TempDir: dir})
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestStager_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	s, err := tempfile.NewStager(&config.UploadConfig{TempDir: dir})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.Stage(ctx, strings.NewReader("x"), ".jpg")
	assert.ErrorIs(t, err, context.Canceled)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, os.ErrClosed }

func TestStager_CopyFailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	s, err := tempfile.NewStager(&config.UploadConfig{TempDir: dir})
	require.NoError(t, err)

	_, err = s.Stage(context.Background(), failingReader{}, ".jpg")
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
