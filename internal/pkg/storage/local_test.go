package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/storage")
	require.NoError(t, err)
	return s
}

func TestLocalStorageUploadAndOpen(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	path, err := s.Upload(ctx, strings.NewReader("photo bytes"), "photos/1/avatar.jpg", "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "photos/1/avatar.jpg", path)

	f, err := s.Open(ctx, path)
	require.NoError(t, err)
	defer f.Close()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "photo bytes", string(data))
}

func TestLocalStorageRejectsTraversal(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.Upload(ctx, strings.NewReader("x"), "../outside.txt", "text/plain")
	assert.Error(t, err)

	_, err = s.Open(ctx, "../../etc/passwd")
	assert.Error(t, err)
}

func TestLocalStorageDeleteMissingFile(t *testing.T) {
	s := newTestStorage(t)

	// Deleting a file that never existed is not an error.
	assert.NoError(t, s.Delete(context.Background(), "photos/1/gone.jpg"))
}

func TestLocalStorageURL(t *testing.T) {
	s := newTestStorage(t)

	assert.Equal(t, "http://localhost:8080/storage/photos/1/avatar.jpg", s.URL("photos/1/avatar.jpg"))
}
