package storage

import (
	"context"
	"io"
)

// FileStorage abstracts where uploaded files live. The only uploads in
// this system are employee photos, but handlers never assume a local disk.
type FileStorage interface {
	// Upload writes the file and returns the stored path/key.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Open retrieves a stored file for streaming back to the client.
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file. Deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error

	// URL returns a client-reachable URL for the stored path.
	URL(path string) string
}
