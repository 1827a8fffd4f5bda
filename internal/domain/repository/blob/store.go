package blob

import (
	"context"
	"io"
)

// Store saves media files and returns a public URL for each.
type Store interface {
	Save(ctx context.Context, objectName string, body io.Reader, size int64,
		contentType string) (string, error)
}
