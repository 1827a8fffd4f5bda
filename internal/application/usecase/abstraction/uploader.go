package abstraction

import (
	"context"
	"io"

	"memoria/internal/domain/dto"
)

type Uploader interface {
	Upload(ctx context.Context, filename string, size int64, body io.Reader) (*dto.UploadResponse, int, error)
}
