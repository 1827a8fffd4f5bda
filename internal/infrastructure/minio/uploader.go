package minio

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"

	"memoria/pkg/logger"
)

// Uploader stores media files in a MinIO bucket and returns public URLs.
type Uploader struct {
	minioClient *minio.Client
	cfg         *UploaderConfig
}

func NewUploader(minioClient *minio.Client, cfg *UploaderConfig) *Uploader {
	return &Uploader{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (u *Uploader) Save(ctx context.Context, objectName string, body io.Reader, size int64,
	contentType string,
) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	_, err := u.minioClient.PutObject(ctx, u.cfg.Bucket, objectName, body, size,
		minio.PutObjectOptions{
			ContentType: contentType,
		})
	if err != nil {
		logger.Error("minio put failed", "object", objectName, "err", err)

		return "", fmt.Errorf("save object %s: %w", objectName, err)
	}

	return fmt.Sprintf("%s/%s/%s", u.cfg.PublicURL, u.cfg.Bucket, objectName), nil
}
