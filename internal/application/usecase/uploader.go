package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"memoria/internal/domain/dto"
	blobRepository "memoria/internal/domain/repository/blob"
	"memoria/pkg/logger"
	"memoria/pkg/utils"
)

// MaxUploadSize is the hard limit on a single media file.
const MaxUploadSize = 10 * 1024 * 1024

const uploadPrefix = "memories"

// sniffLen matches what mimetype reads to classify a stream.
const sniffLen = 3072

// Uploader validates media files and hands them to the blob store under
// a generated unique name that keeps the original extension.
type Uploader struct {
	blobs blobRepository.Store
}

func NewUploader(blobs blobRepository.Store) *Uploader {
	return &Uploader{blobs: blobs}
}

func (u *Uploader) Upload(ctx context.Context, filename string, size int64,
	body io.Reader,
) (*dto.UploadResponse, int, error) {
	ext := utils.FileExtension(filename)
	if !utils.ExtensionAllowed(ext) {
		return nil, http.StatusBadRequest, fmt.Errorf("file type .%s not allowed, allowed types: %s",
			ext, strings.Join(utils.AllowedExtensions(), ", "))
	}

	if size > MaxUploadSize {
		return nil, http.StatusBadRequest, errors.New("file size cannot exceed 10MB")
	}
	if size <= 0 {
		return nil, http.StatusBadRequest, errors.New("empty file")
	}

	header := make([]byte, sniffLen)
	n, err := io.ReadFull(body, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		logger.Error("upload read failed", "err", err)

		return nil, http.StatusInternalServerError, errors.New("failed to read file")
	}
	contentType := mimetype.Detect(header[:n]).String()

	uniqueName := fmt.Sprintf("%s.%s", uuid.NewString(), ext)
	objectName := fmt.Sprintf("%s/%s", uploadPrefix, uniqueName)

	full := io.MultiReader(bytes.NewReader(header[:n]), body)
	url, err := u.blobs.Save(ctx, objectName, full, size, contentType)
	if err != nil {
		logger.Error("blob save failed", "object", objectName, "err", err)

		return nil, http.StatusInternalServerError, errors.New("failed to store file")
	}

	return &dto.UploadResponse{
		Filename:    uniqueName,
		URL:         url,
		Size:        size,
		ContentType: contentType,
	}, http.StatusCreated, nil
}
