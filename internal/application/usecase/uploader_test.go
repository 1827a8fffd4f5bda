package usecase

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func pngPayload(size int) []byte {
	data := make([]byte, size)
	copy(data, pngHeader)

	return data
}

func TestUploadRejectsDisallowedExtension(t *testing.T) {
	t.Parallel()

	uploader := NewUploader(&fakeBlobStore{})

	_, status, err := uploader.Upload(context.Background(), "x.exe", 100, bytes.NewReader(make([]byte, 100)))

	assert.Equal(t, http.StatusBadRequest, status)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".exe")
	assert.Contains(t, err.Error(), "jpeg, jpg, mp3, mp4, png, wav, webm")
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	t.Parallel()

	uploader := NewUploader(&fakeBlobStore{})

	_, status, err := uploader.Upload(context.Background(), "big.png", 11*1024*1024, bytes.NewReader(nil))

	assert.Equal(t, http.StatusBadRequest, status)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "10MB")
}

func TestUploadRejectsEmptyFile(t *testing.T) {
	t.Parallel()

	uploader := NewUploader(&fakeBlobStore{})

	_, status, err := uploader.Upload(context.Background(), "empty.png", 0, bytes.NewReader(nil))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Error(t, err)
}

func TestUploadStoresFileUnderUniqueName(t *testing.T) {
	t.Parallel()

	blobs := &fakeBlobStore{}
	uploader := NewUploader(blobs)

	payload := pngPayload(9 * 1024 * 1024)
	result, status, err := uploader.Upload(context.Background(), "holiday.PNG", int64(len(payload)),
		bytes.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)

	// Generated name keeps the (lowercased) extension, drops the
	// original base name.
	assert.True(t, strings.HasSuffix(result.Filename, ".png"))
	assert.NotContains(t, result.Filename, "holiday")
	assert.Equal(t, int64(len(payload)), result.Size)
	assert.Equal(t, "image/png", result.ContentType)
	assert.Contains(t, result.URL, result.Filename)

	require.Len(t, blobs.saved, 1)
	saved := blobs.saved[0]
	assert.Equal(t, "memories/"+result.Filename, saved.objectName)
	assert.Equal(t, len(payload), len(saved.data))
	assert.Equal(t, payload[:16], saved.data[:16])
}

func TestUploadDistinctNamesAcrossCalls(t *testing.T) {
	t.Parallel()

	blobs := &fakeBlobStore{}
	uploader := NewUploader(blobs)

	names := map[string]struct{}{}
	for i := 0; i < 10; i++ {
		payload := pngPayload(64)
		result, _, err := uploader.Upload(context.Background(), "same.png", int64(len(payload)),
			bytes.NewReader(payload))
		require.NoError(t, err)
		names[result.Filename] = struct{}{}
	}

	assert.Len(t, names, 10)
}
