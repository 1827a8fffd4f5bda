package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"memoria/internal/application/usecase/abstraction"
	"memoria/internal/domain/dto"
	"memoria/pkg/logger"
)

// UploadHandler accepts multipart media uploads for memories.
type UploadHandler struct {
	uploader abstraction.Uploader
}

func NewUploadHandler(uploader abstraction.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Handle handles POST /api/memories/upload.
func (h *UploadHandler) Handle(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("A file is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("multipart open failed", "err", err)

		return c.JSON(http.StatusInternalServerError, internalError())
	}
	defer file.Close()

	result, status, err := h.uploader.Upload(c.Request().Context(), fileHeader.Filename,
		fileHeader.Size, file)
	if err != nil {
		if status == http.StatusInternalServerError {
			return c.JSON(status, internalError())
		}

		return c.JSON(status, dto.NewErrorResponse(err.Error()))
	}

	return c.JSON(status, result)
}
