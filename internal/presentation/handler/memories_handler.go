package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"memoria/internal/application/usecase"
	"memoria/internal/application/usecase/abstraction"
	"memoria/internal/domain/dto"
	"memoria/internal/presentation"
	"memoria/internal/presentation/middleware"
)

// MemoriesHandler serves the memory read and write endpoints. Reads are
// public with secret filtering; writes sit behind the admin gate.
type MemoriesHandler struct {
	memories abstraction.Memories
}

func NewMemoriesHandler(memories abstraction.Memories) *MemoriesHandler {
	return &MemoriesHandler{memories: memories}
}

func viewerOf(c echo.Context) usecase.Viewer {
	return usecase.Viewer{Authenticated: middleware.CurrentUser(c) != nil}
}

// HandleList handles GET /api/memories.
func (h *MemoriesHandler) HandleList(c echo.Context) error {
	memories, status, err := h.memories.List(c.Request().Context(), viewerOf(c))
	if err != nil {
		return c.JSON(status, dto.NewErrorResponse(err.Error()))
	}

	return c.JSON(http.StatusOK, memories)
}

// HandleFeatured handles GET /api/memories/featured.
func (h *MemoriesHandler) HandleFeatured(c echo.Context) error {
	memories, status, err := h.memories.Featured(c.Request().Context(), viewerOf(c))
	if err != nil {
		return c.JSON(status, dto.NewErrorResponse(err.Error()))
	}

	return c.JSON(http.StatusOK, memories)
}

// HandleByCategory handles GET /api/memories/category?type=. A missing
// type defaults to PHOTO.
func (h *MemoriesHandler) HandleByCategory(c echo.Context) error {
	category := c.QueryParam(presentation.CategoryQuery)
	if category == "" {
		category = "PHOTO"
	}

	memories, status, err := h.memories.ByCategory(c.Request().Context(), viewerOf(c), category)
	if err != nil {
		return c.JSON(status, dto.NewErrorResponse(err.Error()))
	}

	return c.JSON(http.StatusOK, memories)
}

// HandleGet handles GET /api/memories/:id.
func (h *MemoriesHandler) HandleGet(c echo.Context) error {
	memory, status, err := h.memories.Get(c.Request().Context(), viewerOf(c), c.Param(presentation.IDParam))
	if err != nil {
		return c.JSON(status, dto.NewErrorResponse(err.Error()))
	}

	return c.JSON(http.StatusOK, memory)
}

// HandleCreate handles POST /api/memories.
func (h *MemoriesHandler) HandleCreate(c echo.Context) error {
	var req dto.MemoryCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid input data"))
	}

	if details := req.Validate(); len(details) > 0 {
		return c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(details))
	}

	memory, status, err := h.memories.Create(c.Request().Context(), &req)
	if err != nil {
		return c.JSON(status, dto.NewErrorResponse(err.Error()))
	}

	return c.JSON(status, memory)
}

// HandleUpdate handles PUT and PATCH /api/memories/:id.
func (h *MemoriesHandler) HandleUpdate(c echo.Context) error {
	var req dto.MemoryUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid input data"))
	}

	if details := req.Validate(); len(details) > 0 {
		return c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(details))
	}

	memory, status, err := h.memories.Update(c.Request().Context(), c.Param(presentation.IDParam), &req)
	if err != nil {
		return c.JSON(status, dto.NewErrorResponse(err.Error()))
	}

	return c.JSON(status, memory)
}

// HandleDelete handles DELETE /api/memories/:id.
func (h *MemoriesHandler) HandleDelete(c echo.Context) error {
	status, err := h.memories.Delete(c.Request().Context(), c.Param(presentation.IDParam))
	if err != nil {
		return c.JSON(status, dto.NewErrorResponse(err.Error()))
	}

	return c.NoContent(status)
}
