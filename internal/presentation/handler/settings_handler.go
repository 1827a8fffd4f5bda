package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"memoria/internal/application/usecase/abstraction"
	"memoria/internal/domain/dto"
)

// SettingsHandler serves the global configuration record.
type SettingsHandler struct {
	settings abstraction.Settings
}

func NewSettingsHandler(settings abstraction.Settings) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// HandleGet handles GET /api/settings, provisioning defaults on the
// first ever read.
func (h *SettingsHandler) HandleGet(c echo.Context) error {
	settings, status, err := h.settings.Get(c.Request().Context())
	if err != nil {
		return c.JSON(status, internalError())
	}

	return c.JSON(http.StatusOK, settings)
}

// HandleUpdate handles PUT /api/settings (admin).
func (h *SettingsHandler) HandleUpdate(c echo.Context) error {
	var req dto.SettingsUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid input data"))
	}

	if details := req.Validate(); len(details) > 0 {
		return c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(details))
	}

	settings, status, err := h.settings.Update(c.Request().Context(), &req)
	if err != nil {
		return c.JSON(status, internalError())
	}

	return c.JSON(status, settings)
}
