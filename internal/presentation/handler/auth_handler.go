package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"memoria/internal/application/usecase/abstraction"
	"memoria/internal/domain/dto"
	"memoria/internal/presentation/middleware"
)

// AuthHandler serves login, logout, status, the bootstrap admin path and
// the secret-reveal operation.
type AuthHandler struct {
	auth       abstraction.Auth
	memories   abstraction.Memories
	cookieName string
	sessionTTL time.Duration
}

func NewAuthHandler(auth abstraction.Auth, memories abstraction.Memories,
	cookieName string, sessionTTL time.Duration,
) *AuthHandler {
	return &AuthHandler{
		auth:       auth,
		memories:   memories,
		cookieName: cookieName,
		sessionTTL: sessionTTL,
	}
}

// HandleLogin handles POST /api/auth/login.
func (h *AuthHandler) HandleLogin(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid input data"))
	}

	if details := req.Validate(); len(details) > 0 {
		return c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(details))
	}

	token, profile, status, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return c.JSON(status, dto.NewErrorResponse(err.Error()))
	}

	c.SetCookie(h.sessionCookie(token, h.sessionTTL))

	return c.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Message: "Login successful",
		User:    *profile,
	})
}

// HandleLogout handles POST /api/auth/logout.
func (h *AuthHandler) HandleLogout(c echo.Context) error {
	token := middleware.SessionToken(c)
	if token != "" {
		if err := h.auth.Logout(c.Request().Context(), token); err != nil {
			return c.JSON(http.StatusInternalServerError, internalError())
		}
	}

	// Expire the cookie regardless.
	c.SetCookie(h.sessionCookie("", -time.Hour))

	return c.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Logout successful",
	})
}

// HandleStatus handles GET /api/auth/status. The authentication check
// itself happens in middleware; this reports the admin state.
func (h *AuthHandler) HandleStatus(c echo.Context) error {
	user := middleware.CurrentUser(c)

	if !user.IsAdmin() {
		return c.JSON(http.StatusForbidden, dto.StatusResponse{
			Success:       false,
			Authenticated: true,
			Admin:         false,
			Error:         "Admin privileges required",
		})
	}

	profile := dto.NewUserProfile(user)

	return c.JSON(http.StatusOK, dto.StatusResponse{
		Success:       true,
		Authenticated: true,
		Admin:         true,
		User:          &profile,
	})
}

// HandleCreateAdmin handles POST /api/auth/create-admin. Open by design
// as the development bootstrap path; production deployments gate or
// remove it.
func (h *AuthHandler) HandleCreateAdmin(c echo.Context) error {
	var req dto.CreateAdminRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid input data"))
	}

	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Username and password are required"))
	}

	userID, status, err := h.auth.CreateAdmin(c.Request().Context(), req.Username, req.Password, req.Email)
	if err != nil {
		return c.JSON(status, dto.NewErrorResponse(err.Error()))
	}

	return c.JSON(status, dto.CreateAdminResponse{
		Success: true,
		Message: "Admin user created successfully",
		UserID:  userID,
	})
}

// HandleSecretReveal handles POST /api/auth/secret-reveal. The key
// field is read but not verified; see Memories.RevealSecrets.
func (h *AuthHandler) HandleSecretReveal(c echo.Context) error {
	var req struct {
		Key string `json:"key"`
	}
	_ = c.Bind(&req)

	memories, status, err := h.memories.RevealSecrets(c.Request().Context(), req.Key)
	if err != nil {
		return c.JSON(status, dto.NewErrorResponse(err.Error()))
	}

	return c.JSON(http.StatusOK, dto.SecretRevealResponse{
		Success:  true,
		Memories: memories,
	})
}

func (h *AuthHandler) sessionCookie(token string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
