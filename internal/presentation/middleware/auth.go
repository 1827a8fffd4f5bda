package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"memoria/internal/application/usecase/abstraction"
	"memoria/internal/domain/dto"
	"memoria/internal/domain/model"
	"memoria/internal/presentation"
)

// SessionAuth resolves the session cookie into a user and gates
// endpoints on authentication and admin privilege.
type SessionAuth struct {
	auth       abstraction.Auth
	cookieName string
}

func NewSessionAuth(auth abstraction.Auth, cookieName string) *SessionAuth {
	return &SessionAuth{
		auth:       auth,
		cookieName: cookieName,
	}
}

// LoadUser attaches the session's user to the request context when a
// valid cookie is present. Requests without one proceed anonymously.
func (s *SessionAuth) LoadUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(s.cookieName)
		if err != nil || cookie.Value == "" {
			return next(c)
		}

		user, err := s.auth.ResolveSession(c.Request().Context(), cookie.Value)
		if err != nil {
			// Stale cookie; treat the caller as anonymous.
			return next(c)
		}

		c.Set(presentation.KeyUser, user)
		c.Set(presentation.KeyToken, cookie.Value)

		return next(c)
	}
}

// RequireAuth rejects requests without an authenticated session.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentUser(c) == nil {
			return c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		}

		return next(c)
	}
}

// RequireAdmin rejects unauthenticated requests with 401 and
// authenticated but unprivileged ones with 403.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := CurrentUser(c)
		if user == nil {
			return c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		}
		if !user.IsAdmin() {
			return c.JSON(http.StatusForbidden, dto.NewErrorResponse("Admin privileges required"))
		}

		return next(c)
	}
}

// CurrentUser returns the session user, nil for anonymous callers.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(presentation.KeyUser).(*model.User)

	return user
}

// SessionToken returns the caller's session token, "" when anonymous.
func SessionToken(c echo.Context) string {
	token, _ := c.Get(presentation.KeyToken).(string)

	return token
}
