package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ecoquest/ecoquest-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// UserContextKey is where RequireAuth stores the resolved user.
const UserContextKey = "user"

type AuthMiddleware struct {
	auth service.AuthService
}

func NewAuthMiddleware(auth service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authz := c.Request().Header.Get("Authorization")
		if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		}
		tokenStr := strings.TrimPrefix(authz, "Bearer ")
		user, err := m.auth.ResolveToken(c.Request().Context(), tokenStr)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "token_expired"})
			}
			if errors.Is(err, service.ErrInvalidToken) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid_token"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal_error"})
		}
		c.Set(UserContextKey, user)
		return next(c)
	}
}
