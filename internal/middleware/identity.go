package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/docchat/internal/domain"
)

// UserContextKey is the echo context key holding the request's domain.UserIdentity.
const UserContextKey = "user"

// Identity resolves the current user through provider and stores it in the
// echo context for downstream handlers and layouts.
func Identity(provider domain.IdentityProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := provider.Identity(c.Request().Context())
			if err != nil {
				FromContext(c.Request().Context()).Error("Failed to resolve user identity", slog.String("error", err.Error()))
				return echo.NewHTTPError(http.StatusUnauthorized, "Unable to resolve user identity")
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// UserFromContext returns the identity placed by the Identity middleware.
// The zero identity is returned when none is present; callers render it as-is.
func UserFromContext(c echo.Context) domain.UserIdentity {
	user, _ := c.Get(UserContextKey).(domain.UserIdentity)
	return user
}

// ClientHints advertises the client hints the layouts consume.
func ClientHints(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Accept-CH", "Sec-CH-Viewport-Width")
		c.Response().Header().Add(echo.HeaderVary, "Sec-CH-Viewport-Width")
		return next(c)
	}
}
