package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/docchat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingIdentity struct{}

func (failingIdentity) Identity(ctx context.Context) (domain.UserIdentity, error) {
	return domain.UserIdentity{}, errors.New("no identity")
}

func TestIdentity(t *testing.T) {
	want := domain.UserIdentity{Name: "shadcn", Email: "m@example.com", AvatarURL: "/avatars/shadcn.svg"}

	t.Run("places identity in context", func(t *testing.T) {
		e := echo.New()
		var got domain.UserIdentity
		e.GET("/", func(c echo.Context) error {
			got = UserFromContext(c)
			return c.NoContent(http.StatusOK)
		}, Identity(domain.StaticIdentity{User: want}))

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, want, got)
	})

	t.Run("provider failure is unauthorized", func(t *testing.T) {
		e := echo.New()
		e.GET("/", func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		}, Identity(failingIdentity{}))

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing identity yields zero value", func(t *testing.T) {
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		assert.Equal(t, domain.UserIdentity{}, UserFromContext(c))
	})
}

func TestLogger_InjectsRequestScopedLogger(t *testing.T) {
	e := echo.New()
	e.Use(echomw.RequestID())
	e.Use(Logger)

	var scoped bool
	e.GET("/", func(c echo.Context) error {
		scoped = FromContext(c.Request().Context()) != slog.Default()
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	assert.True(t, scoped, "handlers should see a request-scoped logger")
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestClientHints(t *testing.T) {
	e := echo.New()
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, ClientHints)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "Sec-CH-Viewport-Width", rec.Header().Get("Accept-CH"))
}

func TestRateLimiter(t *testing.T) {
	e := echo.New()
	e.POST("/uploads", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}, RateLimiter(3))

	clientIP := "192.0.2.2:1234"
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/uploads", nil)
		req.RemoteAddr = clientIP
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, "request %d should be allowed", i+1)
	}

	req := httptest.NewRequest(http.MethodPost, "/uploads", nil)
	req.RemoteAddr = clientIP
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Too many requests")

	other := httptest.NewRequest(http.MethodPost, "/uploads", nil)
	other.RemoteAddr = "192.0.2.9:1234"
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code, "a different client has its own budget")
}
