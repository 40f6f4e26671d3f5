package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	appmiddleware "github.com/nfrund/docchat/internal/middleware"
)

// setupErrorHandling installs an error handler that logs unhandled errors with
// a stack trace before delegating the response to echo's default handler.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		logger := appmiddleware.FromContext(c.Request().Context())

		var he *echo.HTTPError
		if errors.As(err, &he) {
			if he.Code >= http.StatusInternalServerError {
				logger.Error("HTTP error", slog.Int("status", he.Code), slog.String("error", err.Error()))
			} else {
				logger.Debug("HTTP error", slog.Int("status", he.Code), slog.String("error", err.Error()))
			}
		} else {
			logger.Error("Internal Server Error (Unhandled)",
				slog.String("error", err.Error()),
				slog.String("stack_trace", string(debug.Stack())),
			)
		}

		e.DefaultHTTPErrorHandler(err, c)
	}
}
