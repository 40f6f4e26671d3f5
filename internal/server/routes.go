package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// homePath is where the root URL sends visitors.
const homePath = "/chat"

// RegisterRoutes sets up the routes that belong to no module.
func (s *Server) RegisterRoutes() {
	s.E.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, homePath)
	})

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
