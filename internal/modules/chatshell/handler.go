package chatshell

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/docchat/internal/middleware"
	"github.com/nfrund/docchat/internal/rendering"
	"github.com/nfrund/docchat/internal/view"
	"github.com/nfrund/docchat/web/src/templates/layouts"
)

// Meta is the page metadata of the chat section.
var Meta = view.PageMeta{Title: "Chat"}

const (
	basePath    = "/chat"
	unreadsPath = basePath + "/unreads"
)

// Handler serves the chat section.
type Handler struct {
	renderer rendering.Renderer
	appName  string
}

// NewHandler creates a new chat shell handler.
func NewHandler(renderer rendering.Renderer, appName string) *Handler {
	return &Handler{renderer: renderer, appName: appName}
}

// Page renders the chat layout around the section's home content.
func (h *Handler) Page(c echo.Context) error {
	props := LayoutProps{
		User:     middleware.UserFromContext(c),
		Unreads:  UnreadsProps{Checked: loadUnreads(c), ChangeURL: unreadsPath},
		Viewport: ViewportFromRequest(c.Request()),
	}

	page := layouts.Base(layouts.BaseProps{
		Meta:    Meta,
		AppName: h.appName,
		Lang:    view.Language(c),
		Flash:   view.GetFlashData(c),
	}, layouts.AppShell(basePath, Layout(props, Home())))

	return h.renderer.RenderPage(c, http.StatusOK, page)
}

// ToggleUnreads is the change-event endpoint of the "Unreads" switch. It
// stores the requested state and answers with the re-rendered switch.
func (h *Handler) ToggleUnreads(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())

	checked, err := strconv.ParseBool(c.FormValue(UnreadsField))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreads must be true or false")
	}

	if err := saveUnreads(c, checked); err != nil {
		logger.Error("Failed to persist unreads filter", slog.String("error", err.Error()))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save preference")
	}

	logger.Debug("Unreads filter changed", slog.Bool("checked", checked))
	c.Response().Header().Set("HX-Trigger", UnreadsChangedEvent)
	return h.renderer.RenderPage(c, http.StatusOK, UnreadsSwitch(UnreadsProps{Checked: checked, ChangeURL: unreadsPath}))
}
