package docs

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/docchat/internal/middleware"
	"github.com/nfrund/docchat/internal/rendering"
	"github.com/nfrund/docchat/internal/view"
	"github.com/nfrund/docchat/web/src/templates/layouts"
)

// Meta is the page metadata of the docs section.
var Meta = view.PageMeta{Title: "Docs"}

const (
	basePath   = "/docs"
	dialogPath = basePath + "/dialog"
)

// Handler serves the docs section.
type Handler struct {
	renderer rendering.Renderer
	surface  Surface
	appName  string
}

// NewHandler creates a new docs handler mounting surface in the upload dialog.
func NewHandler(renderer rendering.Renderer, surface Surface, appName string) *Handler {
	return &Handler{renderer: renderer, surface: surface, appName: appName}
}

// Page renders the empty-state prompt. A fresh render always starts closed.
func (h *Handler) Page(c echo.Context) error {
	page := layouts.Base(layouts.BaseProps{
		Meta:    Meta,
		AppName: h.appName,
		Lang:    view.Language(c),
		Flash:   view.GetFlashData(c),
	}, layouts.AppShell(basePath, Prompt(DialogClosed, h.surface)))

	return h.renderer.RenderPage(c, http.StatusOK, page)
}

// Dialog applies an event to the dialog state posted by the client and
// answers with the dialog region for the resulting state.
func (h *Handler) Dialog(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())

	state, err := ParseDialogState(c.FormValue(stateField))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	event, err := ParseDialogEvent(c.FormValue(eventField))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	next := state.Next(event)
	logger.Debug("Upload dialog transition",
		slog.String("from", string(state)),
		slog.String("event", string(event)),
		slog.String("to", string(next)),
	)

	return h.renderer.RenderPage(c, http.StatusOK, UploadDialog(next, h.surface))
}
