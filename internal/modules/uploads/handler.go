package uploads

import (
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/docchat/internal/domain"
	"github.com/nfrund/docchat/internal/middleware"
	"github.com/nfrund/docchat/internal/rendering"
	"github.com/nfrund/docchat/internal/view"
)

const (
	uploadPath = "/uploads"
	// redirectPath is where plain form posts land after an upload.
	redirectPath = "/docs"
)

// Handler handles HTTP requests related to uploads.
type Handler struct {
	service  *Service
	renderer rendering.Renderer
}

// NewHandler creates a new Handler.
func NewHandler(service *Service, renderer rendering.Renderer) *Handler {
	return &Handler{service: service, renderer: renderer}
}

// statusFor maps service errors to HTTP status codes and client messages.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidUpload):
		return http.StatusBadRequest, "Please upload a .pdf"
	case errors.Is(err, domain.ErrFilenameTooLong):
		return http.StatusBadRequest, "Filename is too long"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "File is too large"
	case errors.Is(err, domain.ErrUnsupportedType):
		return http.StatusUnsupportedMediaType, "File type is not allowed"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Upload not found"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "You do not have permission to access this upload"
	default:
		return http.StatusInternalServerError, "Failed to process upload"
	}
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

func wantsJSON(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}

// respond answers an upload in the form the client asked for: a result
// fragment for htmx, a JSON body for API clients, and a flash message plus
// redirect for plain form posts.
func (h *Handler) respond(c echo.Context, status int, ok bool, message string) error {
	switch {
	case isHTMX(c):
		return h.renderer.RenderPage(c, status, Result(ok, message))
	case wantsJSON(c):
		if ok {
			return c.JSON(status, Response{OK: true, Message: message})
		}
		return c.JSON(status, Response{OK: false, Error: message})
	default:
		if ok {
			view.SetFlashSuccess(c, message)
		} else {
			view.SetFlashError(c, message)
		}
		return c.Redirect(http.StatusSeeOther, redirectPath)
	}
}

// Upload handles document uploads from a multipart form.
func (h *Handler) Upload(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)
	user := middleware.UserFromContext(c)

	var req UploadFileRequest
	if err := c.Bind(&req); err != nil {
		return h.respond(c, http.StatusBadRequest, false, "Invalid request format.")
	}
	if err := c.Validate(&req); err != nil {
		return h.respond(c, http.StatusBadRequest, false, "Please choose a file to upload")
	}

	upload, err := h.service.Ingest(ctx, user.Email, req.File)
	if err != nil {
		status, message := statusFor(err)
		if status >= http.StatusInternalServerError {
			logger.Error("Failed to ingest upload", slog.String("error", err.Error()))
		} else {
			logger.Info("Rejected upload", slog.String("filename", req.File.Filename), slog.String("reason", err.Error()))
		}
		return h.respond(c, status, false, message)
	}

	status := http.StatusOK
	if wantsJSON(c) {
		status = http.StatusCreated
	}
	return h.respond(c, status, true, fmt.Sprintf("Ingested %s", upload.Filename))
}

// List returns the caller's uploads.
func (h *Handler) List(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.UserFromContext(c)

	uploads, err := h.service.List(ctx, user.Email)
	if err != nil {
		middleware.FromContext(ctx).Error("Failed to list uploads", slog.String("owner", user.Email), slog.String("error", err.Error()))
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not retrieve uploads")
	}

	response := make([]*UploadResponse, len(uploads))
	for i, u := range uploads {
		response[i] = NewUploadResponse(u)
	}
	return c.JSON(http.StatusOK, response)
}

// Download streams an upload's content.
func (h *Handler) Download(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)
	user := middleware.UserFromContext(c)
	id := c.Param("id")

	upload, err := h.service.Get(ctx, user.Email, id)
	if err != nil {
		status, message := statusFor(err)
		logger.Warn("Failed to get upload for download", slog.String("upload_id", id), slog.String("error", err.Error()))
		return echo.NewHTTPError(status, message)
	}

	content, err := h.service.Open(ctx, upload)
	if err != nil {
		logger.Error("Failed to open upload content", slog.String("path", upload.StoragePath), slog.String("error", err.Error()))
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not retrieve file")
	}
	defer content.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, mime.FormatMediaType("attachment", map[string]string{"filename": upload.Filename}))
	return c.Stream(http.StatusOK, upload.MIMEType, content)
}

// Delete removes an upload.
func (h *Handler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.UserFromContext(c)
	id := c.Param("id")

	if err := h.service.Delete(ctx, user.Email, id); err != nil {
		status, message := statusFor(err)
		if status >= http.StatusInternalServerError {
			middleware.FromContext(ctx).Error("Failed to delete upload", slog.String("upload_id", id), slog.String("error", err.Error()))
		}
		return echo.NewHTTPError(status, message)
	}
	return c.NoContent(http.StatusNoContent)
}
