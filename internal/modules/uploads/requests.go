package uploads

import (
	"fmt"
	"mime/multipart"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/nfrund/docchat/internal/domain"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// UploadFileRequest defines the DTO for the upload endpoint.
type UploadFileRequest struct {
	File *multipart.FileHeader `form:"file" validate:"required"`
}

// Response is the JSON body answered to non-htmx API clients.
type Response struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// UploadResponse is the DTO for a single upload.
type UploadResponse struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	MIMEType    string    `json:"mime_type"`
	Size        int64     `json:"size"`
	DownloadURL string    `json:"download_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewUploadResponse maps a domain.Upload to its DTO.
func NewUploadResponse(u *domain.Upload) *UploadResponse {
	return &UploadResponse{
		ID:          u.ID,
		Filename:    u.Filename,
		MIMEType:    u.MIMEType,
		Size:        u.Size,
		DownloadURL: fmt.Sprintf("%s/%s/download", uploadPath, u.ID),
		CreatedAt:   u.CreatedAt,
	}
}
