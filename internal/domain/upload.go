package domain

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// validatorInstance is a package-level validator instance.
// Using a single instance is more efficient as it caches struct information.
var validatorInstance = validator.New()

// init registers custom validation functions with the validator instance.
func init() {
	// Register the safepath validator to prevent directory traversal attacks.
	_ = validatorInstance.RegisterValidation("safepath", validateSafePath)
}

// validateSafePath ensures the path doesn't contain any directory traversal attempts.
func validateSafePath(fl validator.FieldLevel) bool {
	return IsSafePath(fl.Field().String())
}

// IsSafePath reports whether path is a clean, relative path without traversal segments.
func IsSafePath(path string) bool {
	if strings.Contains(path, "..") ||
		strings.Contains(path, "~") ||
		strings.HasPrefix(path, "/") ||
		strings.Contains(path, "\\") {
		return false
	}

	// Catches more subtle issues like "uploads/./file".
	return path == filepath.Clean(path)
}

// MaxFilenameLength is the longest filename, in characters, an Upload accepts.
// It mirrors the max tag on Upload.Filename.
const MaxFilenameLength = 255

// Upload is the metadata of a document ingested through the upload surface.
// The content itself lives in a storage backend under StoragePath.
type Upload struct {
	ID          string    `json:"id" validate:"required,uuid"`
	Owner       string    `json:"owner" validate:"required,email"`
	Filename    string    `json:"filename" validate:"required,min=1,max=255"`
	MIMEType    string    `json:"mime_type" validate:"required"`
	Size        int64     `json:"size" validate:"gte=0"`
	StoragePath string    `json:"storage_path" validate:"required,safepath"`
	CreatedAt   time.Time `json:"created_at"`
}

// Validate runs validation checks on the Upload using the defined tags.
func (u *Upload) Validate() error {
	return validatorInstance.Struct(u)
}

// UploadRepository stores upload metadata.
type UploadRepository interface {
	// Create inserts a new metadata record.
	Create(ctx context.Context, upload *Upload) (*Upload, error)

	// FindByID returns ErrNotFound when no record has the given ID.
	FindByID(ctx context.Context, id string) (*Upload, error)

	// FindByOwner returns the owner's uploads, newest first.
	FindByOwner(ctx context.Context, owner string) ([]*Upload, error)

	// DeleteByID returns ErrNotFound when no record has the given ID.
	DeleteByID(ctx context.Context, id string) error
}
