package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/nfrund/docchat/internal/domain"
	"github.com/nfrund/docchat/internal/middleware"
	"github.com/nfrund/docchat/internal/pubsub"
	"github.com/nfrund/docchat/internal/storage"
)

// DocumentExt is the only accepted file extension.
const DocumentExt = ".pdf"

// Service stores uploaded documents and their metadata.
type Service struct {
	store            storage.Store
	repo             domain.UploadRepository
	publisher        pubsub.Publisher
	maxFileSize      int64
	allowedMimeTypes map[string]bool
}

// NewService creates a new Service. A maxFileSize of 0 disables the size
// check and an empty allowedMimeTypes accepts any type.
func NewService(store storage.Store, repo domain.UploadRepository, publisher pubsub.Publisher, maxFileSize int64, allowedMimeTypes []string) *Service {
	mimeTypesMap := make(map[string]bool)
	for _, mimeType := range allowedMimeTypes {
		mimeTypesMap[strings.TrimSpace(mimeType)] = true
	}

	return &Service{
		store:            store,
		repo:             repo,
		publisher:        publisher,
		maxFileSize:      maxFileSize,
		allowedMimeTypes: mimeTypesMap,
	}
}

// StoragePath is where an upload's content lives.
func StoragePath(owner, id string) string {
	return path.Join("uploads", owner, id+DocumentExt)
}

// Ingest validates fh, stores its content for owner and records the metadata.
func (s *Service) Ingest(ctx context.Context, owner string, fh *multipart.FileHeader) (*domain.Upload, error) {
	filename := filepath.Base(fh.Filename)
	if !strings.EqualFold(filepath.Ext(filename), DocumentExt) {
		return nil, fmt.Errorf("%w: %q is not a %s file", domain.ErrInvalidUpload, filename, DocumentExt)
	}
	if n := utf8.RuneCountInString(filename); n > domain.MaxFilenameLength {
		return nil, fmt.Errorf("%w: %d characters exceeds %d", domain.ErrFilenameTooLong, n, domain.MaxFilenameLength)
	}
	if s.maxFileSize > 0 && fh.Size > s.maxFileSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d", domain.ErrFileTooLarge, fh.Size, s.maxFileSize)
	}

	mimeType := fh.Header.Get("Content-Type")
	if parsed, _, err := mime.ParseMediaType(mimeType); err == nil {
		mimeType = parsed
	}
	if len(s.allowedMimeTypes) > 0 && !s.allowedMimeTypes[mimeType] {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedType, mimeType)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	id := uuid.NewString()
	storagePath := StoragePath(owner, id)
	if !domain.IsSafePath(storagePath) {
		return nil, fmt.Errorf("%w: owner %q yields an unsafe storage path", domain.ErrInvalidUpload, owner)
	}

	written, err := s.store.Save(ctx, storagePath, src)
	if err != nil {
		return nil, fmt.Errorf("failed to save file to storage: %w", err)
	}

	created, err := s.repo.Create(ctx, &domain.Upload{
		ID:          id,
		Owner:       owner,
		Filename:    filename,
		MIMEType:    mimeType,
		Size:        written,
		StoragePath: storagePath,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		// Clean up the stored content if metadata saving fails.
		_ = s.store.Delete(ctx, storagePath)
		return nil, fmt.Errorf("failed to save upload metadata: %w", err)
	}

	if s.publisher != nil {
		evt := UploadCreated{ID: created.ID, Filename: created.Filename, Size: created.Size, CreatedAt: created.CreatedAt}
		if err := Created.Publish(ctx, s.publisher, owner, evt); err != nil {
			middleware.FromContext(ctx).Warn("Failed to publish upload event", slog.String("upload_id", created.ID), slog.String("error", err.Error()))
		}
	}

	return created, nil
}

// List returns owner's uploads, newest first.
func (s *Service) List(ctx context.Context, owner string) ([]*domain.Upload, error) {
	return s.repo.FindByOwner(ctx, owner)
}

// Get returns the upload with id if owner owns it.
func (s *Service) Get(ctx context.Context, owner, id string) (*domain.Upload, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Owner != owner {
		return nil, domain.ErrForbidden
	}
	return u, nil
}

// Open returns the stored content of u.
func (s *Service) Open(ctx context.Context, u *domain.Upload) (io.ReadCloser, error) {
	return s.store.Open(ctx, u.StoragePath)
}

// Delete removes the content and metadata of the upload with id if owner owns it.
// A missing content file does not prevent the metadata from being removed.
func (s *Service) Delete(ctx context.Context, owner, id string) error {
	u, err := s.Get(ctx, owner, id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, u.StoragePath); err != nil {
		middleware.FromContext(ctx).Warn("Failed to delete upload content", slog.String("path", u.StoragePath), slog.String("error", err.Error()))
	}

	if err := s.repo.DeleteByID(ctx, u.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("failed to delete upload metadata: %w", err)
	}
	return nil
}
