package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/nfrund/docchat/internal/domain"
	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

const uploadTable = "upload"

// var _ ensures that SurrealUploadStore implements the domain.UploadRepository interface at compile time.
var _ domain.UploadRepository = (*SurrealUploadStore)(nil)

// uploadRecord is the persisted shape of domain.Upload. The SurrealDB record id
// is left to the database; lookups go through the application-level upload_id.
type uploadRecord struct {
	ID          *surrealmodels.RecordID       `json:"id,omitempty"`
	UploadID    string                        `json:"upload_id"`
	Owner       string                        `json:"owner"`
	Filename    string                        `json:"filename"`
	MIMEType    string                        `json:"mime_type"`
	Size        int64                         `json:"size"`
	StoragePath string                        `json:"storage_path"`
	CreatedAt   *surrealmodels.CustomDateTime `json:"created_at,omitempty"`
}

func toUploadRecord(u *domain.Upload) map[string]any {
	return map[string]any{
		"upload_id":    u.ID,
		"owner":        u.Owner,
		"filename":     u.Filename,
		"mime_type":    u.MIMEType,
		"size":         u.Size,
		"storage_path": u.StoragePath,
		"created_at":   surrealmodels.CustomDateTime{Time: u.CreatedAt.UTC()},
	}
}

func (r uploadRecord) toDomain() *domain.Upload {
	u := &domain.Upload{
		ID:          r.UploadID,
		Owner:       r.Owner,
		Filename:    r.Filename,
		MIMEType:    r.MIMEType,
		Size:        r.Size,
		StoragePath: r.StoragePath,
	}
	if r.CreatedAt != nil {
		u.CreatedAt = r.CreatedAt.Time
	}
	return u
}

// SurrealUploadStore persists upload metadata in SurrealDB.
type SurrealUploadStore struct {
	db *surrealdb.DB
}

// NewSurrealUploadStore creates a store backed by an already signed-in connection.
func NewSurrealUploadStore(db *surrealdb.DB) *SurrealUploadStore {
	return &SurrealUploadStore{db: db}
}

// query runs a statement and returns the rows of its first result set.
func (s *SurrealUploadStore) query(ctx context.Context, sql string, vars map[string]any) ([]uploadRecord, error) {
	results, err := surrealdb.Query[[]uploadRecord](ctx, s.db, sql, vars)
	if err != nil {
		return nil, fmt.Errorf("query execution failed: %w", err)
	}
	if results == nil || len(*results) == 0 {
		return nil, nil
	}
	return (*results)[0].Result, nil
}

// Create inserts a new upload metadata record.
func (s *SurrealUploadStore) Create(ctx context.Context, upload *domain.Upload) (*domain.Upload, error) {
	if upload == nil {
		return nil, errors.New("upload to create cannot be nil")
	}
	if err := upload.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed for upload: %w", err)
	}

	rows, err := s.query(ctx, "CREATE type::table($table) CONTENT $data", map[string]any{
		"table": uploadTable,
		"data":  toUploadRecord(upload),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create upload: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("failed to create upload: no record returned")
	}
	return rows[0].toDomain(), nil
}

// FindByID retrieves upload metadata by its application ID.
func (s *SurrealUploadStore) FindByID(ctx context.Context, id string) (*domain.Upload, error) {
	rows, err := s.query(ctx, "SELECT * FROM type::table($table) WHERE upload_id = $id LIMIT 1", map[string]any{
		"table": uploadTable,
		"id":    id,
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	return rows[0].toDomain(), nil
}

// FindByOwner lists the owner's uploads, newest first.
func (s *SurrealUploadStore) FindByOwner(ctx context.Context, owner string) ([]*domain.Upload, error) {
	rows, err := s.query(ctx, "SELECT * FROM type::table($table) WHERE owner = $owner ORDER BY created_at DESC", map[string]any{
		"table": uploadTable,
		"owner": owner,
	})
	if err != nil {
		return nil, err
	}

	uploads := make([]*domain.Upload, len(rows))
	for i, row := range rows {
		uploads[i] = row.toDomain()
	}
	return uploads, nil
}

// DeleteByID removes the record with the given application ID.
func (s *SurrealUploadStore) DeleteByID(ctx context.Context, id string) error {
	rows, err := s.query(ctx, "DELETE type::table($table) WHERE upload_id = $id RETURN BEFORE", map[string]any{
		"table": uploadTable,
		"id":    id,
	})
	if err != nil {
		return fmt.Errorf("failed to delete upload: %w", err)
	}
	if len(rows) == 0 {
		return domain.ErrNotFound
	}
	return nil
}
