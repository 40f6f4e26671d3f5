package database

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/nfrund/docchat/internal/domain"
)

var _ domain.UploadRepository = (*MemoryUploadStore)(nil)

// MemoryUploadStore keeps upload metadata in process memory. It is the default
// repository when no SurrealDB endpoint is configured, and the one tests use.
type MemoryUploadStore struct {
	mu      sync.RWMutex
	uploads map[string]domain.Upload
}

// NewMemoryUploadStore creates an empty store.
func NewMemoryUploadStore() *MemoryUploadStore {
	return &MemoryUploadStore{uploads: make(map[string]domain.Upload)}
}

// Create inserts a copy of upload.
func (s *MemoryUploadStore) Create(ctx context.Context, upload *domain.Upload) (*domain.Upload, error) {
	if upload == nil {
		return nil, errors.New("upload to create cannot be nil")
	}
	if err := upload.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed for upload: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.uploads[upload.ID]; exists {
		return nil, fmt.Errorf("upload %s already exists", upload.ID)
	}
	s.uploads[upload.ID] = *upload

	created := *upload
	return &created, nil
}

// FindByID retrieves upload metadata by ID.
func (s *MemoryUploadStore) FindByID(ctx context.Context, id string) (*domain.Upload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.uploads[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

// FindByOwner lists the owner's uploads, newest first.
func (s *MemoryUploadStore) FindByOwner(ctx context.Context, owner string) ([]*domain.Upload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var uploads []*domain.Upload
	for _, u := range s.uploads {
		if u.Owner == owner {
			u := u
			uploads = append(uploads, &u)
		}
	}
	sort.Slice(uploads, func(i, j int) bool {
		return uploads[i].CreatedAt.After(uploads[j].CreatedAt)
	})
	return uploads, nil
}

// DeleteByID removes the record with the given ID.
func (s *MemoryUploadStore) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.uploads[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.uploads, id)
	return nil
}
