package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/docchat/internal/database"
	"github.com/nfrund/docchat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUpload(owner, name string, createdAt time.Time) *domain.Upload {
	id := uuid.NewString()
	return &domain.Upload{
		ID:          id,
		Owner:       owner,
		Filename:    name,
		MIMEType:    "application/pdf",
		Size:        10,
		StoragePath: "uploads/" + owner + "/" + id + ".pdf",
		CreatedAt:   createdAt,
	}
}

func TestMemoryUploadStore(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryUploadStore()
	now := time.Now()

	older := newUpload("a@example.com", "older.pdf", now.Add(-time.Hour))
	newer := newUpload("a@example.com", "newer.pdf", now)
	other := newUpload("b@example.com", "other.pdf", now)

	for _, u := range []*domain.Upload{older, newer, other} {
		_, err := store.Create(ctx, u)
		require.NoError(t, err)
	}

	t.Run("FindByID", func(t *testing.T) {
		got, err := store.FindByID(ctx, older.ID)
		require.NoError(t, err)
		assert.Equal(t, "older.pdf", got.Filename)

		_, err = store.FindByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("FindByOwner is newest first and scoped", func(t *testing.T) {
		got, err := store.FindByOwner(ctx, "a@example.com")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "newer.pdf", got[0].Filename)
		assert.Equal(t, "older.pdf", got[1].Filename)
	})

	t.Run("Create rejects duplicates and invalid records", func(t *testing.T) {
		_, err := store.Create(ctx, older)
		assert.Error(t, err)

		bad := newUpload("a@example.com", "bad.pdf", now)
		bad.StoragePath = "../escape.pdf"
		_, err = store.Create(ctx, bad)
		assert.Error(t, err)
	})

	t.Run("DeleteByID", func(t *testing.T) {
		require.NoError(t, store.DeleteByID(ctx, other.ID))
		assert.ErrorIs(t, store.DeleteByID(ctx, other.ID), domain.ErrNotFound)
	})

	t.Run("returned records are copies", func(t *testing.T) {
		got, err := store.FindByID(ctx, newer.ID)
		require.NoError(t, err)
		got.Filename = "mutated.pdf"

		again, err := store.FindByID(ctx, newer.ID)
		require.NoError(t, err)
		assert.Equal(t, "newer.pdf", again.Filename)
	})
}
