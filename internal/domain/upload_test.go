package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/docchat/internal/domain"
	"github.com/stretchr/testify/assert"
)

func validUpload() *domain.Upload {
	return &domain.Upload{
		ID:          uuid.NewString(),
		Owner:       "m@example.com",
		Filename:    "report.pdf",
		MIMEType:    "application/pdf",
		Size:        42,
		StoragePath: "uploads/m@example.com/report.pdf",
		CreatedAt:   time.Now(),
	}
}

func TestUpload_Validate(t *testing.T) {
	assert.NoError(t, validUpload().Validate())

	tests := []struct {
		name   string
		mutate func(u *domain.Upload)
	}{
		{"missing id", func(u *domain.Upload) { u.ID = "" }},
		{"non uuid id", func(u *domain.Upload) { u.ID = "abc" }},
		{"bad owner", func(u *domain.Upload) { u.Owner = "nobody" }},
		{"empty filename", func(u *domain.Upload) { u.Filename = "" }},
		{"negative size", func(u *domain.Upload) { u.Size = -1 }},
		{"traversal path", func(u *domain.Upload) { u.StoragePath = "uploads/../etc/passwd" }},
		{"absolute path", func(u *domain.Upload) { u.StoragePath = "/etc/passwd" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUpload()
			tt.mutate(u)
			assert.Error(t, u.Validate())
		})
	}
}

func TestIsSafePath(t *testing.T) {
	assert.True(t, domain.IsSafePath("uploads/a/b.pdf"))
	assert.False(t, domain.IsSafePath("uploads/./b.pdf"))
	assert.False(t, domain.IsSafePath("~/b.pdf"))
	assert.False(t, domain.IsSafePath(`uploads\b.pdf`))
}

func TestStaticIdentity(t *testing.T) {
	want := domain.UserIdentity{Name: "shadcn", Email: "m@example.com", AvatarURL: "/avatars/shadcn.svg"}
	got, err := domain.StaticIdentity{User: want}.Identity(t.Context())
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
