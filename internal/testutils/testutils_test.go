package testutils

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileHeader(t *testing.T) {
	fh := FileHeader(t, "file", "report.pdf", "application/pdf", "%PDF")

	assert.Equal(t, "report.pdf", fh.Filename)
	assert.Equal(t, "application/pdf", fh.Header.Get("Content-Type"))
	assert.Equal(t, int64(4), fh.Size)

	f, err := fh.Open()
	require.NoError(t, err)
	defer f.Close()
	content, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(content))
}

func TestConfigForTests(t *testing.T) {
	cfg := ConfigForTests(t)

	assert.Equal(t, "memory", cfg.GetStorageBackend())
	assert.Equal(t, "m@example.com", cfg.GetDefaultUserEmail())
	assert.Empty(t, cfg.GetDBUrl())
}
