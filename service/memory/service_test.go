package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryReadMissing(t *testing.T) {
	service := New(nil)
	content, err := service.Read(context.Background(), filepath.Join(t.TempDir(), "memory.md"))
	assert.NoError(t, err)
	assert.Equal(t, "", content)
}

func TestMemoryAppendAndRead(t *testing.T) {
	ctx := context.Background()
	service := New(nil)
	URL := filepath.Join(t.TempDir(), "run", "memory.md")

	assert.NoError(t, service.Append(ctx, URL, "- Gather: done"))
	assert.NoError(t, service.Append(ctx, URL, "- Design: done\n"))

	content, err := service.Read(ctx, URL)
	assert.NoError(t, err)
	assert.Equal(t, "- Gather: done\n- Design: done\n", content)

	// The log is a plain UTF-8 file on disk.
	raw, err := os.ReadFile(URL)
	assert.NoError(t, err)
	assert.Equal(t, content, string(raw))
}
