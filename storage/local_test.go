package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreSave(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStore(root)
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "screenshot.PNG", "image/png", strings.NewReader("fake image bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/projects/"), "got %s", url)
	assert.True(t, strings.HasSuffix(url, ".png"), "extension should be lowercased: %s", url)

	stored := filepath.Join(root, "projects", filepath.Base(url))
	content, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(content))
}

func TestObjectName(t *testing.T) {
	name := ObjectName("photo.JPEG")
	assert.True(t, strings.HasSuffix(name, ".jpeg"))
	assert.NotEqual(t, ObjectName("photo.JPEG"), name)

	assert.NotContains(t, ObjectName("noextension"), ".")
}
