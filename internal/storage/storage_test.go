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
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	name, err := store.Save(context.Background(), "cover.jpg", strings.NewReader("image bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, "_cover.jpg"), "stored name keeps the sanitized original: %q", name)

	content, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(content))
}

func TestLocalStoreSanitizesName(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	name, err := store.Save(context.Background(), "../../evil.sh", strings.NewReader("x"))
	require.NoError(t, err)
	assert.NotContains(t, name, "..")
	assert.NotContains(t, name, "/")

	_, err = os.Stat(filepath.Join(dir, name))
	assert.NoError(t, err, "file must land inside the store directory")
}

func TestNewLocalStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "images")
	_, err := NewLocalStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
