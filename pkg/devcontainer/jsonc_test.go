package devcontainer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devcontainer-god/devctl/pkg/errors"
)

func TestParse_CommentsStripped(t *testing.T) {
	data := []byte(`{
    // the display name shown by devcontainer tools
    "name": "God Container",
    /* base image */
    "image": "mcr.microsoft.com/devcontainers/base:bookworm"
}`)

	doc, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "God Container", doc["name"])
	assert.Equal(t, "mcr.microsoft.com/devcontainers/base:bookworm", doc["image"])
}

func TestParse_NonObjectTopLevel(t *testing.T) {
	_, err := Parse([]byte(`["not", "an", "object"]`))
	assert.Error(t, err)
}

func TestParse_NullTopLevel(t *testing.T) {
	_, err := Parse([]byte(`null`))
	assert.Error(t, err)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "devcontainer.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeNotFound))
}

func TestSaveFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "devcontainer.json")

	doc := Document{
		"name":       "My Project",
		"remoteUser": "vscode",
		"features": map[string]interface{}{
			"ghcr.io/devcontainers/features/go:1": map[string]interface{}{},
		},
	}
	require.NoError(t, SaveFile(path, doc))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "My Project", loaded["name"])
	assert.Equal(t, "vscode", loaded["remoteUser"])
	features := loaded["features"].(map[string]interface{})
	assert.Contains(t, features, "ghcr.io/devcontainers/features/go:1")
}

func TestSaveFile_FourSpaceIndent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "devcontainer.json")

	require.NoError(t, SaveFile(path, Document{"name": "x"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n    \"name\"")
}

func TestSaveFile_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "devcontainer.json")

	require.NoError(t, SaveFile(path, Document{"name": "x"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.Contains(e.Name(), ".tmp-"), "temp file %s left behind", e.Name())
	}
}
