package metadata

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gifsaver/pkg/errors"
	"gifsaver/pkg/models"
)

func TestManifestPath(t *testing.T) {
	assert.Equal(t, filepath.Join("saved", "list.json"), ManifestPath("saved", ""))
	assert.Equal(t, filepath.Join("saved", "index.json"), ManifestPath("saved", "index.json"))
}

func TestSaveWritesExpectedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.json")
	manifest := models.Manifest{
		"0.gif": {Title: "Happy Cat", Author: "catlover", Rating: "g"},
	}

	require.NoError(t, Save(path, manifest))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"0.gif": {"title": "Happy Cat", "author": "catlover", "rating": "g"}}`, string(data))
}

func TestSaveOverwritesInFull(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.json")
	require.NoError(t, Save(path, models.Manifest{
		"0.gif": {Title: "a"},
		"1.gif": {Title: "b"},
		"2.gif": {Title: "c"},
	}))
	require.NoError(t, Save(path, models.Manifest{"0.gif": {Title: "z"}}))

	manifest, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, models.Manifest{"0.gif": {Title: "z"}}, manifest)
}

func TestSaveNilManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.json")
	require.NoError(t, Save(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "list.json"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeFileSystem))
	assert.True(t, stderrors.Is(err, os.ErrNotExist))
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"0.gif": {"title": `), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeParsing))
}

func TestLoadNullManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.json")
	require.NoError(t, os.WriteFile(path, []byte(`null`), 0644))

	manifest, err := Load(path)
	require.NoError(t, err)
	assert.NotNil(t, manifest)
	assert.Empty(t, manifest)
}

func TestLookup(t *testing.T) {
	manifest := models.Manifest{"0.gif": {Title: "cat", Author: "me", Rating: "g"}}

	entry := Lookup(manifest, "0.gif")
	require.NotNil(t, entry)
	assert.Equal(t, "cat", entry.Title)

	assert.Nil(t, Lookup(manifest, "1.gif"))
	assert.Nil(t, Lookup(nil, "0.gif"))
}
