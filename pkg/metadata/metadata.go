package metadata

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"gifsaver/pkg/errors"
	"gifsaver/pkg/models"
	"gifsaver/pkg/storage"
)

// DefaultManifestName is the manifest file name inside the output directory
const DefaultManifestName = "list.json"

// ManifestPath returns the manifest location inside dir
func ManifestPath(dir, name string) string {
	if name == "" {
		name = DefaultManifestName
	}
	return filepath.Join(dir, name)
}

// Save writes the manifest as a single JSON object, replacing any existing
// file at path in full
func Save(path string, manifest models.Manifest) error {
	if manifest == nil {
		manifest = models.Manifest{}
	}

	data, err := json.Marshal(manifest)
	if err != nil {
		return &errors.Error{
			Type:    errors.ErrorTypeParsing,
			Message: "failed to marshal manifest",
			Err:     err,
		}
	}

	if _, err := storage.WriteFileAtomic(path, bytes.NewReader(data)); err != nil {
		return err
	}

	return nil
}

// Load reads the manifest at path. A missing file is a filesystem error
// wrapping os.ErrNotExist; an undecodable one is a parsing error.
func Load(path string) (models.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.FileSystem("failed to read manifest", err)
	}

	var manifest models.Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, errors.Parsing("failed to parse manifest", err)
	}
	if manifest == nil {
		manifest = models.Manifest{}
	}

	return manifest, nil
}

// Lookup returns the entry for name, or nil when the manifest has none
func Lookup(manifest models.Manifest, name string) *models.ManifestEntry {
	entry, ok := manifest[name]
	if !ok {
		return nil
	}
	return &entry
}
