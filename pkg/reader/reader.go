// Package reader lists the files saved by an export together with the
// metadata the manifest recorded for them.
package reader

import (
	"fmt"

	"gifsaver/pkg/logger"
	"gifsaver/pkg/metadata"
	"gifsaver/pkg/models"
	"gifsaver/pkg/storage"
)

// Reader reads the output directory of an exporter
type Reader struct {
	storage      *storage.Manager
	manifestName string
	logger       logger.Logger
}

// New creates a reader for the directory owned by store. An empty
// manifestName selects list.json.
func New(store *storage.Manager, manifestName string, log logger.Logger) *Reader {
	if manifestName == "" {
		manifestName = metadata.DefaultManifestName
	}
	return &Reader{
		storage:      store,
		manifestName: manifestName,
		logger:       logger.OrDefault(log),
	}
}

// ListSaved returns one entry per saved file in directory-listing order.
// The manifest must exist; a file it does not describe gets a nil Data.
func (r *Reader) ListSaved() ([]models.SavedGIF, error) {
	manifestPath := metadata.ManifestPath(r.storage.GetOutputDir(), r.manifestName)

	manifest, err := metadata.Load(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("load manifest: %w", err)
	}

	names, err := r.storage.ListFiles()
	if err != nil {
		return nil, fmt.Errorf("list saved files: %w", err)
	}

	saved := make([]models.SavedGIF, 0, len(names))
	missing := 0
	for _, name := range names {
		entry := metadata.Lookup(manifest, name)
		if entry == nil {
			missing++
		}
		saved = append(saved, models.SavedGIF{Data: entry, Path: name})
	}

	r.logger.DebugWithFields("listed saved files", map[string]interface{}{
		"dir":          r.storage.GetOutputDir(),
		"files":        len(saved),
		"without_data": missing,
	})

	return saved, nil
}
