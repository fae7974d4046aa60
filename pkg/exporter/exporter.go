package exporter

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gifsaver/pkg/logger"
	"gifsaver/pkg/metadata"
	"gifsaver/pkg/models"
	"gifsaver/pkg/storage"
)

// DefaultCount is used when neither the caller nor the configuration sets one
const DefaultCount = 10

// Exporter saves the top results of a search to the output directory and
// records their metadata in the manifest
type Exporter struct {
	searcher     Searcher
	fetcher      Fetcher
	storage      *storage.Manager
	manifestName string
	defaultCount int
	progress     Progress
	logger       logger.Logger
}

// Option configures an Exporter
type Option func(*Exporter)

// WithProgress registers an observer for export runs
func WithProgress(p Progress) Option {
	return func(e *Exporter) {
		e.progress = p
	}
}

// WithDefaultCount sets the count used when ExportTop receives count <= 0
func WithDefaultCount(n int) Option {
	return func(e *Exporter) {
		if n > 0 {
			e.defaultCount = n
		}
	}
}

// WithManifestName overrides the manifest file name
func WithManifestName(name string) Option {
	return func(e *Exporter) {
		if name != "" {
			e.manifestName = name
		}
	}
}

// WithLogger sets the logger
func WithLogger(log logger.Logger) Option {
	return func(e *Exporter) {
		e.logger = logger.OrDefault(log)
	}
}

// New creates an exporter writing into the directory owned by store
func New(searcher Searcher, fetcher Fetcher, store *storage.Manager, opts ...Option) *Exporter {
	e := &Exporter{
		searcher:     searcher,
		fetcher:      fetcher,
		storage:      store,
		manifestName: metadata.DefaultManifestName,
		defaultCount: DefaultCount,
		progress:     nopProgress{},
		logger:       logger.GetLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ManifestPath returns where the manifest is written
func (e *Exporter) ManifestPath() string {
	return metadata.ManifestPath(e.storage.GetOutputDir(), e.manifestName)
}

// ExportTop downloads the first count results for query as 0.gif, 1.gif, ...
// and then writes the manifest describing them. The first failed download
// aborts the run: files already saved stay on disk and no manifest is written.
func (e *Exporter) ExportTop(ctx context.Context, query string, count int) (models.Manifest, error) {
	if count <= 0 {
		count = e.defaultCount
	}

	runID := uuid.New().String()
	log := e.logger.WithFields(map[string]interface{}{
		"run_id": runID,
		"query":  query,
	})
	start := time.Now()

	results, err := e.searcher.Search(ctx, query)
	if err != nil {
		log.WithError(err).Error("search failed, nothing exported")
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	if len(results) > count {
		results = results[:count]
	}

	if err := e.storage.EnsureDir(); err != nil {
		return nil, err
	}

	log.InfoWithFields("starting export", map[string]interface{}{
		"count":  len(results),
		"output": e.storage.GetOutputDir(),
	})
	e.progress.Start(query, len(results))

	manifest := make(models.Manifest, len(results))
	for i, gif := range results {
		name := e.storage.FileName(i)
		e.progress.ItemStarted(i, name, gif)

		size, err := e.fetcher.Download(ctx, gif.OriginalURL(), e.storage.Path(name))
		if err != nil {
			e.progress.ItemFailed(i, name, err)
			log.WithError(err).ErrorWithFields("download failed, aborting export", map[string]interface{}{
				"index": i,
				"file":  name,
				"url":   gif.OriginalURL(),
			})
			return nil, fmt.Errorf("download %s: %w", name, err)
		}

		manifest[name] = models.EntryFromGIF(gif)
		e.progress.ItemDone(i, name, size)
	}

	manifestPath := e.ManifestPath()
	if err := metadata.Save(manifestPath, manifest); err != nil {
		log.WithError(err).Error("failed to write manifest")
		return nil, err
	}

	e.progress.Finish(manifestPath, len(manifest))
	log.InfoWithFields("export completed", map[string]interface{}{
		"saved":    len(manifest),
		"manifest": manifestPath,
		"duration": time.Since(start),
	})

	return manifest, nil
}

type nopProgress struct{}

func (nopProgress) Start(string, int)                   {}
func (nopProgress) ItemStarted(int, string, models.GIF) {}
func (nopProgress) ItemDone(int, string, int64)         {}
func (nopProgress) ItemFailed(int, string, error)       {}
func (nopProgress) Finish(string, int)                  {}
