package exporter

import (
	"context"

	"gifsaver/pkg/models"
)

// Searcher returns search results sorted ascending by rating
type Searcher interface {
	Search(ctx context.Context, query string) ([]models.GIF, error)
}

// Fetcher persists the resource at url to dest
type Fetcher interface {
	Download(ctx context.Context, url, dest string) (int64, error)
}

// Progress observes an export run. Calls arrive on the exporting goroutine.
type Progress interface {
	Start(query string, total int)
	ItemStarted(index int, name string, gif models.GIF)
	ItemDone(index int, name string, size int64)
	ItemFailed(index int, name string, err error)
	Finish(manifestPath string, saved int)
}
