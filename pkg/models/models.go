package models

// SearchResponse is the top-level response of the GIPHY search endpoint
type SearchResponse struct {
	Data       []GIF      `json:"data"`
	Pagination Pagination `json:"pagination"`
	Meta       Meta       `json:"meta"`
}

// Pagination describes the page the API returned
type Pagination struct {
	TotalCount int `json:"total_count"`
	Count      int `json:"count"`
	Offset     int `json:"offset"`
}

// Meta carries the API-level status, which is also set on error bodies
type Meta struct {
	Status     int    `json:"status"`
	Msg        string `json:"msg"`
	ResponseID string `json:"response_id"`
}

// GIF is a single search result
type GIF struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Title    string `json:"title"`
	Username string `json:"username"`
	Rating   string `json:"rating"`
	Images   Images `json:"images"`
}

// Images holds the renditions of a GIF. Only the original is used.
type Images struct {
	Original Rendition `json:"original"`
}

// Rendition is one encoded variant of a GIF
type Rendition struct {
	URL    string `json:"url"`
	Width  string `json:"width,omitempty"`
	Height string `json:"height,omitempty"`
	Size   string `json:"size,omitempty"`
}

// OriginalURL returns the URL of the highest-fidelity rendition
func (g GIF) OriginalURL() string {
	return g.Images.Original.URL
}

// ManifestEntry is the metadata recorded for one saved file
type ManifestEntry struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Rating string `json:"rating"`
}

// Manifest maps saved filenames to their metadata
type Manifest map[string]ManifestEntry

// EntryFromGIF builds the manifest entry for a search result
func EntryFromGIF(g GIF) ManifestEntry {
	return ManifestEntry{
		Title:  g.Title,
		Author: g.Username,
		Rating: g.Rating,
	}
}

// SavedGIF is a file in the output directory joined with its manifest entry.
// Data is nil when the manifest has no entry for Path.
type SavedGIF struct {
	Data *ManifestEntry `json:"data"`
	Path string         `json:"path"`
}
