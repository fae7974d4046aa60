// Package testutil provides a fake GIPHY server for tests of the search,
// download and export layers.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"gifsaver/pkg/config"
	"gifsaver/pkg/models"
)

// TestAPIKey is the key the fake server accepts
const TestAPIKey = "test-api-key"

// ratings is the rating cycle used by the generated fixture
var ratings = []string{"pg-13", "g", "r", "pg"}

// FakeGiphy simulates the search endpoint and a media CDN
type FakeGiphy struct {
	server      *httptest.Server
	searchCalls int32
	mediaCalls  int32

	mu           sync.Mutex
	results      []models.GIF
	searchStatus int
	rawBody      string
	failMedia    map[int]int
	lastQuery    url.Values
	userAgents   map[string]string
}

// NewFakeGiphy starts a server whose search returns count generated results
func NewFakeGiphy(count int) *FakeGiphy {
	f := &FakeGiphy{failMedia: make(map[int]int), userAgents: make(map[string]string)}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/gifs/search", f.handleSearch)
	mux.HandleFunc("/media/", f.handleMedia)
	f.server = httptest.NewServer(mux)

	for i := 0; i < count; i++ {
		f.results = append(f.results, models.GIF{
			ID:       fmt.Sprintf("gif%02d", i),
			Title:    fmt.Sprintf("Cat GIF %d", i),
			Username: fmt.Sprintf("author%d", i),
			Rating:   ratings[i%len(ratings)],
			Images: models.Images{
				Original: models.Rendition{URL: fmt.Sprintf("%s/media/%d.gif", f.server.URL, i)},
			},
		})
	}

	return f
}

// URL returns the base URL of the server
func (f *FakeGiphy) URL() string {
	return f.server.URL
}

// Close shuts the server down
func (f *FakeGiphy) Close() {
	f.server.Close()
}

// Results returns the fixture in API order
func (f *FakeGiphy) Results() []models.GIF {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.GIF, len(f.results))
	copy(out, f.results)
	return out
}

// SearchCalls returns the number of search requests served
func (f *FakeGiphy) SearchCalls() int {
	return int(atomic.LoadInt32(&f.searchCalls))
}

// MediaCalls returns the number of media requests served
func (f *FakeGiphy) MediaCalls() int {
	return int(atomic.LoadInt32(&f.mediaCalls))
}

// LastQuery returns the query parameters of the latest search
func (f *FakeGiphy) LastQuery() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastQuery
}

// UserAgent returns the User-Agent of the latest request to endpoint,
// which is "search" or "media"
func (f *FakeGiphy) UserAgent(endpoint string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.userAgents[endpoint]
}

// FailSearch makes every search answer with status and a GIPHY error body
func (f *FakeGiphy) FailSearch(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchStatus = status
}

// SetRawSearchBody makes every search answer 200 with body verbatim
func (f *FakeGiphy) SetRawSearchBody(body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rawBody = body
}

// FailMedia makes the media file with the given fixture index answer status
func (f *FakeGiphy) FailMedia(index, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failMedia[index] = status
}

func (f *FakeGiphy) handleSearch(w http.ResponseWriter, r *http.Request) {
	atomic.AddInt32(&f.searchCalls, 1)

	f.mu.Lock()
	f.lastQuery = r.URL.Query()
	f.userAgents["search"] = r.UserAgent()
	status := f.searchStatus
	rawBody := f.rawBody
	results := f.results
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if r.URL.Query().Get("api_key") != TestAPIKey {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []interface{}{},
			"meta": models.Meta{Status: http.StatusUnauthorized, Msg: "Unauthorized"},
		})
		return
	}

	if status != 0 {
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"meta": models.Meta{Status: status, Msg: http.StatusText(status)},
		})
		return
	}

	if rawBody != "" {
		w.Write([]byte(rawBody))
		return
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 25
	}
	if limit < len(results) {
		results = results[:limit]
	}

	json.NewEncoder(w).Encode(models.SearchResponse{
		Data:       results,
		Pagination: models.Pagination{TotalCount: len(f.results), Count: len(results)},
		Meta:       models.Meta{Status: http.StatusOK, Msg: "OK", ResponseID: "test"},
	})
}

func (f *FakeGiphy) handleMedia(w http.ResponseWriter, r *http.Request) {
	atomic.AddInt32(&f.mediaCalls, 1)

	name := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/media/"), ".gif")
	index, err := strconv.Atoi(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	f.mu.Lock()
	f.userAgents["media"] = r.UserAgent()
	status := f.failMedia[index]
	f.mu.Unlock()

	if status != 0 {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "image/gif")
	w.Write(MediaBytes(index))
}

// MediaBytes returns the body served for the media file with index i
func MediaBytes(i int) []byte {
	return []byte(fmt.Sprintf("GIF89a fake frame data for %d", i))
}

// Config returns a configuration pointing at baseURL and writing to outputDir
func Config(baseURL, outputDir string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Giphy.BaseURL = baseURL
	cfg.Giphy.APIKey = TestAPIKey
	cfg.Output.BaseDirectory = outputDir
	cfg.RateLimit.RequestsPerMinute = 1000
	cfg.Download.Timeout = 5 * time.Second
	return cfg
}
