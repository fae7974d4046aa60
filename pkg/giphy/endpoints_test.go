package giphy

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gifsaver/pkg/models"
)

func TestGetSearchURL(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		limit     int
		wantLimit string
	}{
		{"default limit", "cat", 30, "30"},
		{"zero limit uses default", "cat", 0, "30"},
		{"limit capped", "cat", 500, "50"},
		{"query is encoded", "cats & dogs", 10, "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := GetSearchURL(BaseURL+"/", "key", tt.query, tt.limit)

			u, err := url.Parse(raw)
			require.NoError(t, err)
			assert.Equal(t, "api.giphy.com", u.Host)
			assert.Equal(t, SearchEndpoint, u.Path)
			assert.Equal(t, "key", u.Query().Get("api_key"))
			assert.Equal(t, tt.query, u.Query().Get("q"))
			assert.Equal(t, tt.wantLimit, u.Query().Get("limit"))
		})
	}
}

func TestRedactURL(t *testing.T) {
	raw := GetSearchURL(BaseURL, "secretkey123", "cat", 30)
	redacted := redactURL(raw)

	assert.NotContains(t, redacted, "secretkey123")
	assert.Contains(t, redacted, "y123")
	assert.Contains(t, redacted, "q=cat")

	assert.Equal(t, "https://media.giphy.com/a.gif", redactURL("https://media.giphy.com/a.gif"))
}

func TestSortByRating(t *testing.T) {
	results := []models.GIF{
		{ID: "1", Rating: "r"},
		{ID: "2", Rating: "g"},
		{ID: "3", Rating: "pg-13"},
		{ID: "4", Rating: "g"},
		{ID: "5", Rating: "pg"},
	}

	SortByRating(results)

	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	// equal ratings keep their input order
	assert.Equal(t, []string{"2", "4", "5", "3", "1"}, ids)
}

func TestSortByRatingIsLexical(t *testing.T) {
	// "10" sorts before "9": the rating is compared as a string
	results := []models.GIF{{Rating: "9"}, {Rating: "10"}}
	SortByRating(results)
	assert.Equal(t, "10", results[0].Rating)
}
