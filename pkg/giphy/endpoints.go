package giphy

import (
	"fmt"
	"net/url"
	"strings"

	"gifsaver/pkg/config"
)

const (
	// BaseURL is the base URL of the GIPHY API
	BaseURL = "https://api.giphy.com"

	// SearchEndpoint is the path of the GIF search endpoint
	SearchEndpoint = "/v1/gifs/search"

	// DefaultSearchLimit is the number of results requested per search
	DefaultSearchLimit = 30
)

// GetSearchURL constructs the search URL for query
func GetSearchURL(baseURL, apiKey, query string, limit int) string {
	if limit <= 0 {
		limit = DefaultSearchLimit
	} else if limit > config.MaxSearchLimit {
		limit = config.MaxSearchLimit
	}

	params := url.Values{}
	params.Set("api_key", apiKey)
	params.Set("q", query)
	params.Set("limit", fmt.Sprintf("%d", limit))

	return fmt.Sprintf("%s%s?%s", strings.TrimRight(baseURL, "/"), SearchEndpoint, params.Encode())
}

// redactURL masks the api_key parameter so URLs can be logged
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	if key := q.Get("api_key"); key != "" {
		q.Set("api_key", config.MaskSecret(key))
		u.RawQuery = q.Encode()
	}
	return u.String()
}
