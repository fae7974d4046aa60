package giphy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"gifsaver/pkg/cache"
	"gifsaver/pkg/config"
	"gifsaver/pkg/errors"
	"gifsaver/pkg/logger"
	"gifsaver/pkg/models"
	"gifsaver/pkg/ratelimit"
)

// maxErrorBody bounds how much of an error response is read for its message
const maxErrorBody = 4 << 10

// Client searches GIPHY and caches sorted results per query
type Client struct {
	httpClient *http.Client
	headers    map[string]string
	baseURL    string
	apiKey     string
	limit      int
	cache      *cache.QueryCache
	limiter    ratelimit.Limiter
	logger     logger.Logger
}

// NewClient creates a new GIPHY API client. A nil cache, limiter or logger
// is replaced with a fresh cache, a limiter built from cfg.RateLimit and the
// global logger respectively.
func NewClient(cfg *config.Config, c *cache.QueryCache, limiter ratelimit.Limiter, log logger.Logger) *Client {
	if c == nil {
		c = cache.New()
	}
	if limiter == nil {
		limiter = ratelimit.PerMinute(cfg.RateLimit.RequestsPerMinute)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Download.Timeout,
		},
		headers: map[string]string{
			"Accept":     "application/json",
			"User-Agent": "gifsaver/1.0",
		},
		baseURL: cfg.Giphy.BaseURL,
		apiKey:  cfg.Giphy.APIKey,
		limit:   cfg.Giphy.SearchLimit,
		cache:   c,
		limiter: limiter,
		logger:  logger.OrDefault(log),
	}
}

// SetHeader sets a custom header for the client
func (c *Client) SetHeader(key, value string) {
	c.headers[key] = value
}

// Cache returns the query cache owned by the client
func (c *Client) Cache() *cache.QueryCache {
	return c.cache
}

// Search returns the results for query using the configured page size
func (c *Client) Search(ctx context.Context, query string) ([]models.GIF, error) {
	return c.SearchWithLimit(ctx, query, c.limit)
}

// SearchWithLimit returns the results for query sorted ascending by rating.
// A cached query is answered without network access; the cache is keyed by
// query only, so limit has no effect on a hit.
func (c *Client) SearchWithLimit(ctx context.Context, query string, limit int) ([]models.GIF, error) {
	if results, ok := c.cache.Get(query); ok {
		c.logger.DebugWithFields("search cache hit", map[string]interface{}{
			"query":   query,
			"results": len(results),
		})
		return results, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	url := GetSearchURL(c.baseURL, c.apiKey, query, limit)

	var response models.SearchResponse
	if err := c.GetJSON(ctx, url, &response); err != nil {
		c.logger.ErrorWithFields("search failed", map[string]interface{}{
			"query": query,
			"error": err.Error(),
		})
		return nil, err
	}

	if err := checkMeta(response.Meta); err != nil {
		return nil, err
	}

	results := response.Data
	if results == nil {
		results = []models.GIF{}
	}
	SortByRating(results)

	c.cache.Set(query, results)

	c.logger.DebugWithFields("search completed", map[string]interface{}{
		"query":       query,
		"results":     len(results),
		"total_count": response.Pagination.TotalCount,
	})

	return results, nil
}

// doRequest performs an HTTP request with the configured headers
func (c *Client) doRequest(req *http.Request) (*http.Response, error) {
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	logURL := redactURL(req.URL.String())
	start := time.Now()
	c.logger.DebugWithFields("sending HTTP request", map[string]interface{}{
		"method": req.Method,
		"url":    logURL,
	})

	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.ErrorWithFields("HTTP request failed", map[string]interface{}{
			"method":   req.Method,
			"url":      logURL,
			"error":    err.Error(),
			"duration": duration,
		})
		return nil, errors.Network("request failed", err)
	}

	c.logger.DebugWithFields("HTTP request completed", map[string]interface{}{
		"method":   req.Method,
		"url":      logURL,
		"status":   resp.StatusCode,
		"duration": duration,
	})

	return resp, nil
}

// GetJSON performs a GET request and decodes the JSON response into target
func (c *Client) GetJSON(ctx context.Context, url string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &errors.Error{
			Type:    errors.ErrorTypeUnknown,
			Message: fmt.Sprintf("failed to create request: %v", err),
			Err:     err,
		}
	}

	resp, err := c.doRequest(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkResponseStatus(resp); err != nil {
		return err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &errors.Error{
			Type:    errors.ErrorTypeNetwork,
			Message: fmt.Sprintf("failed to read response body: %v", err),
			Code:    resp.StatusCode,
			Err:     err,
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		bodyPreview := string(body)
		if len(bodyPreview) > 200 {
			bodyPreview = bodyPreview[:200] + "..."
		}

		c.logger.ErrorWithFields("failed to parse JSON response", map[string]interface{}{
			"url":          redactURL(url),
			"status":       resp.StatusCode,
			"error":        err.Error(),
			"body_preview": bodyPreview,
		})
		return &errors.Error{
			Type:    errors.ErrorTypeParsing,
			Message: fmt.Sprintf("failed to parse JSON: %v", err),
			Code:    resp.StatusCode,
			Err:     err,
		}
	}

	return nil
}

// checkResponseStatus turns a non-2xx response into a typed error, using the
// API's own message when the body carries one
func (c *Client) checkResponseStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	message := http.StatusText(resp.StatusCode)
	if apiMsg := readErrorMessage(resp.Body); apiMsg != "" {
		message = apiMsg
	}

	errType := errors.FromStatusCode(resp.StatusCode)
	fields := map[string]interface{}{
		"status":  resp.StatusCode,
		"type":    string(errType),
		"message": message,
	}
	if errType == errors.ErrorTypeServerError {
		c.logger.ErrorWithFields("GIPHY API error", fields)
	} else {
		c.logger.WarnWithFields("GIPHY API rejected request", fields)
	}

	return &errors.Error{
		Type:    errType,
		Message: message,
		Code:    resp.StatusCode,
	}
}

// readErrorMessage extracts meta.msg or message from an error body
func readErrorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return ""
	}

	var envelope struct {
		Meta    models.Meta `json:"meta"`
		Message string      `json:"message"`
	}
	if json.Unmarshal(data, &envelope) != nil {
		return ""
	}
	if envelope.Meta.Msg != "" {
		return envelope.Meta.Msg
	}
	return envelope.Message
}

// checkMeta rejects a 200 response whose meta block reports a failure
func checkMeta(meta models.Meta) error {
	if meta.Status == 0 || (meta.Status >= 200 && meta.Status < 300) {
		return nil
	}
	message := meta.Msg
	if message == "" {
		message = http.StatusText(meta.Status)
	}
	return &errors.Error{
		Type:    errors.FromStatusCode(meta.Status),
		Message: message,
		Code:    meta.Status,
	}
}
