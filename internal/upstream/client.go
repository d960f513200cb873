// Package upstream is the HTTP client for the external search service.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/sustainsearch/midori/internal/models"
	"go.uber.org/zap"
)

// Searcher issues search requests. The controller depends on this interface
// so tests can substitute a fake service.
type Searcher interface {
	Search(ctx context.Context, req models.SearchRequest) (*models.SearchResponse, error)
}

// Client calls the search service over HTTP. The base URL can be swapped at
// runtime when the config file is reloaded.
type Client struct {
	mu      sync.RWMutex
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates a client for the search service at baseURL.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// BaseURL returns the current base URL.
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// SetBaseURL swaps the base URL. In-flight requests keep the URL they
// started with.
func (c *Client) SetBaseURL(baseURL string) {
	c.mu.Lock()
	c.baseURL = baseURL
	c.mu.Unlock()
}

// Search issues one GET /search request. Transport failures, non-2xx
// statuses, and undecodable bodies are all returned as errors; the response
// body's missing "results" key decodes to an empty list, which is a valid
// empty result set, not an error.
func (c *Client) Search(ctx context.Context, req models.SearchRequest) (*models.SearchResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", req.Query)
	params.Set("mode", string(req.Mode))
	params.Set("sentiment_filter", string(req.Filter))
	params.Set("limit", strconv.Itoa(req.Limit))
	endpoint := c.BaseURL() + "/search?" + params.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("search service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("search service returned status %d", resp.StatusCode)
	}

	var body models.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	c.logger.Debug("search completed",
		zap.String("query", req.Query),
		zap.String("mode", string(req.Mode)),
		zap.String("sentiment_filter", string(req.Filter)),
		zap.Int("results", len(body.Results)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return &body, nil
}
