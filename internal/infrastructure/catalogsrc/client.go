package catalogsrc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/winepair/backend/internal/domain"
	"github.com/winepair/backend/internal/logging"
	"golang.org/x/time/rate"
)

const maxAttempts = 3

// Client fetches a JSON catalog document over HTTP
type Client struct {
	httpClient  *http.Client
	url         string
	rateLimiter *rate.Limiter
	backoff     func(attempt int) time.Duration
	debug       bool
}

// NewClient creates a catalog client for url
func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		url:         url,
		rateLimiter: rate.NewLimiter(rate.Limit(1), 3),
		backoff:     exponentialBackoff,
	}
}

// SetDebug enables per-attempt logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// exponentialBackoff returns 500ms, 1s, 2s, ... for attempts 1, 2, 3, ...
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(500*(1<<(attempt-1))) * time.Millisecond
}

// Load fetches and decodes the catalog, retrying transient failures
func (c *Client) Load(ctx context.Context) (*domain.CatalogData, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		data, retry, err := c.fetch(ctx)
		if err == nil {
			logging.Info().Str("url", c.url).Int("wines", len(data.Wines)).Int("foods", len(data.Foods)).Msg("catalog fetched")
			return data, nil
		}
		if !retry {
			return nil, err
		}

		lastErr = err
		if c.debug {
			logging.Warn().Err(err).Int("attempt", attempt).Str("url", c.url).Msg("catalog fetch failed")
		}

		if attempt < maxAttempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.backoff(attempt)):
			}
		}
	}

	logging.Error().Err(lastErr).Str("url", c.url).Msg("all catalog fetch attempts failed")
	return nil, lastErr
}

// fetch performs one request. retry reports whether the failure is transient.
func (c *Client) fetch(ctx context.Context) (data *domain.CatalogData, retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "WinePair/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("%w: %v", domain.ErrCatalogSourceFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("%w: read body: %v", domain.ErrCatalogSourceFailure, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return nil, false, fmt.Errorf("%w: status %d", domain.ErrCatalogSourceFailure, resp.StatusCode)
	default:
		return nil, true, fmt.Errorf("%w: status %d", domain.ErrCatalogSourceFailure, resp.StatusCode)
	}

	var decoded domain.CatalogData
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, false, fmt.Errorf("%w: decode: %v", domain.ErrCatalogInvalid, err)
	}
	return &decoded, false, nil
}

var _ domain.CatalogSource = (*Client)(nil)
