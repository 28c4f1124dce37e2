// Package remote provides a client for HTTP catalog endpoints.
package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/vidbox/internal/domain/video"
	"github.com/osa030/vidbox/internal/infra/catalog"
)

// APIKeyHeader carries the API key, when configured.
const APIKeyHeader = "X-API-Key"

// Client fetches video catalogs over HTTP.
type Client struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

// Config represents remote client configuration.
type Config struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// VideosResponse is the catalog document served by the endpoint.
type VideosResponse struct {
	Videos []catalog.Entry `json:"videos"`
}

// APIError represents an error body returned by the endpoint.
type APIError struct {
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// New creates a new remote catalog client.
func New(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("catalog URL is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		url:        cfg.URL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// FetchVideos downloads and validates the catalog.
func (c *Client) FetchVideos(ctx context.Context) ([]video.Video, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	// Check for API errors
	var apiError APIError
	if err := json.Unmarshal(body, &apiError); err == nil && apiError.Error != 0 {
		return nil, errors.Errorf("catalog API error %d: %s", apiError.Error, apiError.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected status: %s", resp.Status)
	}

	var response VideosResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "failed to parse response")
	}

	videos, err := catalog.EntriesToVideos(response.Videos)
	if err != nil {
		return nil, err
	}

	zlog.Debug().Msgf("remote: fetched catalog: url=%s count=%d", c.url, len(videos))
	return videos, nil
}
