package calendar

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const _maxBodySize = 64 * 1024

// HTTPFetcher reads newline separated calendar lines from a URL.
type HTTPFetcher struct {
	logger *zap.Logger
	client *http.Client
	url    string
}

// NewHTTPFetcher creates a fetcher for url.
func NewHTTPFetcher(logger *zap.Logger, url string, timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		logger: logger,
		client: &http.Client{Timeout: timeout},
		url:    url,
	}
}

// Fetch returns the response body with trailing line breaks removed. Any
// failure is logged and reported as "".
func (f *HTTPFetcher) Fetch(ctx context.Context) string {
	f.logger.Debug("Fetching calendar", zap.String("url", f.url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		f.logger.Warn("Invalid calendar request", zap.Error(err))
		return ""
	}

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Warn("Calendar fetch failed", zap.Error(err))
		return ""
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		f.logger.Warn("Calendar fetch failed", zap.Int("status", resp.StatusCode))
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, _maxBodySize))
	if err != nil {
		f.logger.Warn("Failed to read calendar body", zap.Error(err))
		return ""
	}

	text := strings.TrimRight(string(body), "\r\n")
	f.logger.Debug("Calendar received", zap.Int("bytes", len(text)))
	return text
}
