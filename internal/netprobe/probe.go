// Package netprobe checks internet reachability with a lightweight
// generate_204 style endpoint.
package netprobe

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultURL     = "http://clients3.google.com/generate_204"
	DefaultTimeout = 3 * time.Second
)

// Probe reports the network reachable when url answers 204 No Content.
type Probe struct {
	logger *zap.Logger
	client *http.Client
	url    string
}

// New creates a probe. Empty url and non-positive timeout use the defaults.
func New(logger *zap.Logger, url string, timeout time.Duration) *Probe {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Probe{
		logger: logger,
		client: &http.Client{
			Timeout: timeout,
			// Captive portals answer with redirects; those are not connectivity.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		url: url,
	}
}

// IsReachable issues one GET and reports whether it returned 204.
func (p *Probe) IsReachable(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		p.logger.Warn("Invalid probe request", zap.Error(err))
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Debug("Connectivity probe failed", zap.Error(err))
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNoContent {
		p.logger.Debug("Connectivity probe got unexpected status", zap.Int("status", resp.StatusCode))
		return false
	}
	return true
}
