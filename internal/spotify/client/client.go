// Package client is a minimal Spotify Web API client for the endpoints the
// display reads.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const (
	// BaseURL is the Spotify Web API base URL.
	BaseURL = "https://api.spotify.com/v1"

	// DefaultTimeout bounds a single API request.
	DefaultTimeout = 10 * time.Second

	maxBodySize = 1 << 20
)

// TokenSource supplies the bearer token for each request.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Client is a Spotify API client. It does not retry; callers decide what a
// failed request means.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
	logger     *zap.Logger
}

// New creates a new Spotify client.
func New(logger *zap.Logger, tokens TokenSource, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    BaseURL,
		tokens:     tokens,
		logger:     logger,
	}
}

// SetBaseURL points the client at another API root.
func (c *Client) SetBaseURL(base string) {
	c.baseURL = base
}

// Response is a raw API response.
type Response struct {
	StatusCode int
	Body       []byte
}

// Do performs an authenticated request and returns the response whatever
// its status code. Only transport failures are errors.
func (c *Client) Do(ctx context.Context, method, path string) (*Response, error) {
	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	fullURL := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	c.logger.Debug("Spotify request", zap.String("method", method), zap.String("url", fullURL))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("Spotify response", zap.Int("status_code", resp.StatusCode), zap.Int("bytes", len(body)))
	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

// Get performs a GET request and decodes a 2xx JSON body into result.
func (c *Client) Get(ctx context.Context, path string, result any) error {
	resp, err := c.Do(ctx, http.MethodGet, path)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return ParseAPIError(resp)
	}
	if result != nil && len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

// APIError represents a Spotify API error response.
type APIError struct {
	ErrorInfo struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Spotify API error %d: %s", e.ErrorInfo.Status, e.ErrorInfo.Message)
}

// ParseAPIError builds an APIError from an error response, falling back to
// the status code when the body is not an API error document.
func ParseAPIError(resp *Response) *APIError {
	apiErr := &APIError{}
	if err := json.Unmarshal(resp.Body, apiErr); err != nil || apiErr.ErrorInfo.Status == 0 {
		apiErr.ErrorInfo.Status = resp.StatusCode
	}
	if apiErr.ErrorInfo.Message == "" {
		apiErr.ErrorInfo.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

// BuildURL builds a URL with query parameters.
func BuildURL(path string, params map[string]string) string {
	if len(params) == 0 {
		return path
	}

	u, _ := url.Parse(path)
	q := u.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String()
}
