package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// expiryMargin treats tokens as expired slightly before the server does.
const expiryMargin = 60 * time.Second

// Token represents Spotify OAuth tokens.
type Token struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type"`
	Scope        string    `json:"scope"`
	ExpiresIn    int       `json:"expires_in"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// IsExpired reports whether the token expires within the margin of now.
func (t *Token) IsExpired(now time.Time) bool {
	return now.Add(expiryMargin).After(t.ExpiresAt)
}

// tokenResponse is the raw response from the token endpoint.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	Scope        string `json:"scope"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	Error        string `json:"error"`
	ErrorDesc    string `json:"error_description"`
}

// TokenClient exchanges codes and refresh tokens at the token endpoint.
type TokenClient struct {
	url          string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	now          func() time.Time
}

// NewTokenClient creates a client for cfg.TokenURL. A client secret, when
// configured, is sent with HTTP basic auth.
func NewTokenClient(cfg *Config, timeout time.Duration) *TokenClient {
	endpoint := cfg.TokenURL
	if endpoint == "" {
		endpoint = SpotifyTokenURL
	}
	return &TokenClient{
		url:          endpoint,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		httpClient:   &http.Client{Timeout: timeout},
		now:          time.Now,
	}
}

// ExchangeCode exchanges an authorization code for tokens.
func (c *TokenClient) ExchangeCode(ctx context.Context, code, redirectURI, codeVerifier string) (*Token, error) {
	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("code", code)
	data.Set("redirect_uri", redirectURI)
	data.Set("client_id", c.clientID)
	data.Set("code_verifier", codeVerifier)

	return c.requestToken(ctx, data)
}

// Refresh uses a refresh token to get a new access token. The returned
// token keeps refreshToken when the server does not rotate it.
func (c *TokenClient) Refresh(ctx context.Context, refreshToken string) (*Token, error) {
	data := url.Values{}
	data.Set("grant_type", "refresh_token")
	data.Set("refresh_token", refreshToken)
	data.Set("client_id", c.clientID)

	token, err := c.requestToken(ctx, data)
	if err != nil {
		return nil, err
	}
	if token.RefreshToken == "" {
		token.RefreshToken = refreshToken
	}
	return token, nil
}

func (c *TokenClient) requestToken(ctx context.Context, data url.Values) (*Token, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if c.clientSecret != "" {
		req.SetBasicAuth(c.clientID, c.clientSecret)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if tokenResp.Error != "" {
		return nil, fmt.Errorf("token error: %s - %s", tokenResp.Error, tokenResp.ErrorDesc)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return &Token{
		AccessToken:  tokenResp.AccessToken,
		TokenType:    tokenResp.TokenType,
		Scope:        tokenResp.Scope,
		ExpiresIn:    tokenResp.ExpiresIn,
		RefreshToken: tokenResp.RefreshToken,
		ExpiresAt:    c.now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second),
	}, nil
}
