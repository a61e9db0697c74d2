// Package auth implements the Spotify authorization code flow with PKCE and
// the refresh-token flow used by the display loop.
package auth

import (
	"net/url"
	"strings"
)

const (
	// SpotifyAuthURL is the Spotify authorization endpoint.
	SpotifyAuthURL = "https://accounts.spotify.com/authorize"

	// SpotifyTokenURL is the Spotify token endpoint.
	SpotifyTokenURL = "https://accounts.spotify.com/api/token"

	// DefaultRedirectURI is the default callback URI for the local server.
	DefaultRedirectURI = "http://127.0.0.1:8888/callback"

	// DefaultCallbackPort matches DefaultRedirectURI.
	DefaultCallbackPort = 8888
)

// DefaultScopes are the scopes needed to read what is playing.
var DefaultScopes = []string{
	"user-read-currently-playing",
	"user-read-playback-state",
}

// Config holds the OAuth configuration.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	CallbackPort int
	Scopes       []string
	// RefreshToken, when set, lets the handshake complete without a browser.
	RefreshToken string
	AuthURL      string
	TokenURL     string
}

// NewConfig creates a new OAuth configuration with defaults.
func NewConfig(clientID string) *Config {
	return &Config{
		ClientID:     clientID,
		RedirectURI:  DefaultRedirectURI,
		CallbackPort: DefaultCallbackPort,
		Scopes:       DefaultScopes,
		AuthURL:      SpotifyAuthURL,
		TokenURL:     SpotifyTokenURL,
	}
}

// AuthURLParams contains the parameters for building an authorization URL.
type AuthURLParams struct {
	Endpoint    string
	ClientID    string
	RedirectURI string
	Scopes      []string
}

// BuildAuthURL constructs the authorization URL with PKCE parameters. An
// empty endpoint uses SpotifyAuthURL.
func BuildAuthURL(params AuthURLParams, pkce *PKCE) string {
	endpoint := params.Endpoint
	if endpoint == "" {
		endpoint = SpotifyAuthURL
	}
	u, _ := url.Parse(endpoint)

	q := u.Query()
	q.Set("client_id", params.ClientID)
	q.Set("response_type", "code")
	q.Set("redirect_uri", params.RedirectURI)
	q.Set("code_challenge_method", "S256")
	q.Set("code_challenge", pkce.Challenge)
	q.Set("state", pkce.State)
	if len(params.Scopes) > 0 {
		q.Set("scope", strings.Join(params.Scopes, " "))
	}

	u.RawQuery = q.Encode()
	return u.String()
}

// BuildAuthURL builds an auth URL from the configuration.
func (c *Config) BuildAuthURL(pkce *PKCE) string {
	return BuildAuthURL(AuthURLParams{
		Endpoint:    c.AuthURL,
		ClientID:    c.ClientID,
		RedirectURI: c.RedirectURI,
		Scopes:      c.Scopes,
	}, pkce)
}
