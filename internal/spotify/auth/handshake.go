package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	cerrors "github.com/tessro/coverclock/internal/errors"
	"go.uber.org/zap"
)

// refreshRetryInterval throttles refresh attempts made from Pump.
const refreshRetryInterval = 5 * time.Second

// Opener shows an authorization URL to the user.
type Opener func(url string) error

// Handshake authorizes the display loop. With a configured refresh token it
// completes on the first Pump; otherwise it serves the redirect URI locally
// and exchanges the code once the user has approved access.
type Handshake struct {
	logger *zap.Logger
	cfg    *Config
	tokens *TokenClient
	clock  clockwork.Clock
	open   Opener

	mu          sync.Mutex
	token       *Token
	pkce        *PKCE
	server      *CallbackServer
	authURL     string
	lastRefresh time.Time
}

// NewHandshake creates a handshake. open may be nil.
func NewHandshake(logger *zap.Logger, cfg *Config, tokens *TokenClient, clock clockwork.Clock, open Opener) *Handshake {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	tokens.now = clock.Now
	return &Handshake{
		logger: logger,
		cfg:    cfg,
		tokens: tokens,
		clock:  clock,
		open:   open,
	}
}

// BeginHandshake starts the callback server and publishes the authorization
// URL. It does nothing when a refresh token is configured.
func (h *Handshake) BeginHandshake(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cfg.RefreshToken != "" {
		h.logger.Info("Using configured refresh token")
		return nil
	}
	if h.server != nil {
		return nil
	}

	pkce, err := NewPKCE()
	if err != nil {
		return fmt.Errorf("failed to generate PKCE: %w", err)
	}
	server, err := NewCallbackServer(h.cfg.CallbackPort)
	if err != nil {
		return err
	}
	server.Start()

	h.pkce = pkce
	h.server = server
	h.authURL = h.cfg.BuildAuthURL(pkce)

	h.logger.Info("Open this URL to authorize coverclock",
		zap.String("url", h.authURL), zap.Int("callback_port", server.Port()))
	if h.open != nil {
		if err := h.open(h.authURL); err != nil {
			h.logger.Debug("Could not open browser", zap.Error(err))
		}
	}
	return nil
}

// AuthURL returns the URL published by BeginHandshake.
func (h *Handshake) AuthURL() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.authURL
}

// IsAuthenticated reports whether an access token has been obtained.
func (h *Handshake) IsAuthenticated() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.token != nil
}

// Pump advances the handshake by at most one network exchange.
func (h *Handshake) Pump(ctx context.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.token != nil {
		return
	}

	if h.cfg.RefreshToken != "" {
		if !h.lastRefresh.IsZero() && h.clock.Since(h.lastRefresh) < refreshRetryInterval {
			return
		}
		h.lastRefresh = h.clock.Now()
		if err := h.refreshLocked(ctx, h.cfg.RefreshToken); err != nil {
			h.logger.Warn("Refresh token rejected", zap.Error(err))
			return
		}
		h.logger.Info("Authorized with refresh token")
		return
	}

	if h.server == nil {
		return
	}
	result, ok := h.server.Poll()
	if !ok {
		return
	}
	if result.Error != "" {
		h.logger.Warn("Authorization denied", zap.String("error", result.Error))
		return
	}
	if !h.pkce.MatchesState(result.State) {
		h.logger.Warn("Ignoring callback with unexpected state")
		return
	}

	token, err := h.tokens.ExchangeCode(ctx, result.Code, h.cfg.RedirectURI, h.pkce.Verifier)
	if err != nil {
		h.logger.Warn("Code exchange failed", zap.Error(err))
		return
	}
	h.token = token
	h.logger.Info("Authorization complete")
	_ = h.shutdownLocked()
}

// RefreshAccessToken obtains a new access token with the current refresh
// token.
func (h *Handshake) RefreshAccessToken(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	refresh := h.cfg.RefreshToken
	if h.token != nil && h.token.RefreshToken != "" {
		refresh = h.token.RefreshToken
	}
	if refresh == "" {
		return cerrors.ErrNotAuthenticated
	}
	return h.refreshLocked(ctx, refresh)
}

// AccessToken returns a usable access token, refreshing it when it is about
// to expire.
func (h *Handshake) AccessToken(ctx context.Context) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.token == nil {
		return "", cerrors.ErrNotAuthenticated
	}
	if h.token.IsExpired(h.clock.Now()) && h.token.RefreshToken != "" {
		if err := h.refreshLocked(ctx, h.token.RefreshToken); err != nil {
			return "", err
		}
	}
	return h.token.AccessToken, nil
}

// Token returns a copy of the current token, or nil.
func (h *Handshake) Token() *Token {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.token == nil {
		return nil
	}
	t := *h.token
	return &t
}

// Close stops the callback server if it is still running.
func (h *Handshake) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.shutdownLocked()
}

func (h *Handshake) refreshLocked(ctx context.Context, refreshToken string) error {
	token, err := h.tokens.Refresh(ctx, refreshToken)
	if err != nil {
		return fmt.Errorf("failed to refresh token: %w", err)
	}
	h.token = token
	return nil
}

func (h *Handshake) shutdownLocked() error {
	if h.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	err := h.server.Shutdown(ctx)
	h.server = nil
	return err
}
