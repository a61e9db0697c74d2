// Package playback keeps the playback-service session alive and turns raw
// currently-playing responses into a PlaybackStatus once per tick.
package playback

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/tessro/coverclock/internal/core"
	cerrors "github.com/tessro/coverclock/internal/errors"
	"go.uber.org/zap"
)

const (
	DefaultAuthTimeout = 10 * time.Second
	DefaultAuthPoll    = 10 * time.Millisecond
	DefaultImageIndex  = 2
)

// SessionOutcome reports what EnsureSession achieved this tick.
type SessionOutcome int

const (
	// SessionReady means the session is authenticated.
	SessionReady SessionOutcome = iota
	// SessionDeferred means the service was unreachable. Retried next tick.
	SessionDeferred
	// SessionNotYet means the handshake has not completed in time.
	SessionNotYet
)

func (o SessionOutcome) String() string {
	switch o {
	case SessionReady:
		return "ready"
	case SessionDeferred:
		return "deferred"
	case SessionNotYet:
		return "not_yet"
	}
	return "invalid"
}

// Result is the outcome of one playback query.
type Result struct {
	Status    core.PlaybackStatus
	IsPlaying bool
	// TrackURL is the artwork URL, set only when Status is StatusPlaying
	// and the payload carried one.
	TrackURL   string
	StatusCode int
	Err        error
}

// Options tunes the controller. Zero durations and a nil clock fall back to
// the defaults.
type Options struct {
	Clock       clockwork.Clock
	Sleep       func(time.Duration)
	AuthTimeout time.Duration
	AuthPoll    time.Duration
	ImageIndex  int
}

// DefaultOptions returns the options used on the device.
func DefaultOptions() Options {
	return Options{
		AuthTimeout: DefaultAuthTimeout,
		AuthPoll:    DefaultAuthPoll,
		ImageIndex:  DefaultImageIndex,
	}
}

// Controller owns the session state and the last known isPlaying value.
// It is driven from a single goroutine and does no locking.
type Controller struct {
	logger *zap.Logger
	probe  core.ConnectivityProbe
	auth   core.AuthCollaborator
	query  core.PlaybackQuery

	clock       clockwork.Clock
	sleep       func(time.Duration)
	authTimeout time.Duration
	authPoll    time.Duration
	imageIndex  int

	state            core.SessionState
	handshakeStarted bool
	isPlaying        bool
}

// NewController creates a controller in the Unauthenticated state.
func NewController(logger *zap.Logger, probe core.ConnectivityProbe, auth core.AuthCollaborator, query core.PlaybackQuery, opts Options) *Controller {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Sleep == nil {
		opts.Sleep = opts.Clock.Sleep
	}
	if opts.AuthTimeout <= 0 {
		opts.AuthTimeout = DefaultAuthTimeout
	}
	if opts.AuthPoll <= 0 {
		opts.AuthPoll = DefaultAuthPoll
	}
	return &Controller{
		logger:      logger,
		probe:       probe,
		auth:        auth,
		query:       query,
		clock:       opts.Clock,
		sleep:       opts.Sleep,
		authTimeout: opts.AuthTimeout,
		authPoll:    opts.AuthPoll,
		imageIndex:  opts.ImageIndex,
		state:       core.SessionUnauthenticated,
	}
}

// State returns the current session state.
func (c *Controller) State() core.SessionState {
	return c.state
}

// IsPlaying returns the last known isPlaying value.
func (c *Controller) IsPlaying() bool {
	return c.isPlaying
}

// Authenticated reports whether the session reached the Authenticated state.
func (c *Controller) Authenticated() bool {
	return c.state == core.SessionAuthenticated
}

// EnsureSession advances the session state machine as far as it can this
// tick. Once Authenticated it returns SessionReady without touching any
// collaborator; a later loss of connectivity does not reset the session.
func (c *Controller) EnsureSession(ctx context.Context) SessionOutcome {
	if c.state == core.SessionAuthenticated {
		return SessionReady
	}

	if !c.probe.IsReachable(ctx) {
		c.logger.Info("Playback service unreachable, deferring session",
			zap.Stringer("state", c.state))
		return SessionDeferred
	}

	if c.state == core.SessionUnauthenticated {
		c.setState(core.SessionAuthenticating)
	}

	if c.state == core.SessionAuthenticating {
		if !c.handshakeStarted {
			if err := c.auth.BeginHandshake(ctx); err != nil {
				c.logger.Warn("Failed to begin auth handshake", zap.Error(err))
				c.setState(core.SessionUnauthenticated)
				return SessionNotYet
			}
			c.handshakeStarted = true
		}
		c.setState(core.SessionWaitingForUserAuth)
	}

	if c.waitForAuth(ctx) {
		c.setState(core.SessionAuthenticated)
		return SessionReady
	}

	c.logger.Info("Authorization not completed yet", zap.Duration("waited", c.authTimeout))
	return SessionNotYet
}

// waitForAuth pumps the handshake until it succeeds or the wait bound
// elapses.
func (c *Controller) waitForAuth(ctx context.Context) bool {
	deadline := c.clock.Now().Add(c.authTimeout)
	for {
		c.auth.Pump(ctx)
		if c.auth.IsAuthenticated() {
			return true
		}
		if !c.clock.Now().Before(deadline) || ctx.Err() != nil {
			return false
		}
		c.sleep(c.authPoll)
	}
}

func (c *Controller) setState(next core.SessionState) {
	if next == c.state {
		return
	}
	c.logger.Debug("Session state changed",
		zap.Stringer("from", c.state), zap.Stringer("to", next))
	c.state = next
}

// Poll issues the currently-playing query and classifies the response. A 401
// triggers one token refresh and one re-query; a timeout message triggers one
// re-query. Nothing else is retried.
func (c *Controller) Poll(ctx context.Context) Result {
	resp, err := c.query.CurrentlyPlaying(ctx)

	if err == nil && resp.StatusCode == http.StatusUnauthorized {
		c.logger.Info("Access token rejected, refreshing")
		if refreshErr := c.auth.RefreshAccessToken(ctx); refreshErr != nil {
			c.logger.Warn("Token refresh failed", zap.Error(refreshErr))
		}
		resp, err = c.query.CurrentlyPlaying(ctx)
	}

	if err == nil && resp.Payload.Message == core.TimeoutMessage {
		c.logger.Info("Playback query timed out, retrying")
		resp, err = c.query.CurrentlyPlaying(ctx)
	}

	if err != nil {
		c.logger.Warn("Playback query failed", zap.Error(err))
		return Result{
			Status:    core.StatusTransientError,
			IsPlaying: c.isPlaying,
			Err:       fmt.Errorf("%w: %w", cerrors.ErrTransient, err),
		}
	}

	status := c.classify(resp)
	result := Result{
		Status:     status,
		IsPlaying:  c.isPlaying,
		StatusCode: resp.StatusCode,
		Err:        cerrors.Classify(status),
	}
	if status == core.StatusPlaying {
		result.TrackURL = resp.Payload.ArtworkURL(c.imageIndex)
		if result.TrackURL == "" {
			c.logger.Debug("Playing track has no artwork at configured index",
				zap.Int("index", c.imageIndex))
		}
	}
	return result
}

func (c *Controller) classify(resp core.PlaybackResponse) core.PlaybackStatus {
	code := resp.StatusCode

	if resp.Payload.Message == core.TimeoutMessage {
		c.logger.Warn("Playback query timed out twice")
		return core.StatusTransientError
	}

	switch {
	case code == http.StatusOK:
		if resp.Payload.IsPlaying != nil {
			c.isPlaying = *resp.Payload.IsPlaying
		}
		c.logger.Debug("Playback state received", zap.Bool("is_playing", c.isPlaying))
		if c.isPlaying {
			return core.StatusPlaying
		}
		return core.StatusInactive
	case code == http.StatusCreated || code == http.StatusNoContent:
		c.isPlaying = false
		c.logger.Debug("Nothing is playing", zap.Int("status", code))
		return core.StatusInactive
	case code == http.StatusUnauthorized:
		c.logger.Warn("Access token still rejected after refresh")
		return core.StatusUnauthorized
	case code == http.StatusForbidden:
		c.logger.Warn("Playback query forbidden", zap.String("message", resp.Payload.Message))
		return core.StatusForbidden
	case code == http.StatusTooManyRequests:
		c.logger.Warn("Playback query rate limited")
		return core.StatusRateLimited
	case code == 0 || code >= http.StatusInternalServerError:
		c.logger.Warn("Playback service error", zap.Int("status", code))
		return core.StatusTransientError
	}

	c.logger.Warn("Unexpected playback response", zap.Int("status", code),
		zap.String("message", resp.Payload.Message))
	return core.StatusUnknown
}
