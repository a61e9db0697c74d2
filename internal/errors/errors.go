package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tessro/coverclock/internal/core"
)

// Error types for the failure classes a tick can run into. None of them is
// fatal: each is handled inside the tick that produced it.
var (
	ErrConnectivity     = errors.New("playback service unreachable")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrAuthPending      = errors.New("authorization not completed")
	ErrUnauthorized     = errors.New("access token rejected")
	ErrForbidden        = errors.New("request forbidden")
	ErrRateLimited      = errors.New("rate limited")
	ErrTransient        = errors.New("transient protocol error")
	ErrFetch            = errors.New("download failed")
	ErrTimeSource       = errors.New("local time unavailable")
	ErrConfigNotFound   = errors.New("config file not found")
	ErrInvalidConfig    = errors.New("invalid configuration")
)

// CoverError wraps an error with a user-friendly suggestion.
type CoverError struct {
	Err        error
	Suggestion string
}

func (e *CoverError) Error() string {
	return e.Err.Error()
}

func (e *CoverError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &CoverError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// Classify maps a playback status onto the error taxonomy. Playing and
// Inactive are healthy outcomes and map to nil.
func Classify(status core.PlaybackStatus) error {
	switch status {
	case core.StatusUnauthorized:
		return ErrUnauthorized
	case core.StatusForbidden:
		return ErrForbidden
	case core.StatusRateLimited:
		return ErrRateLimited
	case core.StatusTransientError, core.StatusUnknown:
		return ErrTransient
	}
	return nil
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	var coverErr *CoverError
	if errors.As(err, &coverErr) && coverErr.Suggestion != "" {
		return coverErr.Suggestion
	}

	errStr := strings.ToLower(err.Error())

	if errors.Is(err, ErrNotAuthenticated) || errors.Is(err, ErrAuthPending) ||
		errors.Is(err, ErrUnauthorized) || strings.Contains(errStr, "invalid access token") {
		return "Run 'coverclock auth login' and put the printed refresh token in the config"
	}

	if errors.Is(err, ErrForbidden) {
		return "Check the client ID and the scopes granted to the app; logging in again will not help"
	}

	if errors.Is(err, ErrRateLimited) || strings.Contains(errStr, "429") {
		return "Too many requests. Increase timing.tick_interval"
	}

	if errors.Is(err, ErrConnectivity) || errors.Is(err, ErrTransient) ||
		strings.Contains(errStr, "network") || strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "connection refused") {
		return "Check the network connection; the display keeps showing the clock meanwhile"
	}

	if errors.Is(err, ErrConfigNotFound) || errors.Is(err, ErrInvalidConfig) {
		return "Run 'coverclock config init' to write a default configuration"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}
