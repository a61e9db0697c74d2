// Package metrics exposes tick-level observability hooks.
package metrics

import "time"

// Recorder receives per-tick observations. Implementations must tolerate
// being called from the single control goroutine only.
type Recorder interface {
	ObserveTick(mode string, d time.Duration)
	IncPlaybackStatus(status string)
	IncAssetFetch(success bool)
	SetAuthenticated(ok bool)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveTick(string, time.Duration) {}
func (NoopRecorder) IncPlaybackStatus(string)          {}
func (NoopRecorder) IncAssetFetch(bool)                {}
func (NoopRecorder) SetAuthenticated(bool)             {}
