package core

//go:generate mockgen -source=player.go -destination=mocks/mock_player.go -package=mocks

import "context"

// ConnectivityProbe reports whether the playback service can be reached.
type ConnectivityProbe interface {
	IsReachable(ctx context.Context) bool
}

// AuthCollaborator drives the external authorization handshake.
type AuthCollaborator interface {
	// BeginHandshake starts the handshake. It is called once per session.
	BeginHandshake(ctx context.Context) error
	IsAuthenticated() bool
	// Pump advances the handshake; it is called on every poll iteration.
	Pump(ctx context.Context)
	RefreshAccessToken(ctx context.Context) error
}

// PlaybackQuery asks the playback service what is currently playing.
// Transport timeouts are reported as a response whose payload message is
// TimeoutMessage; other transport failures are returned as errors.
type PlaybackQuery interface {
	CurrentlyPlaying(ctx context.Context) (PlaybackResponse, error)
}

// AssetFetcher downloads url into the single fixed artwork slot.
type AssetFetcher interface {
	Fetch(ctx context.Context, url string) error
	Path() string
}

// CalendarFetcher returns newline separated calendar lines, "" when empty.
type CalendarFetcher interface {
	Fetch(ctx context.Context) string
}

// TextMeasurer returns the rendered height of text in pixels.
type TextMeasurer interface {
	Measure(text string, font FontHandle) int
}

// Renderer draws frames into a back buffer and flips it on Present.
type Renderer interface {
	Draw(frame DisplayFrame) error
	DrawLog(lines []string) error
	Present() error
}
