package config

import "time"

// Config is the root configuration structure.
type Config struct {
	Spotify  SpotifyConfig  `toml:"spotify" json:"spotify"`
	Display  DisplayConfig  `toml:"display" json:"display"`
	Color    ColorConfig    `toml:"color" json:"color"`
	Timing   TimingConfig   `toml:"timing" json:"timing"`
	Calendar CalendarConfig `toml:"calendar" json:"calendar"`
	Probe    ProbeConfig    `toml:"probe" json:"probe"`
	Assets   AssetsConfig   `toml:"assets" json:"assets"`
	Metrics  MetricsConfig  `toml:"metrics" json:"metrics"`
	Log      LogConfig      `toml:"log" json:"log"`
}

// SpotifyConfig holds Spotify API settings.
type SpotifyConfig struct {
	ClientID     string `toml:"client_id" json:"client_id"`
	ClientSecret string `toml:"client_secret" json:"-"`
	RefreshToken string `toml:"refresh_token" json:"-"`
	RedirectURI  string `toml:"redirect_uri" json:"redirect_uri"`
	CallbackPort int    `toml:"callback_port" json:"callback_port"`
	// ImageIndex selects the artwork rendition; 2 is the 64px one.
	ImageIndex int `toml:"image_index" json:"image_index"`
	// Market is sent with playback queries; "from_token" uses the account's country.
	Market string `toml:"market" json:"market"`
}

// DisplayConfig describes the panel and how frames are rendered.
type DisplayConfig struct {
	PanelWidth    int    `toml:"panel_width" json:"panel_width"`
	PanelHeight   int    `toml:"panel_height" json:"panel_height"`
	DefaultClockY int    `toml:"default_clock_y" json:"default_clock_y"`
	ClockX        int    `toml:"clock_x" json:"clock_x"`
	Renderer      string `toml:"renderer" json:"renderer"`
	Output        string `toml:"output" json:"output"`
	TimeZone      string `toml:"time_zone" json:"time_zone"`
}

// ColorConfig holds the circadian color model parameters.
type ColorConfig struct {
	NightStart int     `toml:"night_start" json:"night_start"`
	NightEnd   int     `toml:"night_end" json:"night_end"`
	NightTemp  float64 `toml:"night_temp" json:"night_temp"`
	MinTemp    float64 `toml:"min_temp" json:"min_temp"`
	MaxTemp    float64 `toml:"max_temp" json:"max_temp"`
	NightDim   float64 `toml:"night_dim" json:"night_dim"`
}

// TimingConfig holds loop and network timing. Values are in seconds unless
// the key says otherwise.
type TimingConfig struct {
	TickInterval     int `toml:"tick_interval" json:"tick_interval"`
	CalendarInterval int `toml:"calendar_interval" json:"calendar_interval"`
	ProbeTimeout     int `toml:"probe_timeout" json:"probe_timeout"`
	AuthTimeout      int `toml:"auth_timeout" json:"auth_timeout"`
	AuthPollMS       int `toml:"auth_poll_ms" json:"auth_poll_ms"`
	FetchTimeout     int `toml:"fetch_timeout" json:"fetch_timeout"`
}

// CalendarConfig enables the calendar block under the clock.
type CalendarConfig struct {
	Enabled bool   `toml:"enabled" json:"enabled"`
	URL     string `toml:"url" json:"url"`
}

// ProbeConfig holds the connectivity check endpoint.
type ProbeConfig struct {
	URL string `toml:"url" json:"url"`
}

// AssetsConfig holds the artwork slot location.
type AssetsConfig struct {
	Path string `toml:"path" json:"path"`
}

// MetricsConfig holds the Prometheus endpoint; empty listen disables it.
type MetricsConfig struct {
	Listen string `toml:"listen" json:"listen"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `toml:"level" json:"level"`
	File   string `toml:"file" json:"file"`
	Format string `toml:"format" json:"format"`
}

func seconds(n int) time.Duration { return time.Duration(n) * time.Second }

// Tick returns the pause between two ticks.
func (t TimingConfig) Tick() time.Duration { return seconds(t.TickInterval) }

// Calendar returns the minimum interval between calendar fetches.
func (t TimingConfig) Calendar() time.Duration { return seconds(t.CalendarInterval) }

// Probe returns the connectivity probe timeout.
func (t TimingConfig) Probe() time.Duration { return seconds(t.ProbeTimeout) }

// Auth returns the bound of the handshake wait loop.
func (t TimingConfig) Auth() time.Duration { return seconds(t.AuthTimeout) }

// AuthPoll returns the handshake poll interval.
func (t TimingConfig) AuthPoll() time.Duration { return time.Duration(t.AuthPollMS) * time.Millisecond }

// Fetch returns the timeout for artwork and calendar downloads.
func (t TimingConfig) Fetch() time.Duration { return seconds(t.FetchTimeout) }
