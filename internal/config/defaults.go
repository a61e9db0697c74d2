package config

import (
	"os"
	"path/filepath"
)

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Spotify: SpotifyConfig{
			RedirectURI:  "http://127.0.0.1:8888/callback",
			CallbackPort: 8888,
			ImageIndex:   2,
			Market:       "from_token",
		},
		Display: DisplayConfig{
			PanelWidth:    64,
			PanelHeight:   64,
			DefaultClockY: 39,
			ClockX:        3,
			Renderer:      "image",
			Output:        filepath.Join(cacheDir(), "frame.png"),
			TimeZone:      "Local",
		},
		Color: ColorConfig{
			NightStart: 22,
			NightEnd:   6,
			NightTemp:  1500,
			MinTemp:    2000,
			MaxTemp:    6500,
			NightDim:   0.3,
		},
		Timing: TimingConfig{
			TickInterval:     4,
			CalendarInterval: 10,
			ProbeTimeout:     3,
			AuthTimeout:      10,
			AuthPollMS:       10,
			FetchTimeout:     10,
		},
		Probe: ProbeConfig{
			URL: "http://clients3.google.com/generate_204",
		},
		Assets: AssetsConfig{
			Path: filepath.Join(cacheDir(), "cover.jpg"),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func cacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "coverclock")
	}
	return filepath.Join(dir, "coverclock")
}

// ApplyDefaults fills in zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	d := Default()

	// Spotify
	if c.Spotify.RedirectURI == "" {
		c.Spotify.RedirectURI = d.Spotify.RedirectURI
	}
	if c.Spotify.CallbackPort == 0 {
		c.Spotify.CallbackPort = d.Spotify.CallbackPort
	}
	if c.Spotify.ImageIndex == 0 {
		c.Spotify.ImageIndex = d.Spotify.ImageIndex
	}

	// Display
	if c.Display.PanelWidth == 0 {
		c.Display.PanelWidth = d.Display.PanelWidth
	}
	if c.Display.PanelHeight == 0 {
		c.Display.PanelHeight = d.Display.PanelHeight
	}
	if c.Display.DefaultClockY == 0 {
		c.Display.DefaultClockY = d.Display.DefaultClockY
	}
	if c.Display.ClockX == 0 {
		c.Display.ClockX = d.Display.ClockX
	}
	if c.Display.Renderer == "" {
		c.Display.Renderer = d.Display.Renderer
	}
	if c.Display.Output == "" {
		c.Display.Output = d.Display.Output
	}
	if c.Display.TimeZone == "" {
		c.Display.TimeZone = d.Display.TimeZone
	}

	// Color. Hours may legitimately be 0, so only a fully zero section is
	// treated as unset.
	if c.Color == (ColorConfig{}) {
		c.Color = d.Color
	}

	// Timing
	if c.Timing.TickInterval == 0 {
		c.Timing.TickInterval = d.Timing.TickInterval
	}
	if c.Timing.CalendarInterval == 0 {
		c.Timing.CalendarInterval = d.Timing.CalendarInterval
	}
	if c.Timing.ProbeTimeout == 0 {
		c.Timing.ProbeTimeout = d.Timing.ProbeTimeout
	}
	if c.Timing.AuthTimeout == 0 {
		c.Timing.AuthTimeout = d.Timing.AuthTimeout
	}
	if c.Timing.AuthPollMS == 0 {
		c.Timing.AuthPollMS = d.Timing.AuthPollMS
	}
	if c.Timing.FetchTimeout == 0 {
		c.Timing.FetchTimeout = d.Timing.FetchTimeout
	}

	// Probe, assets
	if c.Probe.URL == "" {
		c.Probe.URL = d.Probe.URL
	}
	if c.Assets.Path == "" {
		c.Assets.Path = d.Assets.Path
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
}
