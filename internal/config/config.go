package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Load reads configuration from standard locations with environment overrides.
// Search order: ~/.coverclockrc, $XDG_CONFIG_HOME/coverclock/config.toml, ~/.config/coverclock/config.toml
func Load() (*Config, error) {
	path := findConfigFile()
	if path == "" {
		cfg := Default()
		applyEnvOverrides(cfg)
		return cfg, nil
	}
	return LoadFrom(path)
}

// LoadFrom reads configuration from a specific file path. Keys missing from
// the file keep their default values.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// Path returns the file Load would read, or the preferred location for a new
// file when none exists yet.
func Path() string {
	if p := findConfigFile(); p != "" {
		return p
	}
	return filepath.Join(xdgConfigHome(), "coverclock", "config.toml")
}

func xdgConfigHome() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config")
}

// findConfigFile returns the first existing config file path.
func findConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	paths := []string{
		filepath.Join(home, ".coverclockrc"),
		filepath.Join(xdgConfigHome(), "coverclock", "config.toml"),
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

func envInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			*dst = i
		}
	}
}

func envFloat(key string, dst *float64) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func envString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	// Spotify
	envString("COVERCLOCK_SPOTIFY_CLIENT_ID", &cfg.Spotify.ClientID)
	envString("COVERCLOCK_SPOTIFY_CLIENT_SECRET", &cfg.Spotify.ClientSecret)
	envString("COVERCLOCK_SPOTIFY_REFRESH_TOKEN", &cfg.Spotify.RefreshToken)
	envString("COVERCLOCK_SPOTIFY_REDIRECT_URI", &cfg.Spotify.RedirectURI)
	envString("COVERCLOCK_SPOTIFY_MARKET", &cfg.Spotify.Market)

	// Display
	envString("COVERCLOCK_DISPLAY_RENDERER", &cfg.Display.Renderer)
	envString("COVERCLOCK_DISPLAY_OUTPUT", &cfg.Display.Output)
	envString("COVERCLOCK_DISPLAY_TIME_ZONE", &cfg.Display.TimeZone)
	envInt("COVERCLOCK_DISPLAY_PANEL_HEIGHT", &cfg.Display.PanelHeight)

	// Color
	envInt("COVERCLOCK_COLOR_NIGHT_START", &cfg.Color.NightStart)
	envInt("COVERCLOCK_COLOR_NIGHT_END", &cfg.Color.NightEnd)
	envFloat("COVERCLOCK_COLOR_NIGHT_DIM", &cfg.Color.NightDim)

	// Timing
	envInt("COVERCLOCK_TIMING_TICK_INTERVAL", &cfg.Timing.TickInterval)
	envInt("COVERCLOCK_TIMING_CALENDAR_INTERVAL", &cfg.Timing.CalendarInterval)

	// Calendar
	envString("COVERCLOCK_CALENDAR_URL", &cfg.Calendar.URL)
	if v := os.Getenv("COVERCLOCK_CALENDAR_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Calendar.Enabled = b
		}
	}

	// Metrics
	envString("COVERCLOCK_METRICS_LISTEN", &cfg.Metrics.Listen)

	// Log
	envString("COVERCLOCK_LOG_LEVEL", &cfg.Log.Level)
	envString("COVERCLOCK_LOG_FILE", &cfg.Log.File)
}
