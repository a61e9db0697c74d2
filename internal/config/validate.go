package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Spotify.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("spotify: %w", err))
	}
	if err := c.Display.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("display: %w", err))
	}
	if err := c.Color.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("color: %w", err))
	}
	if err := c.Timing.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("timing: %w", err))
	}
	if err := c.Calendar.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("calendar: %w", err))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}

	return errors.Join(errs...)
}

// Validate checks SpotifyConfig for errors.
func (c *SpotifyConfig) Validate() error {
	if c.RedirectURI != "" {
		if _, err := url.Parse(c.RedirectURI); err != nil {
			return fmt.Errorf("invalid redirect_uri: %w", err)
		}
	}
	if c.CallbackPort < 0 || c.CallbackPort > 65535 {
		return fmt.Errorf("invalid callback_port: %d", c.CallbackPort)
	}
	if c.ImageIndex < 0 {
		return errors.New("image_index must be non-negative")
	}
	return nil
}

// Validate checks DisplayConfig for errors.
func (c *DisplayConfig) Validate() error {
	if c.PanelWidth < 0 || c.PanelHeight < 0 {
		return errors.New("panel dimensions must be non-negative")
	}
	switch c.Renderer {
	case "", "image", "terminal":
		// valid
	default:
		return fmt.Errorf("invalid renderer: %s (must be image or terminal)", c.Renderer)
	}
	if c.TimeZone != "" {
		if _, err := time.LoadLocation(c.TimeZone); err != nil {
			return fmt.Errorf("invalid time_zone: %w", err)
		}
	}
	return nil
}

// Validate checks ColorConfig for errors. Only the night boundaries are
// configurable; the ramp hours stay at 6, 12, 18 and 22.
func (c *ColorConfig) Validate() error {
	if c.NightStart < 0 || c.NightStart > 23 || c.NightEnd < 0 || c.NightEnd > 23 {
		return errors.New("night_start and night_end must be between 0 and 23")
	}
	if !(c.NightTemp < c.MinTemp && c.MinTemp < c.MaxTemp) {
		return fmt.Errorf("temperatures must satisfy night_temp < min_temp < max_temp (got %.0f, %.0f, %.0f)",
			c.NightTemp, c.MinTemp, c.MaxTemp)
	}
	if c.NightTemp <= 0 {
		return errors.New("night_temp must be positive")
	}
	if c.NightDim < 0 || c.NightDim > 1 {
		return errors.New("night_dim must be between 0 and 1")
	}
	return nil
}

// Validate checks TimingConfig for errors.
func (c *TimingConfig) Validate() error {
	if c.TickInterval < 0 || c.CalendarInterval < 0 || c.ProbeTimeout < 0 ||
		c.AuthTimeout < 0 || c.AuthPollMS < 0 || c.FetchTimeout < 0 {
		return errors.New("intervals and timeouts must be non-negative")
	}
	return nil
}

// Validate checks CalendarConfig for errors.
func (c *CalendarConfig) Validate() error {
	if c.Enabled && c.URL == "" {
		return errors.New("url is required when the calendar is enabled")
	}
	if c.URL != "" {
		if _, err := url.Parse(c.URL); err != nil {
			return fmt.Errorf("invalid url: %w", err)
		}
	}
	return nil
}

// Validate checks LogConfig for errors.
func (c *LogConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Level)
	}
	switch c.Format {
	case "", "json", "console":
		// valid
	default:
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Format)
	}
	return nil
}
