// Package circadian maps the time of day to a clock color that follows the
// color temperature of daylight.
package circadian

import (
	"math"

	"github.com/tessro/coverclock/internal/core"
)

// Ramp boundaries in hours. They do not follow Config.NightStart or
// Config.NightEnd; moving the night window leaves the ramps where they are.
const (
	morningStart   = 6.0
	noon           = 12.0
	afternoonEnd   = 18.0
	eveningEnd     = 22.0
	morningHours   = noon - morningStart
	afternoonHours = afternoonEnd - noon
	eveningHours   = eveningEnd - afternoonEnd
)

// Config holds the model parameters. Temperatures are in Kelvin.
type Config struct {
	NightStart float64
	NightEnd   float64
	NightTemp  float64
	MinTemp    float64
	MaxTemp    float64
	NightDim   float64
}

// DefaultConfig returns the stock parameters.
func DefaultConfig() Config {
	return Config{
		NightStart: 22,
		NightEnd:   6,
		NightTemp:  1500,
		MinTemp:    2000,
		MaxTemp:    6500,
		NightDim:   0.3,
	}
}

// Model computes clock colors. It holds no mutable state.
type Model struct {
	cfg Config
}

// New creates a color model.
func New(cfg Config) *Model {
	return &Model{cfg: cfg}
}

// IsNight reports whether timeOfDay (fractional hours) is in the night window.
func (m *Model) IsNight(timeOfDay float64) bool {
	return timeOfDay < m.cfg.NightEnd || timeOfDay >= m.cfg.NightStart
}

// Temperature returns the target color temperature for timeOfDay.
func (m *Model) Temperature(timeOfDay float64) float64 {
	c := m.cfg
	switch {
	case m.IsNight(timeOfDay):
		return c.NightTemp
	case timeOfDay < noon:
		return c.MinTemp + (c.MaxTemp-c.MinTemp)*((timeOfDay-morningStart)/morningHours)
	case timeOfDay < afternoonEnd:
		return c.MaxTemp - (c.MaxTemp-c.MinTemp)*((timeOfDay-noon)/afternoonHours)
	default:
		return c.MinTemp - (c.MinTemp-c.NightTemp)*((timeOfDay-afternoonEnd)/eveningHours)
	}
}

// KelvinToRGB approximates the color of a black body at kelvin. Channels are
// clamped to [0, 255].
func KelvinToRGB(kelvin float64) (r, g, b float64) {
	t := kelvin / 100

	if t <= 66 {
		r = 255
		g = 99.4708025861*math.Log(t) - 161.1195681661
		if t <= 19 {
			b = 0
		} else {
			b = 138.5177312231*math.Log(t-10) - 305.0447927307
		}
	} else {
		r = 329.698727446 * math.Pow(t-60, -0.1332047592)
		g = 288.1221695283 * math.Pow(t-60, -0.0755148492)
		b = 255
	}

	return clamp(r), clamp(g), clamp(b)
}

func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(255, math.Max(0, v))
}

// Channels returns the unrounded color for hour:minute, dimmed at night.
func (m *Model) Channels(hour, minute int) (r, g, b float64) {
	timeOfDay := float64(hour) + float64(minute)/60

	r, g, b = KelvinToRGB(m.Temperature(timeOfDay))
	if m.IsNight(timeOfDay) {
		r *= m.cfg.NightDim
		g *= m.cfg.NightDim
		b *= m.cfg.NightDim
	}
	return r, g, b
}

// ColorFor returns the clock color for hour (0-23) and minute (0-59).
func (m *Model) ColorFor(hour, minute int) core.ColorSample {
	r, g, b := m.Channels(hour, minute)
	return core.ColorSample{
		Red:   int(math.Round(r)),
		Green: int(math.Round(g)),
		Blue:  int(math.Round(b)),
	}
}
