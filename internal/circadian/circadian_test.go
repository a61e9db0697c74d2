package circadian

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorForChannelsInRange(t *testing.T) {
	m := New(DefaultConfig())

	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute++ {
			c := m.ColorFor(hour, minute)
			for _, v := range []int{c.Red, c.Green, c.Blue} {
				require.GreaterOrEqual(t, v, 0, "%02d:%02d", hour, minute)
				require.LessOrEqual(t, v, 255, "%02d:%02d", hour, minute)
			}
			require.Equal(t, c, m.ColorFor(hour, minute), "not deterministic at %02d:%02d", hour, minute)
		}
	}
}

func TestNightIsDimmedUndimmedColor(t *testing.T) {
	cfg := DefaultConfig()
	m := New(cfg)

	r, g, b := KelvinToRGB(cfg.NightTemp)
	for _, tc := range []struct{ hour, minute int }{{0, 0}, {3, 30}, {5, 59}, {22, 0}, {23, 59}} {
		c := m.ColorFor(tc.hour, tc.minute)
		assert.Equal(t, int(math.Round(r*cfg.NightDim)), c.Red)
		assert.Equal(t, int(math.Round(g*cfg.NightDim)), c.Green)
		assert.Equal(t, int(math.Round(b*cfg.NightDim)), c.Blue)
	}
}

func TestTemperatureSegments(t *testing.T) {
	m := New(DefaultConfig())

	tests := []struct {
		name      string
		timeOfDay float64
		want      float64
	}{
		{"midnight", 0, 1500},
		{"just before night end", 5.99, 1500},
		{"morning start", 6, 2000},
		{"mid morning", 9, 4250},
		{"noon", 12, 6500},
		{"mid afternoon", 15, 4250},
		{"evening start", 18, 2000},
		{"mid evening", 20, 1750},
		{"night start", 22, 1500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, m.Temperature(tt.timeOfDay), 1e-9)
		})
	}
}

func TestRampsIgnoreConfiguredNightWindow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NightStart = 23
	m := New(cfg)

	// Between 22 and 23 the evening formula keeps running past its
	// 18-22 span and drops below the night temperature.
	assert.False(t, m.IsNight(22.5))
	assert.InDelta(t, 1437.5, m.Temperature(22.5), 1e-9)
}

func TestBoundaryContinuity(t *testing.T) {
	m := New(DefaultConfig())

	before := m.ColorFor(5, 59)
	after := m.ColorFor(6, 0)

	// 5:59 is night (1500K dimmed), 6:00 is the undimmed 2000K ramp start.
	r, g, b := KelvinToRGB(2000)
	assert.Equal(t, int(math.Round(r)), after.Red)
	assert.Equal(t, int(math.Round(g)), after.Green)
	assert.Equal(t, int(math.Round(b)), after.Blue)
	assert.Less(t, before.Red, after.Red)
}

func TestKelvinToRGBBlueThreshold(t *testing.T) {
	for _, kelvin := range []float64{1900, 1950, 2000, 2100, 6600, 6700, 40000} {
		r, g, b := KelvinToRGB(kelvin)
		for _, v := range []float64{r, g, b} {
			assert.False(t, math.IsNaN(v), "NaN at %v", kelvin)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 255.0)
		}
	}

	_, _, b := KelvinToRGB(1900)
	assert.Zero(t, b)

	_, _, b = KelvinToRGB(2000)
	assert.InDelta(t, 13.9, b, 0.05)
}

func TestKelvinToRGBHighTemperatures(t *testing.T) {
	r, g, b := KelvinToRGB(10000)
	assert.Less(t, r, 255.0)
	assert.Less(t, g, 255.0)
	assert.Equal(t, 255.0, b)
}
