package render

import (
	"fmt"
	"image/color"

	"github.com/tessro/coverclock/internal/core"
)

// RGB565 packs a color into the 16-bit panel format.
func RGB565(c core.ColorSample) uint16 {
	r := uint16(clampByte(c.Red) * 31 / 255)
	g := uint16(clampByte(c.Green) * 63 / 255)
	b := uint16(clampByte(c.Blue) * 31 / 255)
	return r<<11 | g<<5 | b
}

// Expand565 converts a packed panel color back to 8-bit channels.
func Expand565(v uint16) color.RGBA {
	r := (v >> 11) & 0x1f
	g := (v >> 5) & 0x3f
	b := v & 0x1f
	return color.RGBA{
		R: uint8(r * 255 / 31),
		G: uint8(g * 255 / 63),
		B: uint8(b * 255 / 31),
		A: 0xff,
	}
}

// PanelColor returns c as it appears on the panel after quantization.
func PanelColor(c core.ColorSample) color.RGBA {
	return Expand565(RGB565(c))
}

// Hex formats c as #rrggbb.
func Hex(c core.ColorSample) string {
	return fmt.Sprintf("#%02x%02x%02x", clampByte(c.Red), clampByte(c.Green), clampByte(c.Blue))
}

func clampByte(v int) int {
	return max(0, min(255, v))
}
