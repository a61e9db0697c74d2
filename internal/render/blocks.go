package render

import (
	"image"
	"image/color"
)

// BlockSize is the edge length of a decoded block.
const BlockSize = 16

// Block is a rectangle of decoded pixels in panel format, row-major.
type Block struct {
	X, Y   int
	W, H   int
	Pixels []uint16
}

// ForEachBlock walks img in BlockSize tiles, left to right and top to
// bottom, handing each one to fn in panel format. Returning false from fn
// stops the walk.
func ForEachBlock(img image.Image, fn func(Block) bool) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y += BlockSize {
		for x := bounds.Min.X; x < bounds.Max.X; x += BlockSize {
			w := min(BlockSize, bounds.Max.X-x)
			h := min(BlockSize, bounds.Max.Y-y)
			block := Block{
				X:      x - bounds.Min.X,
				Y:      y - bounds.Min.Y,
				W:      w,
				H:      h,
				Pixels: make([]uint16, 0, w*h),
			}
			for by := y; by < y+h; by++ {
				for bx := x; bx < x+w; bx++ {
					block.Pixels = append(block.Pixels, pack(img.At(bx, by)))
				}
			}
			if !fn(block) {
				return
			}
		}
	}
}

func pack(c color.Color) uint16 {
	r, g, b, _ := c.RGBA()
	return uint16(r>>11)<<11 | uint16(g>>10)<<5 | uint16(b>>11)
}
