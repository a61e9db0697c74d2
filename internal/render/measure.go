package render

import (
	"github.com/tessro/coverclock/internal/core"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
)

// Faces maps font handles to the faces used to draw them.
type Faces map[core.FontHandle]font.Face

// DefaultFaces returns the bitmap faces used on the panel.
func DefaultFaces() Faces {
	return Faces{
		core.FontClock:    inconsolata.Bold8x16,
		core.FontCalendar: basicfont.Face7x13,
	}
}

func (f Faces) face(handle core.FontHandle) font.Face {
	if face, ok := f[handle]; ok {
		return face
	}
	return basicfont.Face7x13
}

// Measurer reports the ink height of text.
type Measurer struct {
	faces Faces
}

// NewMeasurer creates a measurer over the default faces.
func NewMeasurer() *Measurer {
	return &Measurer{faces: DefaultFaces()}
}

// Measure returns the height in pixels of the bounding box of text.
func (m *Measurer) Measure(text string, handle core.FontHandle) int {
	if text == "" {
		return 0
	}
	bounds, _ := font.BoundString(m.faces.face(handle), text)
	return (bounds.Max.Y - bounds.Min.Y).Ceil()
}
