// Package render turns display frames into pixels.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg" // artwork slot format
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/spf13/afero"
	"github.com/tessro/coverclock/internal/core"
	"github.com/tessro/coverclock/internal/layout"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	// LogLineHeight is the pitch of boot log lines.
	LogLineHeight = 8
	calendarX     = 1
)

// ImageOptions configures an ImageRenderer.
type ImageOptions struct {
	Width  int
	Height int
	ClockX int
	// Output is where Present writes the front buffer as PNG.
	Output string
	Faces  Faces
}

// ImageRenderer draws into an off-screen back buffer and publishes it as a
// PNG file on Present.
type ImageRenderer struct {
	logger *zap.Logger
	fs     afero.Fs
	opts   ImageOptions
	front  *image.RGBA
	back   *image.RGBA
}

// NewImageRenderer creates a renderer with two blank buffers.
func NewImageRenderer(logger *zap.Logger, fs afero.Fs, opts ImageOptions) *ImageRenderer {
	if opts.Faces == nil {
		opts.Faces = DefaultFaces()
	}
	rect := image.Rect(0, 0, opts.Width, opts.Height)
	return &ImageRenderer{
		logger: logger,
		fs:     fs,
		opts:   opts,
		front:  image.NewRGBA(rect),
		back:   image.NewRGBA(rect),
	}
}

// Front returns the last presented buffer.
func (r *ImageRenderer) Front() image.Image {
	return r.front
}

// Draw renders frame into the back buffer. A missing or unreadable asset
// leaves the buffer black.
func (r *ImageRenderer) Draw(frame core.DisplayFrame) error {
	r.clear()

	switch frame.Mode {
	case core.FrameAsset:
		r.drawAsset(frame.AssetPath)
	case core.FrameClock:
		ink := PanelColor(frame.ClockColor)
		r.text(r.opts.Faces.face(core.FontClock), r.opts.ClockX, frame.ClockY, frame.ClockText, ink)
		if frame.HasCalendar() {
			face := r.opts.Faces.face(core.FontCalendar)
			y := frame.CalendarStartY
			for _, line := range layout.Lines(frame.CalendarText) {
				r.text(face, calendarX, y, line, ink)
				y += frame.CalendarLineHeight
			}
		}
	default:
		return fmt.Errorf("unknown frame mode %q", frame.Mode)
	}
	return nil
}

// DrawLog renders boot log lines in white, oldest first.
func (r *ImageRenderer) DrawLog(lines []string) error {
	r.clear()
	face := r.opts.Faces.face(core.FontCalendar)
	for i, line := range lines {
		r.text(face, 0, (i+1)*LogLineHeight, line, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	}
	return r.Present()
}

// Present swaps the buffers and writes the new front buffer.
func (r *ImageRenderer) Present() error {
	r.front, r.back = r.back, r.front
	if r.opts.Output == "" {
		return nil
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, r.front, imaging.PNG); err != nil {
		return fmt.Errorf("failed to encode frame: %w", err)
	}
	if err := r.fs.MkdirAll(filepath.Dir(r.opts.Output), 0o750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp := r.opts.Output + ".tmp"
	if err := afero.WriteFile(r.fs, tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	if err := r.fs.Rename(tmp, r.opts.Output); err != nil {
		return fmt.Errorf("failed to publish frame: %w", err)
	}
	return nil
}

func (r *ImageRenderer) clear() {
	draw.Draw(r.back, r.back.Bounds(), image.Black, image.Point{}, draw.Src)
}

func (r *ImageRenderer) text(face font.Face, x, y int, s string, ink color.Color) {
	d := font.Drawer{
		Dst:  r.back,
		Src:  image.NewUniform(ink),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func (r *ImageRenderer) drawAsset(path string) {
	f, err := r.fs.Open(path)
	if err != nil {
		r.logger.Warn("Artwork not available", zap.String("path", path), zap.Error(err))
		return
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		r.logger.Warn("Failed to decode artwork", zap.String("path", path), zap.Error(err))
		return
	}

	bounds := r.back.Bounds()
	ForEachBlock(img, func(b Block) bool {
		if b.Y >= bounds.Dy() {
			return false
		}
		for i, px := range b.Pixels {
			x, y := b.X+i%b.W, b.Y+i/b.W
			if x < bounds.Dx() && y < bounds.Dy() {
				r.back.SetRGBA(x, y, Expand565(px))
			}
		}
		return true
	})
}
