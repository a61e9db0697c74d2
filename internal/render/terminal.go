package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/coverclock/internal/core"
	"github.com/tessro/coverclock/internal/layout"
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4B5563")).
			Padding(0, 1)

	artworkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1DB954")).
			Bold(true)

	logStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// TerminalRenderer prints frames as styled text, for running without a
// panel.
type TerminalRenderer struct {
	w    io.Writer
	back string
}

// NewTerminalRenderer creates a renderer writing to w.
func NewTerminalRenderer(w io.Writer) *TerminalRenderer {
	return &TerminalRenderer{w: w}
}

// Draw composes frame into the pending output.
func (r *TerminalRenderer) Draw(frame core.DisplayFrame) error {
	var b strings.Builder
	switch frame.Mode {
	case core.FrameAsset:
		b.WriteString(artworkStyle.Render("♪ " + frame.AssetPath))
	case core.FrameClock:
		clock := lipgloss.NewStyle().
			Foreground(lipgloss.Color(Hex(frame.ClockColor))).
			Bold(true)
		b.WriteString(clock.Render(frame.ClockText))
		if frame.HasCalendar() {
			for _, line := range layout.Lines(frame.CalendarText) {
				b.WriteString("\n")
				b.WriteString(clock.UnsetBold().Render(line))
			}
		}
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("y=%d %s", frame.ClockY, Hex(frame.ClockColor))))
	default:
		return fmt.Errorf("unknown frame mode %q", frame.Mode)
	}
	r.back = boxStyle.Render(b.String())
	return nil
}

// DrawLog prints boot log lines immediately.
func (r *TerminalRenderer) DrawLog(lines []string) error {
	rendered := make([]string, len(lines))
	for i, line := range lines {
		rendered[i] = logStyle.Render(line)
	}
	r.back = boxStyle.Render(strings.Join(rendered, "\n"))
	return r.Present()
}

// Present writes the pending output.
func (r *TerminalRenderer) Present() error {
	_, err := fmt.Fprintln(r.w, r.back)
	return err
}
