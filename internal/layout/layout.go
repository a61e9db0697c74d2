// Package layout places the clock and calendar blocks on the panel.
package layout

import (
	"math"
	"strings"

	"github.com/tessro/coverclock/internal/core"
)

// DefaultClockY is the clock baseline that centers one line on a 64px panel.
const DefaultClockY = 39

// Engine computes vertical offsets. The zero value uses DefaultClockY.
type Engine struct {
	DefaultClockY int
}

func (e Engine) defaultClockY() int {
	if e.DefaultClockY == 0 {
		return DefaultClockY
	}
	return e.DefaultClockY
}

// Plan distributes the free panel height around the clock block and the
// calendar block. Half of the slack goes between the blocks and a quarter
// above and below. Content taller than the panel yields offsets past its
// bottom edge; the renderer clips.
func (e Engine) Plan(panelHeight, clockHeight, lineHeight, lineCount int) core.LayoutPlan {
	if lineCount == 0 {
		return core.LayoutPlan{ClockY: e.defaultClockY()}
	}

	contentHeight := clockHeight + lineHeight*lineCount
	remaining := max(0, panelHeight-contentHeight)

	spacingBetween := float64(remaining) / 2
	edgeSpacing := spacingBetween / 2

	clockY := roundHalfUp(edgeSpacing + float64(clockHeight))
	calendarStartY := roundHalfUp(float64(clockY) + spacingBetween + float64(lineHeight))

	return core.LayoutPlan{
		ClockY:         clockY,
		CalendarStartY: calendarStartY,
		HasCalendar:    true,
	}
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// CountLines returns the number of newline separated lines in text; an empty
// text has none and a trailing newline starts an empty last line.
func CountLines(text string) int {
	if text == "" {
		return 0
	}
	return strings.Count(text, "\n") + 1
}

// Lines splits text the same way CountLines counts it.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
