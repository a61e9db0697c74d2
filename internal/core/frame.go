package core

// ColorSample is an 8-bit per channel color.
type ColorSample struct {
	Red   int `json:"red"`
	Green int `json:"green"`
	Blue  int `json:"blue"`
}

// LayoutPlan holds the vertical text baselines for the clock view.
type LayoutPlan struct {
	ClockY         int  `json:"clock_y"`
	CalendarStartY int  `json:"calendar_start_y"`
	HasCalendar    bool `json:"has_calendar"`
}

// FrameMode selects what the renderer draws for a tick.
type FrameMode string

const (
	FrameAsset FrameMode = "asset"
	FrameClock FrameMode = "clock"
)

// FontHandle names a font known to the renderer.
type FontHandle int

const (
	FontClock FontHandle = iota
	FontCalendar
)

// DisplayFrame is the per-tick description handed to the renderer.
// Exactly one of the asset or clock fields is meaningful, selected by Mode.
type DisplayFrame struct {
	Mode               FrameMode   `json:"mode"`
	AssetPath          string      `json:"asset_path,omitempty"`
	ClockText          string      `json:"clock_text,omitempty"`
	ClockColor         ColorSample `json:"clock_color"`
	ClockY             int         `json:"clock_y,omitempty"`
	CalendarText       string      `json:"calendar_text,omitempty"`
	CalendarStartY     int         `json:"calendar_start_y,omitempty"`
	CalendarLineHeight int         `json:"calendar_line_height,omitempty"`
}

// HasCalendar reports whether the frame carries calendar lines.
func (f DisplayFrame) HasCalendar() bool {
	return f.Mode == FrameClock && f.CalendarText != ""
}
