// Package bootlog keeps the most recent boot diagnostics for the panel.
package bootlog

// DefaultCapacity is the number of lines that fit on the panel.
const DefaultCapacity = 8

// Ring is a fixed capacity FIFO of log lines. When full, adding a line
// evicts the oldest one.
type Ring struct {
	lines []string
	start int
	count int
}

// NewRing creates a ring holding at most capacity lines.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ring{lines: make([]string, capacity)}
}

// Add appends msg, evicting the oldest line when the ring is full.
func (r *Ring) Add(msg string) {
	if r.count < len(r.lines) {
		r.lines[(r.start+r.count)%len(r.lines)] = msg
		r.count++
		return
	}
	r.lines[r.start] = msg
	r.start = (r.start + 1) % len(r.lines)
}

// Lines returns the retained lines, oldest first.
func (r *Ring) Lines() []string {
	out := make([]string, r.count)
	for i := range out {
		out[i] = r.lines[(r.start+i)%len(r.lines)]
	}
	return out
}

// Len returns the number of retained lines.
func (r *Ring) Len() int { return r.count }

// Cap returns the ring capacity.
func (r *Ring) Cap() int { return len(r.lines) }
