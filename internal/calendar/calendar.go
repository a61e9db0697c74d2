// Package calendar supplies the optional calendar text shown under the clock.
package calendar

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/tessro/coverclock/internal/core"
)

// DefaultInterval is the minimum time between two calendar fetches.
const DefaultInterval = 10 * time.Second

// Null is the fetcher used when the calendar feature is disabled. It always
// reports no content.
type Null struct{}

// Fetch returns "".
func (Null) Fetch(context.Context) string { return "" }

// Poller rate-limits a CalendarFetcher and remembers the last text it
// returned. The first call always fetches.
type Poller struct {
	fetcher  core.CalendarFetcher
	interval time.Duration
	clock    clockwork.Clock

	last    time.Time
	fetched bool
	text    string
}

// NewPoller wraps fetcher. A non-positive interval uses DefaultInterval and a
// nil clock uses the real clock.
func NewPoller(fetcher core.CalendarFetcher, interval time.Duration, clock clockwork.Clock) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Poller{fetcher: fetcher, interval: interval, clock: clock}
}

// Text returns the calendar text, fetching it again when the interval has
// elapsed since the previous fetch.
func (p *Poller) Text(ctx context.Context) string {
	now := p.clock.Now()
	if !p.fetched || now.Sub(p.last) >= p.interval {
		p.text = p.fetcher.Fetch(ctx)
		p.last = now
		p.fetched = true
	}
	return p.text
}
