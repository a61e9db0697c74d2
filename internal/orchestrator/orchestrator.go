// Package orchestrator decides, once per tick, whether the panel shows the
// track artwork or the clock, and hands the result to the renderer.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/tessro/coverclock/internal/asset"
	"github.com/tessro/coverclock/internal/bootlog"
	"github.com/tessro/coverclock/internal/calendar"
	"github.com/tessro/coverclock/internal/circadian"
	"github.com/tessro/coverclock/internal/core"
	"github.com/tessro/coverclock/internal/layout"
	"github.com/tessro/coverclock/internal/metrics"
	"github.com/tessro/coverclock/internal/playback"
	"go.uber.org/zap"
)

const (
	DefaultTickInterval = 4 * time.Second
	DefaultPanelHeight  = 64
	// calendarLineGap is added to the measured calendar glyph height.
	calendarLineGap = 2
)

// Deps are the collaborators of an Orchestrator. Metrics, Clock and BootLog
// are optional.
type Deps struct {
	Logger   *zap.Logger
	Session  *playback.Controller
	Cache    *asset.Cache
	Calendar *calendar.Poller
	Colors   *circadian.Model
	Layout   layout.Engine
	Measurer core.TextMeasurer
	Renderer core.Renderer
	Metrics  metrics.Recorder
	Clock    clockwork.Clock
	BootLog  *bootlog.Ring
}

// Options holds the panel geometry and loop timing.
type Options struct {
	PanelHeight  int
	TickInterval time.Duration
	Location     *time.Location
}

// Orchestrator runs the tick loop. All of its state is owned by the
// goroutine calling Tick or Run.
type Orchestrator struct {
	deps Deps
	opts Options
}

// New creates an orchestrator, filling unset options with defaults.
func New(deps Deps, opts Options) *Orchestrator {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.NoopRecorder{}
	}
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	if deps.BootLog == nil {
		deps.BootLog = bootlog.NewRing(bootlog.DefaultCapacity)
	}
	if deps.Calendar == nil {
		deps.Calendar = calendar.NewPoller(calendar.Null{}, 0, deps.Clock)
	}
	if opts.PanelHeight <= 0 {
		opts.PanelHeight = DefaultPanelHeight
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Orchestrator{deps: deps, opts: opts}
}

// Boot appends lines to the boot log and shows it on the panel.
func (o *Orchestrator) Boot(lines ...string) error {
	for _, line := range lines {
		o.deps.Logger.Info("Boot", zap.String("step", line))
		o.deps.BootLog.Add(line)
	}
	return o.deps.Renderer.DrawLog(o.deps.BootLog.Lines())
}

// BootLog returns the lines currently held by the boot log.
func (o *Orchestrator) BootLog() []string {
	return o.deps.BootLog.Lines()
}

// Tick runs one decide and render cycle. The returned error is
// informational: the frame was still produced and presented where possible.
func (o *Orchestrator) Tick(ctx context.Context) (core.DisplayFrame, error) {
	start := o.deps.Clock.Now()

	frame, errs := o.decide(ctx)

	if err := o.deps.Renderer.Draw(frame); err != nil {
		errs = append(errs, fmt.Errorf("draw: %w", err))
	} else if err := o.deps.Renderer.Present(); err != nil {
		errs = append(errs, fmt.Errorf("present: %w", err))
	}

	o.deps.Metrics.ObserveTick(string(frame.Mode), o.deps.Clock.Since(start))
	return frame, errors.Join(errs...)
}

func (o *Orchestrator) decide(ctx context.Context) (core.DisplayFrame, []error) {
	outcome := o.deps.Session.EnsureSession(ctx)
	o.deps.Metrics.SetAuthenticated(outcome == playback.SessionReady)

	if outcome != playback.SessionReady {
		o.deps.Logger.Debug("Session not ready, drawing clock", zap.Stringer("outcome", outcome))
		frame := o.clockFrame(o.now())
		frame.ClockY = o.deps.Layout.Plan(o.opts.PanelHeight, 0, 0, 0).ClockY
		return frame, nil
	}

	var errs []error

	result := o.deps.Session.Poll(ctx)
	o.deps.Metrics.IncPlaybackStatus(result.Status.String())
	if result.Err != nil {
		errs = append(errs, result.Err)
	}

	if result.Status == core.StatusPlaying && result.TrackURL != "" {
		path, fetched, err := o.deps.Cache.EnsureAsset(ctx, result.TrackURL)
		if fetched {
			o.deps.Metrics.IncAssetFetch(err == nil)
		}
		if err != nil {
			o.deps.Logger.Warn("Artwork fetch failed, showing previous file", zap.Error(err))
			errs = append(errs, err)
		}
		return core.DisplayFrame{Mode: core.FrameAsset, AssetPath: path}, errs
	}

	frame := o.clockFrame(o.now())
	o.placeCalendar(ctx, &frame)
	// Only a stop clears the slot; error ticks and tracks without art keep it.
	if !result.IsPlaying {
		o.deps.Cache.Invalidate()
	}
	return frame, errs
}

func (o *Orchestrator) now() time.Time {
	return o.deps.Clock.Now().In(o.opts.Location)
}

func (o *Orchestrator) clockFrame(now time.Time) core.DisplayFrame {
	return core.DisplayFrame{
		Mode:       core.FrameClock,
		ClockText:  now.Format("15:04"),
		ClockColor: o.deps.Colors.ColorFor(now.Hour(), now.Minute()),
	}
}

func (o *Orchestrator) placeCalendar(ctx context.Context, frame *core.DisplayFrame) {
	text := o.deps.Calendar.Text(ctx)
	lines := layout.CountLines(text)

	var clockHeight, lineHeight int
	if lines > 0 {
		clockHeight = o.deps.Measurer.Measure(frame.ClockText, core.FontClock)
		lineHeight = o.deps.Measurer.Measure("A", core.FontCalendar) + calendarLineGap
	}

	plan := o.deps.Layout.Plan(o.opts.PanelHeight, clockHeight, lineHeight, lines)
	frame.ClockY = plan.ClockY
	if plan.HasCalendar {
		frame.CalendarText = text
		frame.CalendarStartY = plan.CalendarStartY
		frame.CalendarLineHeight = lineHeight
	}
}

// Run ticks until ctx is cancelled, pausing TickInterval between ticks.
func (o *Orchestrator) Run(ctx context.Context) error {
	o.deps.Logger.Info("Display loop starting", zap.Duration("tick", o.opts.TickInterval))
	for {
		frame, err := o.Tick(ctx)
		if err != nil {
			o.deps.Logger.Warn("Tick completed with errors",
				zap.String("mode", string(frame.Mode)), zap.Error(err))
		}

		select {
		case <-ctx.Done():
			o.deps.Logger.Info("Display loop stopped")
			return nil
		case <-o.deps.Clock.After(o.opts.TickInterval):
		}
	}
}
