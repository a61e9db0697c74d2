package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jonboulle/clockwork"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"github.com/tessro/coverclock/internal/asset"
	"github.com/tessro/coverclock/internal/bootlog"
	"github.com/tessro/coverclock/internal/browser"
	"github.com/tessro/coverclock/internal/calendar"
	"github.com/tessro/coverclock/internal/circadian"
	"github.com/tessro/coverclock/internal/config"
	"github.com/tessro/coverclock/internal/core"
	"github.com/tessro/coverclock/internal/layout"
	"github.com/tessro/coverclock/internal/logging"
	"github.com/tessro/coverclock/internal/metrics"
	"github.com/tessro/coverclock/internal/netprobe"
	"github.com/tessro/coverclock/internal/orchestrator"
	"github.com/tessro/coverclock/internal/playback"
	"github.com/tessro/coverclock/internal/render"
	"github.com/tessro/coverclock/internal/spotify/auth"
	"github.com/tessro/coverclock/internal/spotify/client"
	"github.com/tessro/coverclock/internal/spotify/player"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// appOptions builds the dependency graph shared by the run and frame
// commands. The terminal renderer writes to out.
func appOptions(cfg *config.Config, out io.Writer) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(
			func() io.Writer { return out },
			newLogger,
			newClock,
			newFs,
			newHandshake,
			newProbe,
			newPlayer,
			newController,
			newAssetCache,
			newCalendar,
			newRenderer,
			newMetrics,
			newOrchestrator,
		),
	)
}

func newLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			_ = logger.Sync()
			return nil
		},
	})
	return logger, nil
}

func newClock() clockwork.Clock {
	return clockwork.NewRealClock()
}

func newFs() afero.Fs {
	return afero.NewOsFs()
}

// authConfig maps the [spotify] section onto the OAuth configuration.
func authConfig(cfg *config.Config) *auth.Config {
	ac := auth.NewConfig(cfg.Spotify.ClientID)
	ac.ClientSecret = cfg.Spotify.ClientSecret
	ac.RefreshToken = cfg.Spotify.RefreshToken
	if cfg.Spotify.RedirectURI != "" {
		ac.RedirectURI = cfg.Spotify.RedirectURI
	}
	if cfg.Spotify.CallbackPort != 0 {
		ac.CallbackPort = cfg.Spotify.CallbackPort
	}
	return ac
}

func newHandshake(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger, clock clockwork.Clock) *auth.Handshake {
	ac := authConfig(cfg)
	h := auth.NewHandshake(logger.Named("auth"), ac, auth.NewTokenClient(ac, cfg.Timing.Fetch()), clock, browser.Open)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return h.Close()
		},
	})
	return h
}

func newProbe(cfg *config.Config, logger *zap.Logger) *netprobe.Probe {
	return netprobe.New(logger.Named("probe"), cfg.Probe.URL, cfg.Timing.Probe())
}

func newPlayer(cfg *config.Config, logger *zap.Logger, h *auth.Handshake) *player.Player {
	p := player.New(client.New(logger.Named("spotify"), h, cfg.Timing.Fetch()))
	p.SetMarket(cfg.Spotify.Market)
	return p
}

type controllerParams struct {
	fx.In

	Config    *config.Config
	Logger    *zap.Logger
	Clock     clockwork.Clock
	Probe     *netprobe.Probe
	Handshake *auth.Handshake
	Player    *player.Player
}

func newController(p controllerParams) *playback.Controller {
	return playback.NewController(p.Logger.Named("playback"), p.Probe, p.Handshake, p.Player, playback.Options{
		Clock:       p.Clock,
		AuthTimeout: p.Config.Timing.Auth(),
		AuthPoll:    p.Config.Timing.AuthPoll(),
		ImageIndex:  p.Config.Spotify.ImageIndex,
	})
}

func newAssetCache(cfg *config.Config, logger *zap.Logger, fs afero.Fs) *asset.Cache {
	fetcher := asset.NewHTTPFetcher(logger.Named("asset"), fs, cfg.Assets.Path,
		cfg.Display.PanelWidth, cfg.Display.PanelHeight, cfg.Timing.Fetch())
	return asset.NewCache(logger.Named("asset"), fetcher)
}

func newCalendar(cfg *config.Config, logger *zap.Logger, clock clockwork.Clock) *calendar.Poller {
	var fetcher core.CalendarFetcher = calendar.Null{}
	if cfg.Calendar.Enabled {
		fetcher = calendar.NewHTTPFetcher(logger.Named("calendar"), cfg.Calendar.URL, cfg.Timing.Fetch())
	}
	return calendar.NewPoller(fetcher, cfg.Timing.Calendar(), clock)
}

func newRenderer(cfg *config.Config, logger *zap.Logger, fs afero.Fs, out io.Writer) (core.Renderer, error) {
	switch cfg.Display.Renderer {
	case "", "image":
		return render.NewImageRenderer(logger.Named("render"), fs, render.ImageOptions{
			Width:  cfg.Display.PanelWidth,
			Height: cfg.Display.PanelHeight,
			ClockX: cfg.Display.ClockX,
			Output: cfg.Display.Output,
		}), nil
	case "terminal":
		return render.NewTerminalRenderer(out), nil
	}
	return nil, fmt.Errorf("unknown renderer %q", cfg.Display.Renderer)
}

func newMetrics() (*prom.Registry, metrics.Recorder) {
	reg := prom.NewRegistry()
	return reg, metrics.NewPrometheusRecorder(reg)
}

func newLocation(cfg *config.Config) (*time.Location, error) {
	loc, err := time.LoadLocation(cfg.Display.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid display.time_zone %q: %w", cfg.Display.TimeZone, err)
	}
	return loc, nil
}

type orchestratorParams struct {
	fx.In

	Config   *config.Config
	Logger   *zap.Logger
	Clock    clockwork.Clock
	Session  *playback.Controller
	Cache    *asset.Cache
	Calendar *calendar.Poller
	Renderer core.Renderer
	Metrics  metrics.Recorder
}

func newOrchestrator(p orchestratorParams) (*orchestrator.Orchestrator, error) {
	loc, err := newLocation(p.Config)
	if err != nil {
		return nil, err
	}
	c := p.Config.Color
	colors := circadian.New(circadian.Config{
		NightStart: float64(c.NightStart),
		NightEnd:   float64(c.NightEnd),
		NightTemp:  c.NightTemp,
		MinTemp:    c.MinTemp,
		MaxTemp:    c.MaxTemp,
		NightDim:   c.NightDim,
	})
	return orchestrator.New(orchestrator.Deps{
		Logger:   p.Logger.Named("orchestrator"),
		Session:  p.Session,
		Cache:    p.Cache,
		Calendar: p.Calendar,
		Colors:   colors,
		Layout:   layout.Engine{DefaultClockY: p.Config.Display.DefaultClockY},
		Measurer: render.NewMeasurer(),
		Renderer: p.Renderer,
		Metrics:  p.Metrics,
		Clock:    p.Clock,
		BootLog:  bootlog.NewRing(bootlog.DefaultCapacity),
	}, orchestrator.Options{
		PanelHeight:  p.Config.Display.PanelHeight,
		TickInterval: p.Config.Timing.Tick(),
		Location:     loc,
	}), nil
}
