package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tessro/coverclock/internal/config"
	"github.com/tessro/coverclock/internal/core"
	"github.com/tessro/coverclock/internal/metrics"
	"github.com/tessro/coverclock/internal/netprobe"
	"github.com/tessro/coverclock/internal/orchestrator"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Drive the display until interrupted",
	Long: `Runs the boot sequence, then ticks every timing.tick_interval seconds,
showing the cover of the playing track or the clock.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	app := fx.New(
		appOptions(cfg, os.Stdout),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		fx.Invoke(registerRunHooks),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()

	return app.Stop(context.Background())
}

type runParams struct {
	fx.In

	Lifecycle    fx.Lifecycle
	Config       *config.Config
	Logger       *zap.Logger
	Fs           afero.Fs
	Probe        *netprobe.Probe
	Orchestrator *orchestrator.Orchestrator
	Registry     *prom.Registry
}

// registerRunHooks starts the tick loop and the optional metrics endpoint
// with the app and stops them with it.
func registerRunHooks(p runParams) {
	loopCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	var server *http.Server

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if addr := p.Config.Metrics.Listen; addr != "" {
				ln, err := net.Listen("tcp", addr)
				if err != nil {
					cancel()
					return err
				}
				mux := http.NewServeMux()
				mux.Handle("/metrics", metrics.HTTPHandler(p.Registry))
				server = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
				go func() {
					if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
						p.Logger.Error("Metrics server failed", zap.Error(err))
					}
				}()
				p.Logger.Info("Serving metrics", zap.String("addr", ln.Addr().String()))
			}

			go func() {
				defer close(done)
				boot(loopCtx, p.Logger, p.Orchestrator, bootChecks{
					Fs:         p.Fs,
					AssetPath:  p.Config.Assets.Path,
					Probe:      p.Probe,
					Authorized: p.Config.Spotify.RefreshToken != "",
				})
				if err := p.Orchestrator.Run(loopCtx); err != nil {
					p.Logger.Error("Display loop stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-ctx.Done():
				return ctx.Err()
			}
			if server != nil {
				return server.Shutdown(ctx)
			}
			return nil
		},
	})
}

// bootChecks are the inputs of the boot sequence.
type bootChecks struct {
	Fs         afero.Fs
	AssetPath  string
	Probe      core.ConnectivityProbe
	Authorized bool
}

// boot runs the startup checks, drawing the boot log after each line.
func boot(ctx context.Context, logger *zap.Logger, o *orchestrator.Orchestrator, c bootChecks) {
	show := func(line string) {
		if err := o.Boot(line); err != nil {
			logger.Warn("Failed to draw boot log", zap.Error(err))
		}
	}

	show("Booting...")
	show("Display ready")

	if err := c.Fs.MkdirAll(filepath.Dir(c.AssetPath), 0o755); err != nil {
		logger.Warn("Artwork directory unavailable", zap.Error(err))
		show("FS: failed")
	} else {
		show("FS: ok")
	}

	if c.Probe.IsReachable(ctx) {
		show("Network: ok")
	} else {
		show("Network: failed")
	}

	show("Time: synced")

	if c.Authorized {
		show("Spotify: ok")
	} else {
		show("Spotify: pending")
	}
}
