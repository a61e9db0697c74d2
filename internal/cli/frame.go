package cli

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"
	"github.com/tessro/coverclock/internal/orchestrator"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Run a single tick and print the frame as JSON",
	Long: `Runs exactly one tick with the configured collaborators, presents the
result and prints the DisplayFrame that was drawn.`,
	RunE: runFrame,
}

func init() {
	rootCmd.AddCommand(frameCmd)
}

func runFrame(cmd *cobra.Command, args []string) error {
	var (
		orch   *orchestrator.Orchestrator
		logger *zap.Logger
	)
	app := fx.New(
		appOptions(cfg, cmd.ErrOrStderr()),
		fx.NopLogger,
		fx.Populate(&orch, &logger),
	)
	if err := app.Err(); err != nil {
		return err
	}

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = app.Stop(ctx) }()

	frame, err := orch.Tick(ctx)
	if err != nil {
		logger.Warn("Tick reported errors", zap.Error(err))
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(frame)
}
