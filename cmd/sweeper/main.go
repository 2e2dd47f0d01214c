package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/sanctumos/clawedroad/cmd/bootstrap"
	"github.com/sanctumos/clawedroad/internal/job"
	"github.com/sanctumos/clawedroad/internal/pkg/config"
	"github.com/sanctumos/clawedroad/internal/usecase/commands"

	"go.uber.org/fx"
)

func newSweeper(cmds commands.SettlementCommands, cfg config.SettlementConfig) *job.Sweeper {
	return job.NewSweeper(cmds, cfg)
}

func startSweeper(lc fx.Lifecycle, sweeper *job.Sweeper, logger *slog.Logger, cfg config.SettlementConfig) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("starting pending sweeper",
				"interval", cfg.SweepInterval,
				"pending_timeout", cfg.PendingTimeout)
			go func() {
				defer close(done)
				sweeper.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
			logger.Info("pending sweeper stopped")
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.CoreModule,
		bootstrap.LoggerModule,
		fx.Provide(newSweeper),
		fx.Invoke(startSweeper),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start sweeper", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop sweeper cleanly", "error", err)
	}
}
