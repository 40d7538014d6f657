package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/bloxapp/wallet-metadata/pkg/history"
	"github.com/bloxapp/wallet-metadata/pkg/metadata"
)

type WatchCmd struct {
	HeightInterval  time.Duration `env:"HEIGHT_INTERVAL"  default:"15s" help:"How often to sync the block height."`
	VersionInterval time.Duration `env:"VERSION_INTERVAL" default:"1h"  help:"How often to check for a newer release."`
	History         string        `env:"HISTORY"                        help:"Path to a file to append state changes to."`
}

func (c *WatchCmd) Run(logger *zap.Logger, app *App) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return c.run(ctx, logger, app)
}

func (c *WatchCmd) run(ctx context.Context, logger *zap.Logger, app *App) error {
	if c.History != "" {
		recorder, err := history.Open(c.History)
		if err != nil {
			return fmt.Errorf("failed to open history: %w", err)
		}
		defer recorder.Close()
		app.Store.Subscribe(func(prev, next metadata.State) {
			if prev == next {
				return
			}
			if err := recorder.Record(history.NewRow(time.Now(), next)); err != nil {
				logger.Error("Failed to record state", zap.Error(err))
			}
		})
	}

	logger.Info("Watching",
		zap.String("network", metadata.CurrentNetwork(app.Store).String()),
		zap.Duration("height_interval", c.HeightInterval),
		zap.Duration("version_interval", c.VersionInterval),
	)
	if err := app.Service.Watch(ctx, c.HeightInterval, c.VersionInterval); err != nil {
		return fmt.Errorf("failed to watch: %w", err)
	}
	logger.Info("Stopped")
	return nil
}
