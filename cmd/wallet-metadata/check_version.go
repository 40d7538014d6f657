package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bloxapp/wallet-metadata/pkg/metadata"
	"github.com/bloxapp/wallet-metadata/pkg/version"
)

type CheckVersionCmd struct {
	Open bool `env:"OPEN" help:"Open the release page if a newer release is available."`
}

func (c *CheckVersionCmd) Run(logger *zap.Logger, app *App) error {
	ctx := context.Background()

	shown, err := app.Service.CheckVersion(ctx)
	if err != nil {
		// An unreachable API is not worth failing over.
		logger.Warn("Could not check for a newer release",
			zap.String("network", metadata.CurrentNetwork(app.Store).String()),
			zap.Error(err),
		)
		return nil
	}
	if !shown {
		logger.Info("Wallet is up to date", zap.String("version", version.Version))
		return nil
	}
	if c.Open {
		for _, id := range app.Center.Active() {
			if err := app.Center.Click(id); err != nil {
				return fmt.Errorf("failed to open release page: %w", err)
			}
		}
	}
	return nil
}
