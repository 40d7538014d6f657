package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bloxapp/wallet-metadata/pkg/metadata"
)

type SyncHeightCmd struct {
	Network string `help:"Network to sync. Defaults to the current network."`
}

func (c *SyncHeightCmd) Run(logger *zap.Logger, app *App) error {
	ctx := context.Background()

	net := metadata.CurrentNetwork(app.Store)
	if c.Network != "" {
		var err error
		net, err = metadata.ParseNetwork(c.Network)
		if err != nil {
			return err
		}
	}

	blockHeight, err := app.Service.SyncBlockHeight(ctx, net)
	if err != nil {
		return fmt.Errorf("failed to sync block height: %w", err)
	}
	logger.Info("Synced block height",
		zap.String("network", net.String()),
		zap.Uint64("block_height", blockHeight),
	)
	return nil
}
