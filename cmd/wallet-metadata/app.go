package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/bloxapp/wallet-metadata/pkg/config"
	"github.com/bloxapp/wallet-metadata/pkg/metadata"
	"github.com/bloxapp/wallet-metadata/pkg/neonapi"
	"github.com/bloxapp/wallet-metadata/pkg/notify"
	"github.com/bloxapp/wallet-metadata/pkg/version"
)

type App struct {
	Config  *config.Config
	Store   *metadata.Store
	Center  *notify.Center
	Service *metadata.Service

	// Out receives command output meant for the user.
	Out io.Writer
}

func newApp(logger *zap.Logger, globals *Globals, opener notify.Opener, out io.Writer) (*App, error) {
	cfg, err := config.Load(globals.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	store := metadata.NewStore(metadata.InitialState())
	store.Dispatch(metadata.SetNetwork(metadata.Network(globals.Network)))
	store.Dispatch(metadata.SetBlockExplorer(metadata.Explorer(globals.Explorer)))
	store.Subscribe(func(prev, next metadata.State) {
		if prev == next {
			return
		}
		logger.Debug("State changed",
			zap.String("network", next.Network.String()),
			zap.Uint64("block_height", next.BlockHeight),
			zap.String("block_explorer", next.BlockExplorer.String()),
		)
	})

	client := neonapi.New(cfg.Endpoints, cfg.RequestsPerSecond, cfg.MaxRetries)
	center := notify.NewCenter(logger)
	service := metadata.NewService(logger, metadata.ServiceConfig{
		Store:        store,
		Resolver:     client,
		Versions:     client,
		Heights:      client,
		Sink:         center,
		Opener:       opener,
		LocalVersion: version.Version,
		ReleaseLink:  cfg.ReleaseLink,
	})
	return &App{
		Config:  cfg,
		Store:   store,
		Center:  center,
		Service: service,
		Out:     out,
	}, nil
}

func (a *App) Close() {
	a.Center.Close()
}
