package metadata

import (
	"context"
	"errors"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// Watch checks for a newer release every versionInterval and syncs the
// block height of the current network every heightInterval until ctx is
// done. Both run once immediately. Failures are logged and the loops carry
// on.
func (s *Service) Watch(ctx context.Context, heightInterval, versionInterval time.Duration) error {
	if heightInterval <= 0 || versionInterval <= 0 {
		return errors.New("intervals must be positive")
	}

	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		every(ctx, versionInterval, func() {
			if _, err := s.CheckVersion(ctx); err != nil {
				s.logger.Debug("Version check failed", zap.Error(err))
			}
		})
		return nil
	})
	p.Go(func(ctx context.Context) error {
		every(ctx, heightInterval, func() {
			net := CurrentNetwork(s.store)
			blockHeight, err := s.SyncBlockHeight(ctx, net)
			if err != nil {
				if ctx.Err() == nil {
					s.logger.Warn("Failed to sync block height",
						zap.String("network", net.String()),
						zap.Error(err),
					)
				}
				return
			}
			s.logger.Debug("Synced block height",
				zap.String("network", net.String()),
				zap.Uint64("block_height", blockHeight),
			)
		})
		return nil
	})
	return p.Wait()
}

func every(ctx context.Context, interval time.Duration, fn func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		fn()
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
