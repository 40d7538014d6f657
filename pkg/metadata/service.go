package metadata

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bloxapp/wallet-metadata/pkg/notify"
)

const (
	// legacyVersion was reported by the API for a broken historical release
	// and must never trigger an update notice.
	legacyVersion = "0.0.5"

	UpdateNoticeDuration = 5 * time.Minute
)

var (
	ErrVersionUnavailable = errors.New("remote version unavailable")
	ErrHeightUnavailable  = errors.New("wallet height unavailable")
)

type EndpointResolver interface {
	Endpoint(net Network) string
}

type VersionFetcher interface {
	Version(ctx context.Context, endpoint string) (string, error)
}

type HeightProvider interface {
	WalletDBHeight(ctx context.Context, net Network) (uint64, error)
}

type Service struct {
	logger       *zap.Logger
	store        *Store
	resolver     EndpointResolver
	versions     VersionFetcher
	heights      HeightProvider
	sink         notify.Sink
	opener       notify.Opener
	localVersion string
	releaseLink  string
}

type ServiceConfig struct {
	Store        *Store
	Resolver     EndpointResolver
	Versions     VersionFetcher
	Heights      HeightProvider
	Sink         notify.Sink
	Opener       notify.Opener
	LocalVersion string
	ReleaseLink  string
}

func NewService(logger *zap.Logger, cfg ServiceConfig) *Service {
	return &Service{
		logger:       logger,
		store:        cfg.Store,
		resolver:     cfg.Resolver,
		versions:     cfg.Versions,
		heights:      cfg.Heights,
		sink:         cfg.Sink,
		opener:       cfg.Opener,
		localVersion: cfg.LocalVersion,
		releaseLink:  cfg.ReleaseLink,
	}
}

// ShouldUpdate reports whether remote names a release the user should
// download instead of local.
func ShouldUpdate(local, remote string) bool {
	return remote != "" && remote != local && remote != legacyVersion
}

// CheckVersion compares the version reported by the API of the current
// network with the running version and shows an update notice if they
// differ. It never changes state. A failed lookup is returned wrapped in
// ErrVersionUnavailable without showing anything.
func (s *Service) CheckVersion(ctx context.Context) (bool, error) {
	net := CurrentNetwork(s.store)
	endpoint := s.resolver.Endpoint(net)

	remote, err := s.versions.Version(ctx, endpoint)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrVersionUnavailable, err)
	}
	if remote == "" {
		return false, fmt.Errorf("%w: empty version from %s", ErrVersionUnavailable, endpoint)
	}
	if !ShouldUpdate(s.localVersion, remote) {
		s.logger.Debug("Wallet is up to date",
			zap.String("local", s.localVersion),
			zap.String("remote", remote),
		)
		return false, nil
	}

	s.logger.Debug("Newer wallet version available",
		zap.String("local", s.localVersion),
		zap.String("remote", remote),
	)
	s.sink.Show(notify.Notification{
		Level: notify.LevelWarning,
		Message: fmt.Sprintf(
			"Your wallet is out of date! Please download the latest version from %s",
			s.releaseLink,
		),
		DismissAfter: UpdateNoticeDuration,
		OnClick:      s.openReleaseLink,
	})
	return true, nil
}

func (s *Service) openReleaseLink() {
	if err := s.opener.Open(s.releaseLink); err != nil {
		s.logger.Warn("Failed to open release page", zap.Error(err))
	}
}

// SyncBlockHeight fetches the wallet database height for net and stores it.
// On failure the state is left untouched.
func (s *Service) SyncBlockHeight(ctx context.Context, net Network) (uint64, error) {
	blockHeight, err := s.heights.WalletDBHeight(ctx, net)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrHeightUnavailable, err)
	}
	s.store.Dispatch(SetBlockHeight(blockHeight))
	return blockHeight, nil
}
