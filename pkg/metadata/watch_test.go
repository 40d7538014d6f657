package metadata

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/bloxapp/wallet-metadata/pkg/notify"
)

type countingVersions struct {
	calls   atomic.Int64
	version string
}

func (v *countingVersions) Version(ctx context.Context, endpoint string) (string, error) {
	v.calls.Inc()
	return v.version, nil
}

type countingHeights struct {
	calls atomic.Int64
	fail  bool
}

func (h *countingHeights) WalletDBHeight(ctx context.Context, net Network) (uint64, error) {
	n := h.calls.Inc()
	if h.fail {
		return 0, errors.New("unavailable")
	}
	return uint64(1000 + n), nil
}

func newWatchService(t *testing.T, versions VersionFetcher, heights HeightProvider, sink notify.Sink) *Service {
	return NewService(zaptest.NewLogger(t), ServiceConfig{
		Store:        NewStore(InitialState()),
		Resolver:     staticResolver{MainNet: "https://main.example"},
		Versions:     versions,
		Heights:      heights,
		Sink:         sink,
		Opener:       notify.OpenerFunc(func(string) error { return nil }),
		LocalVersion: "1.2.0",
		ReleaseLink:  testReleaseLink,
	})
}

func TestWatch(t *testing.T) {
	defer goleak.VerifyNone(t)

	versions := &countingVersions{version: "1.3.0"}
	heights := &countingHeights{}
	shown := atomic.NewInt64(0)
	sink := notify.SinkFunc(func(n notify.Notification) notify.ID {
		return notify.ID(shown.Inc())
	})
	s := newWatchService(t, versions, heights, sink)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Watch(ctx, 5*time.Millisecond, time.Hour)
	}()

	require.Eventually(t, func() bool {
		return heights.calls.Load() >= 3
	}, time.Second, time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	// The version loop ran once at start, then waited for its interval.
	require.EqualValues(t, 1, versions.calls.Load())
	require.EqualValues(t, 1, shown.Load())
	require.EqualValues(t, 1000+heights.calls.Load(), BlockHeight(s.store))
}

func TestWatchKeepsGoingOnFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	versions := &countingVersions{version: "1.2.0"}
	heights := &countingHeights{fail: true}
	sink := notify.SinkFunc(func(n notify.Notification) notify.ID {
		t.Error("unexpected notification")
		return 0
	})
	s := newWatchService(t, versions, heights, sink)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Watch(ctx, 5*time.Millisecond, 5*time.Millisecond)
	}()

	require.Eventually(t, func() bool {
		return heights.calls.Load() >= 3 && versions.calls.Load() >= 3
	}, time.Second, time.Millisecond)
	cancel()
	require.NoError(t, <-done)
	require.Equal(t, InitialState(), s.store.State())
}

func TestWatchInvalidInterval(t *testing.T) {
	s := newWatchService(t, &countingVersions{}, &countingHeights{}, notify.SinkFunc(nil))
	require.Error(t, s.Watch(context.Background(), 0, time.Second))
	require.Error(t, s.Watch(context.Background(), time.Second, -time.Second))
}
