package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bloxapp/wallet-metadata/pkg/metadata"
)

func TestParseYAML(t *testing.T) {
	input := `
endpoints:
  TestNet: http://localhost:5000
release_link: https://example.com/releases
requests_per_second: 0.5
max_retries: 2
`
	cfg, err := Parse([]byte(input))
	require.NoError(t, err)
	require.Equal(t, "https://api.wallet.cityofzion.io", cfg.Endpoints.Endpoint(metadata.MainNet))
	require.Equal(t, "http://localhost:5000", cfg.Endpoints.Endpoint(metadata.TestNet))
	require.Equal(t, "https://example.com/releases", cfg.ReleaseLink)
	require.Equal(t, 0.5, cfg.RequestsPerSecond)
	require.Equal(t, 2, cfg.MaxRetries)
}

func TestParseExplicitZero(t *testing.T) {
	cfg, err := Parse([]byte("requests_per_second: 0\nmax_retries: 0\n"))
	require.NoError(t, err)
	require.Zero(t, cfg.RequestsPerSecond)
	require.Zero(t, cfg.MaxRetries)

	// Omitted keys keep their defaults.
	cfg, err = Parse([]byte("max_retries: 3\n"))
	require.NoError(t, err)
	require.Equal(t, Default().RequestsPerSecond, cfg.RequestsPerSecond)
	require.Equal(t, 3, cfg.MaxRetries)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestParseInvalid(t *testing.T) {
	var tests = []struct {
		name  string
		input string
	}{
		{"unknown network", "endpoints:\n  PrivNet: http://localhost:5000\n"},
		{"bad scheme", "endpoints:\n  MainNet: ftp://example.com\n"},
		{"no host", "release_link: https://\n"},
		{"empty release link", "release_link: \"\"\n"},
		{"negative rate", "requests_per_second: -1\n"},
		{"negative retries", "max_retries: -3\n"},
		{"not yaml", "endpoints: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_retries: 1\n"), 0644))
	cfg, err = Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, cfg.MaxRetries)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
