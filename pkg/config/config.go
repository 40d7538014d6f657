package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"sort"

	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"

	"github.com/bloxapp/wallet-metadata/pkg/metadata"
	"github.com/bloxapp/wallet-metadata/pkg/neonapi"
)

const DefaultReleaseLink = "https://github.com/CityOfZion/neon-wallet/releases"

type Config struct {
	Endpoints         neonapi.Endpoints `yaml:"endpoints"`
	ReleaseLink       string            `yaml:"release_link"`
	RequestsPerSecond float64           `yaml:"requests_per_second"`
	MaxRetries        int               `yaml:"max_retries"`
}

func Default() *Config {
	return &Config{
		Endpoints:         neonapi.DefaultEndpoints(),
		ReleaseLink:       DefaultReleaseLink,
		RequestsPerSecond: 5,
		MaxRetries:        0,
	}
}

// document mirrors Config with optional fields, so that explicit zero
// values can be told apart from omitted keys.
type document struct {
	Endpoints         neonapi.Endpoints `yaml:"endpoints"`
	ReleaseLink       *string           `yaml:"release_link"`
	RequestsPerSecond *float64          `yaml:"requests_per_second"`
	MaxRetries        *int              `yaml:"max_retries"`
}

// Parse parses the given YAML document on top of the defaults. Endpoints
// listed in the document replace the default for their network only.
func Parse(data []byte) (*Config, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	cfg := Default()
	for net, endpoint := range doc.Endpoints {
		cfg.Endpoints[net] = endpoint
	}
	if doc.ReleaseLink != nil {
		cfg.ReleaseLink = *doc.ReleaseLink
	}
	if doc.RequestsPerSecond != nil {
		cfg.RequestsPerSecond = *doc.RequestsPerSecond
	}
	if doc.MaxRetries != nil {
		cfg.MaxRetries = *doc.MaxRetries
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the config file at path. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	networks := maps.Keys(c.Endpoints)
	sort.Slice(networks, func(i, j int) bool { return networks[i] < networks[j] })
	for _, net := range networks {
		if _, err := metadata.ParseNetwork(string(net)); err != nil {
			return fmt.Errorf("invalid endpoint: %w", err)
		}
		if err := validateURL(c.Endpoints[net]); err != nil {
			return fmt.Errorf("invalid endpoint for %s: %w", net, err)
		}
	}
	if err := validateURL(c.ReleaseLink); err != nil {
		return fmt.Errorf("invalid release link: %w", err)
	}
	if c.RequestsPerSecond < 0 {
		return errors.New("requests per second must not be negative")
	}
	if c.MaxRetries < 0 {
		return errors.New("max retries must not be negative")
	}
	return nil
}

func validateURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme in %q", s)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %q", s)
	}
	return nil
}
