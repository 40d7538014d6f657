package neonapi

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/carlmjohnson/requests"
	"golang.org/x/time/rate"

	"github.com/bloxapp/wallet-metadata/pkg/metadata"
	"github.com/bloxapp/wallet-metadata/pkg/neonapi/httpretry"
)

// Client talks to the wallet API of each network.
type Client struct {
	endpoints   Endpoints
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

const DefaultRetryBackoff = time.Second

type options struct {
	retryBackoff time.Duration
}

type Option func(*options)

// WithRetryBackoff sets the base delay between retries. The n-th retry
// waits n times as long.
func WithRetryBackoff(d time.Duration) Option {
	return func(o *options) {
		o.retryBackoff = d
	}
}

// New returns a Client. A non-positive requestsPerSecond disables
// throttling.
func New(endpoints Endpoints, requestsPerSecond float64, maxRetries int, opts ...Option) *Client {
	o := options{retryBackoff: DefaultRetryBackoff}
	for _, opt := range opts {
		opt(&o)
	}
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Every(time.Duration(float64(time.Second) / requestsPerSecond))
	}
	return &Client{
		endpoints:   endpoints,
		httpClient:  httpretry.New(maxRetries, o.retryBackoff),
		rateLimiter: rate.NewLimiter(limit, 1),
	}
}

func (c *Client) Endpoint(net metadata.Network) string {
	return c.endpoints.Endpoint(net)
}

// Version returns the latest wallet release reported by the API at
// endpoint, or an empty string if the response carries none.
func (c *Client) Version(ctx context.Context, endpoint string) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for rate limiter: %w", err)
	}
	var resp struct {
		Version string `json:"version"`
	}
	err := requests.URL(endpoint + "/v2/version").
		Client(c.httpClient).
		ToJSON(&resp).
		Fetch(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch version: %w", err)
	}
	return resp.Version, nil
}

// WalletDBHeight returns the block height of the wallet database behind
// the API of net.
func (c *Client) WalletDBHeight(ctx context.Context, net metadata.Network) (uint64, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("failed to wait for rate limiter: %w", err)
	}
	var resp struct {
		BlockHeight *blockHeight `json:"block_height"`
	}
	err := requests.URL(c.Endpoint(net) + "/v2/block/height").
		Client(c.httpClient).
		ToJSON(&resp).
		Fetch(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch block height: %w", err)
	}
	if resp.BlockHeight == nil {
		return 0, fmt.Errorf("missing block height in response")
	}
	return uint64(*resp.BlockHeight), nil
}

// blockHeight accepts both JSON numbers and numeric strings.
type blockHeight uint64

func (h *blockHeight) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	v, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid block height %q: %w", data, err)
	}
	*h = blockHeight(v)
	return nil
}

var (
	_ metadata.EndpointResolver = (*Client)(nil)
	_ metadata.VersionFetcher   = (*Client)(nil)
	_ metadata.HeightProvider   = (*Client)(nil)
)
