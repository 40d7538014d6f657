package httpretry

import (
	"net/http"
	"time"

	"github.com/ybbus/httpretry"
)

// New returns an HTTP client retrying failed requests up to maxRetries
// times, waiting backoff longer before each further attempt. Zero
// maxRetries disables retries.
func New(maxRetries int, backoff time.Duration) *http.Client {
	return httpretry.NewDefaultClient(
		httpretry.WithMaxRetryCount(maxRetries),

		// Retry on any error, 5xx status codes and 0 status codes.
		httpretry.WithRetryPolicy(func(statusCode int, err error) bool {
			return err != nil || statusCode >= 500 || statusCode == 0 || statusCode == 429
		}),

		// Retry with an incremental backoff policy.
		httpretry.WithBackoffPolicy(func(attemptNum int) time.Duration {
			return time.Duration(attemptNum+1) * backoff
		}),
	)
}
