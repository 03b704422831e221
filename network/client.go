// Package network provides the shared HTTP client and request limiter used to talk to remote APIs.
package network

import (
	"sync"
	"time"

	"github.com/anisan-cli/anidex/constant"
	"github.com/anisan-cli/anidex/key"
	"github.com/spf13/viper"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

// Options tunes a client built by New.
type Options struct {
	Timeout time.Duration
	Retries int
}

// DefaultOptions reads client options from the configuration.
func DefaultOptions() Options {
	return Options{
		Timeout: time.Duration(viper.GetInt(key.AnilistTimeoutSeconds)) * time.Second,
		Retries: viper.GetInt(key.AnilistRetries),
	}
}

// New builds a resty client tuned for JSON APIs.
// GraphQL reads are sent as POST, so retries are allowed for non-idempotent methods.
func New(opts Options) *resty.Client {
	if opts.Timeout <= 0 {
		opts.Timeout = time.Minute
	}

	return resty.New().
		SetTimeout(opts.Timeout).
		SetRetryCount(max(0, opts.Retries)).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(5*time.Second).
		SetAllowNonIdempotentRetry(true).
		SetHeader("User-Agent", constant.UserAgent).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
}

var (
	limiterOnce sync.Once
	limiter     ratelimit.Limiter
)

// Limiter returns the process-wide request limiter.
// Every controller shares it so concurrent lists cannot exceed the remote quota together.
func Limiter() ratelimit.Limiter {
	limiterOnce.Do(func() {
		limiter = NewLimiter(viper.GetInt(key.AnilistRequestsPerMinute))
	})
	return limiter
}

// NewLimiter returns a limiter admitting perMinute requests per minute, or an unlimited one when perMinute <= 0.
func NewLimiter(perMinute int) ratelimit.Limiter {
	if perMinute <= 0 {
		return ratelimit.NewUnlimited()
	}
	return ratelimit.New(perMinute, ratelimit.Per(time.Minute))
}
