package apify

import "time"

// Config holds configuration for the Apify job client.
type Config struct {
	// BaseURL is the API root.
	BaseURL string `mapstructure:"base_url" default:"https://api.apify.com/v2"`
	// Token is the API token. Required by the instagram and tiktok fetchers.
	Token string `mapstructure:"token" default:""`
	// PollIntervalSeconds is the fixed wait between status checks.
	PollIntervalSeconds int `mapstructure:"poll_interval_seconds" default:"5"`
	// PollTimeoutSeconds bounds the total poll duration; the attempt count
	// is the timeout divided by the interval.
	PollTimeoutSeconds int `mapstructure:"poll_timeout_seconds" default:"300"`
	// RequestTimeoutSeconds is the per-request network timeout.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" default:"30"`
	// MaxRetries is the number of additional attempts for transient
	// transport failures (network errors, 429, 5xx).
	MaxRetries int `mapstructure:"max_retries" default:"3"`
}

// PollPolicy is the explicit scheduling model for the status poll loop.
type PollPolicy struct {
	// Interval is the fixed wait between checks.
	Interval time.Duration
	// MaxAttempts bounds the number of status checks before the job is
	// treated as timed out.
	MaxAttempts int
}

// PollPolicy derives the poll policy from the configured interval and
// timeout.
func (c Config) PollPolicy() PollPolicy {
	interval := c.PollIntervalSeconds
	if interval <= 0 {
		interval = 5
	}
	timeout := c.PollTimeoutSeconds
	if timeout <= 0 {
		timeout = 300
	}
	attempts := timeout / interval
	if attempts < 1 {
		attempts = 1
	}
	return PollPolicy{
		Interval:    time.Duration(interval) * time.Second,
		MaxAttempts: attempts,
	}
}
