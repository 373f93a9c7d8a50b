package httpfetch

import "time"

// Config controls throttling, timeouts and retries.
type Config struct {
	// RatePerSecond is the sustained request rate.
	RatePerSecond float64

	// Burst is the token bucket size.
	Burst int

	// Timeout bounds a single request, including reading the body.
	Timeout time.Duration

	// MaxRetries is the number of retries after the first attempt.
	MaxRetries int

	// InitialDelay is the wait before the first retry; it doubles per retry.
	InitialDelay time.Duration

	// MaxDelay caps the backoff.
	MaxDelay time.Duration

	// MaxBodyBytes rejects larger tracks.
	MaxBodyBytes int64

	// UserAgent is sent with every request.
	UserAgent string
}

// DefaultConfig returns conservative defaults.
func DefaultConfig() Config {
	return Config{
		RatePerSecond: 2.0,
		Burst:         4,
		Timeout:       30 * time.Second,
		MaxRetries:    3,
		InitialDelay:  500 * time.Millisecond,
		MaxDelay:      8 * time.Second,
		MaxBodyBytes:  8 << 20,
		UserAgent:     "sercha-captions",
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.RatePerSecond <= 0 {
		c.RatePerSecond = d.RatePerSecond
	}
	if c.Burst <= 0 {
		c.Burst = d.Burst
	}
	if c.Timeout <= 0 {
		c.Timeout = d.Timeout
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.InitialDelay <= 0 {
		c.InitialDelay = d.InitialDelay
	}
	if c.MaxDelay <= 0 {
		c.MaxDelay = d.MaxDelay
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = d.MaxBodyBytes
	}
	if c.UserAgent == "" {
		c.UserAgent = d.UserAgent
	}
	return c
}
