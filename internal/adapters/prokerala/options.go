package prokerala

import (
	"time"

	"panchang/internal/platform/config"
)

const (
	baseURLDefault   = "https://api.prokerala.com"
	tokenURLDefault  = "https://api.prokerala.com/token"
	defaultTimeout   = 15 * time.Second
	defaultUA        = "panchang-api"
	defaultMaxRetry  = 3
	defaultRetryBase = 300 * time.Millisecond
	defaultRPS       = 5.0
	defaultBurst     = 2
	defaultLang      = "ta"
	defaultOffset    = "+05:30"
)

// Options configures the Client
type Options struct {
	ClientID     string
	ClientSecret string

	BaseURL   string
	TokenURL  string
	UserAgent string
	Timeout   time.Duration

	// Lang is the provider's "la" parameter; ta returns Tamil names
	Lang string
	// Offset is the UTC offset the requested day starts in, as +HH:MM
	Offset string

	// Retry config for transient and rate limited responses
	MaxRetries int
	RetryBase  time.Duration

	// Client side token bucket in front of the provider
	RPS   float64
	Burst int
}

// FromConfig reads options using the PROKERALA_ prefix under cfg
func FromConfig(cfg config.Conf) Options {
	p := cfg.Prefix("PROKERALA_")
	return Options{
		ClientID:     p.MayString("CLIENT_ID", ""),
		ClientSecret: p.MayString("CLIENT_SECRET", ""),
		BaseURL:      p.MayURL("BASE_URL", baseURLDefault),
		TokenURL:     p.MayURL("TOKEN_URL", tokenURLDefault),
		Timeout:      p.MayDuration("TIMEOUT", defaultTimeout),
		Lang:         p.MayString("LANG", defaultLang),
		Offset:       p.MayString("TZ_OFFSET", defaultOffset),
		MaxRetries:   p.MayInt("MAX_RETRIES", defaultMaxRetry),
		RetryBase:    p.MayDuration("RETRY_BASE", defaultRetryBase),
		RPS:          p.MayFloat64("RPS", defaultRPS),
		Burst:        p.MayInt("BURST", defaultBurst),
	}
}

// Configured reports whether both client credentials are present
func (o Options) Configured() bool {
	return o.ClientID != "" && o.ClientSecret != ""
}

func (o Options) withDefaults() Options {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.TokenURL == "" {
		o.TokenURL = tokenURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.Lang == "" {
		o.Lang = defaultLang
	}
	if o.Offset == "" {
		o.Offset = defaultOffset
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	if o.RPS <= 0 {
		o.RPS = defaultRPS
	}
	if o.Burst <= 0 {
		o.Burst = defaultBurst
	}
	return o
}
