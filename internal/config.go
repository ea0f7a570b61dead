package internal

import (
	"fmt"
	"net/url"
	"time"
)

type Config struct {
	LogLevel     string `env:"LOG_LEVEL,default=INFO"`
	APIEndpoint  string `env:"API_ENDPOINT,required=true"`
	ChatEndpoint string `env:"CHAT_ENDPOINT,required=true"`
	SessionToken string `env:"SESSION_TOKEN,required=true"`
	UserID       string `env:"USER_ID,required=true"`

	BufferSize      int           `env:"BUFFER_SIZE,default=256"`
	FetchTimeout    time.Duration `env:"FETCH_TIMEOUT,default=10s"`
	FetchRetries    int           `env:"FETCH_RETRIES,default=2"`
	FetchRetryDelay time.Duration `env:"FETCH_RETRY_DELAY,default=250ms"`
	SinkTimeout     time.Duration `env:"SINK_TIMEOUT,default=500ms"`
	PublishTimeout  time.Duration `env:"PUBLISH_TIMEOUT,default=1s"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms"`

	MetricInterval        time.Duration `env:"METRIC_INTERVAL,default=5s"`
	LowCapacityThreshold  int           `env:"LOW_CAPACITY_THRESHOLD,default=10"`
	FetchLatencyThreshold time.Duration `env:"FETCH_LATENCY_THRESHOLD,default=2s"`

	ReconnectAttempts int           `env:"RECONNECT_ATTEMPTS,default=5"`
	ReconnectDelay    time.Duration `env:"RECONNECT_DELAY,default=2s"`

	BadgerFilepath string `env:"BADGER_FILEPATH,default=./data/dialogs"`
	LimitMessages  *int   `env:"LIMIT_MESSAGES"`
	WarmStart      bool   `env:"WARM_START,default=false"`
	MetricsAddr    string `env:"METRICS_ADDR"`
}

// Validate rejects values the env decoder accepts but the session can't run with.
func (c Config) Validate() error {
	for name, endpoint := range map[string]string{"API_ENDPOINT": c.APIEndpoint, "CHAT_ENDPOINT": c.ChatEndpoint} {
		u, err := url.Parse(endpoint)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute url, got %q", name, endpoint)
		}
	}
	if c.BufferSize <= 0 {
		return fmt.Errorf("BUFFER_SIZE must be positive, got %d", c.BufferSize)
	}
	if c.FetchRetries < 0 {
		return fmt.Errorf("FETCH_RETRIES can't be negative, got %d", c.FetchRetries)
	}
	if c.ReconnectAttempts < 0 {
		return fmt.Errorf("RECONNECT_ATTEMPTS can't be negative, got %d", c.ReconnectAttempts)
	}
	if c.LimitMessages != nil && *c.LimitMessages < 0 {
		return fmt.Errorf("LIMIT_MESSAGES can't be negative, got %d", *c.LimitMessages)
	}
	return nil
}
