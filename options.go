package restokit

import (
	"fmt"
	"time"

	"github.com/go-kit/log"
)

// ConfigError represents an error that occurs during client configuration.
type ConfigError struct {
	Message string
}

// Error returns the error message for ConfigError.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("restokit: configuration error: %s", e.Message)
}

// Timeout defaults. The backend's mobile client historically applied one
// 15 s constant to both connection establishment and response wait; the two
// settings are independent here but keep the same default for parity.
const (
	DefaultConnectTimeout = 15 * time.Second
	DefaultReceiveTimeout = 15 * time.Second
)

// Config holds all the configurable settings for a Client.
// Option functions modify fields within this struct.
type Config struct {
	Headers        map[string]string
	ConnectTimeout time.Duration
	ReceiveTimeout time.Duration
	Logger         log.Logger
	HTTPClient     Doer
}

// Option is a function type that modifies the Config.
type Option func(cfg *Config) error

// WithHeader adds a default header sent with every request. Per-call bearer
// tokens overlay these at request time.
func WithHeader(key, value string) Option {
	return func(cfg *Config) error {
		if key == "" {
			return &ConfigError{"header key cannot be empty"}
		}
		if cfg.Headers == nil {
			cfg.Headers = make(map[string]string)
		}
		cfg.Headers[key] = value
		return nil
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(cfg *Config) error {
		if ua == "" {
			return &ConfigError{"user agent cannot be empty"}
		}
		if cfg.Headers == nil {
			cfg.Headers = make(map[string]string)
		}
		cfg.Headers["User-Agent"] = ua
		return nil
	}
}

// WithConnectTimeout sets the budget for establishing a connection
// (dial + TLS handshake).
func WithConnectTimeout(timeout time.Duration) Option {
	return func(cfg *Config) error {
		if timeout <= 0 {
			return &ConfigError{"connect timeout must be positive"}
		}
		cfg.ConnectTimeout = timeout
		return nil
	}
}

// WithReceiveTimeout sets the budget for a whole call: waiting for the
// response and reading its body. Enforced as a per-request context deadline.
func WithReceiveTimeout(timeout time.Duration) Option {
	return func(cfg *Config) error {
		if timeout <= 0 {
			return &ConfigError{"receive timeout must be positive"}
		}
		cfg.ReceiveTimeout = timeout
		return nil
	}
}

// WithLogger sets the logger used for per-request debug and failure logging.
// If not set, logging is disabled.
func WithLogger(logger log.Logger) Option {
	return func(cfg *Config) error {
		if logger == nil {
			return &ConfigError{"logger cannot be nil"}
		}
		cfg.Logger = logger
		return nil
	}
}

// WithHTTPClient replaces the underlying transport. When set, the connect
// timeout is the caller's responsibility; the receive timeout still applies.
func WithHTTPClient(client Doer) Option {
	return func(cfg *Config) error {
		if client == nil {
			return &ConfigError{"http client cannot be nil"}
		}
		cfg.HTTPClient = client
		return nil
	}
}
