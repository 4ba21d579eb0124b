package config

import (
	"fmt"
	"net/url"

	"github.com/LeJamon/goswtc/internal/amount"
	"go.uber.org/zap/zapcore"
)

// ValidateConfig checks every section
func ValidateConfig(config *Config) error {
	if err := config.Network.Validate(); err != nil {
		return fmt.Errorf("network config validation failed: %w", err)
	}
	if err := config.Remote.Validate(); err != nil {
		return fmt.Errorf("remote config validation failed: %w", err)
	}
	if err := config.Log.Validate(); err != nil {
		return fmt.Errorf("log config validation failed: %w", err)
	}
	return nil
}

// Validate checks the network settings
func (n NetworkConfig) Validate() error {
	if !amount.IsValidCurrency(n.Token) {
		return fmt.Errorf("invalid token %q", n.Token)
	}
	if n.MinFee <= 0 {
		return fmt.Errorf("min_fee must be positive, got %d", n.MinFee)
	}
	if n.Fee < n.MinFee {
		return fmt.Errorf("fee %d is below min_fee %d", n.Fee, n.MinFee)
	}
	if err := validateURL(n.PublicAPI, "http", "https"); err != nil {
		return fmt.Errorf("public_api: %w", err)
	}
	return nil
}

// Validate checks the remote settings
func (r RemoteConfig) Validate() error {
	if r.Server == "" && r.API == "" {
		return fmt.Errorf("one of server or api must be set")
	}
	if r.Server != "" {
		if err := validateURL(r.Server, "ws", "wss"); err != nil {
			return fmt.Errorf("server: %w", err)
		}
	}
	if r.API != "" {
		if err := validateURL(r.API, "http", "https"); err != nil {
			return fmt.Errorf("api: %w", err)
		}
	}
	if r.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", r.Timeout)
	}
	if r.PingInterval < 0 {
		return fmt.Errorf("ping_interval cannot be negative, got %s", r.PingInterval)
	}
	if r.PathCache <= 0 {
		return fmt.Errorf("path_cache must be positive, got %d", r.PathCache)
	}
	return nil
}

// Validate checks the log settings
func (l LogConfig) Validate() error {
	if l.Level == "" {
		return nil
	}
	if _, err := zapcore.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("invalid level %q", l.Level)
	}
	return nil
}

func validateURL(raw string, schemes ...string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if u.Host == "" {
		return fmt.Errorf("url %q has no host", raw)
	}
	for _, s := range schemes {
		if u.Scheme == s {
			return nil
		}
	}
	return fmt.Errorf("url %q must use one of %v", raw, schemes)
}
