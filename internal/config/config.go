package config

import (
	"path/filepath"
	"time"

	"github.com/LeJamon/goswtc/internal/amount"
)

// Config represents the complete client configuration
type Config struct {
	Network NetworkConfig `toml:"network" mapstructure:"network"`
	Remote  RemoteConfig  `toml:"remote" mapstructure:"remote"`
	Log     LogConfig     `toml:"log" mapstructure:"log"`

	configPath string `toml:"-" mapstructure:"-"`
}

// NetworkConfig describes the ledger the client talks to
type NetworkConfig struct {
	Token     string `toml:"token" mapstructure:"token"`           // Base currency symbol
	Fee       int64  `toml:"fee" mapstructure:"fee"`               // Default fee in minor units
	MinFee    int64  `toml:"min_fee" mapstructure:"min_fee"`       // Lowest fee accepted from flags
	PublicAPI string `toml:"public_api" mapstructure:"public_api"` // REST API used when no remote serves sequences
}

// RemoteConfig selects and tunes the remote
type RemoteConfig struct {
	Server       string        `toml:"server" mapstructure:"server"`               // Websocket URL of a node
	API          string        `toml:"api" mapstructure:"api"`                     // REST API base; used instead of Server when set
	LocalSign    bool          `toml:"local_sign" mapstructure:"local_sign"`       // Sign before submitting
	Timeout      time.Duration `toml:"timeout" mapstructure:"timeout"`             // Per request
	PingInterval time.Duration `toml:"ping_interval" mapstructure:"ping_interval"` // Websocket keepalive, 0 disables
	PathCache    int           `toml:"path_cache" mapstructure:"path_cache"`       // Path finding results kept
	DialRetries  uint64        `toml:"dial_retries" mapstructure:"dial_retries"`
}

// LogConfig configures the zap logger
type LogConfig struct {
	Level       string   `toml:"level" mapstructure:"level"`
	Development bool     `toml:"development" mapstructure:"development"`
	Outputs     []string `toml:"outputs" mapstructure:"outputs"`
}

// ConfigPaths holds the paths to configuration files
type ConfigPaths struct {
	Main string // Path to main config file (swtc.toml); optional
	Env  string // Path to a dotenv file; ".env" is tried when empty
}

// DefaultConfigPaths returns the default configuration file paths
func DefaultConfigPaths() ConfigPaths {
	return ConfigPaths{Main: "swtc.toml"}
}

// ConfigPathsFromDir returns configuration paths for a specific directory
func ConfigPathsFromDir(configDir string) ConfigPaths {
	return ConfigPaths{
		Main: filepath.Join(configDir, "swtc.toml"),
		Env:  filepath.Join(configDir, ".env"),
	}
}

// GetConfigPath returns the path of the loaded configuration file, if any
func (c *Config) GetConfigPath() string {
	return c.configPath
}

// FeeDrops returns the default fee
func (n NetworkConfig) FeeDrops() amount.Drops {
	return amount.Drops(n.Fee)
}

// UsesAPI reports whether transactions go through the REST API rather than a node
func (r RemoteConfig) UsesAPI() bool {
	return r.API != ""
}
