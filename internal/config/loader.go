package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables, e.g. SWTC_REMOTE_SERVER.
const EnvPrefix = "SWTC"

// LoadConfig loads configuration from multiple sources in priority order:
// 1. Default values
// 2. Configuration file (swtc.toml), when given
// 3. Dotenv file, which never overrides variables already set
// 4. Environment variables (SWTC_ prefix)
func LoadConfig(paths ConfigPaths) (*Config, error) {
	v := viper.New()

	// 1. Set defaults first
	setDefaults(v)

	// 2. Load main configuration file
	if paths.Main != "" {
		if err := loadMainConfig(v, paths.Main); err != nil {
			return nil, fmt.Errorf("failed to load main config: %w", err)
		}
	}

	// 3. Load dotenv file into the process environment
	if err := loadEnvFile(paths.Env); err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	// 4. Set up environment variable support
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.configPath = paths.Main

	if err := ValidateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// loadMainConfig loads the main configuration file
func loadMainConfig(v *viper.Viper, configPath string) error {
	v.SetConfigFile(configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return fmt.Errorf("config file does not exist: %s", configPath)
	}

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	return nil
}

// loadEnvFile loads envPath, or .env when it is empty. Only an explicitly
// named file has to exist.
func loadEnvFile(envPath string) error {
	if envPath == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	}
	return godotenv.Load(envPath)
}

// LoadConfigFromDir loads configuration from a directory holding swtc.toml and .env
func LoadConfigFromDir(configDir string) (*Config, error) {
	return LoadConfig(ConfigPathsFromDir(configDir))
}

// SaveExampleConfig writes a configuration file holding every default
func SaveExampleConfig(configPath string) error {
	v := viper.New()
	setDefaults(v)
	for _, key := range v.AllKeys() {
		v.Set(key, v.Get(key))
	}

	if err := v.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write example config: %w", err)
	}
	return nil
}
