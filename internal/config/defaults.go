package config

import "github.com/spf13/viper"

// Default values
const (
	DefaultToken     = "SWT"
	DefaultFee       = 10000
	DefaultMinFee    = 10
	DefaultPublicAPI = "https://api.jingtum.com/v2/"
	DefaultServer    = "wss://c05.jingtum.com:5020"
)

// setDefaults sets every key so environment variables can override any of them
func setDefaults(v *viper.Viper) {
	// Network
	v.SetDefault("network.token", DefaultToken)
	v.SetDefault("network.fee", DefaultFee)
	v.SetDefault("network.min_fee", DefaultMinFee)
	v.SetDefault("network.public_api", DefaultPublicAPI)

	// Remote
	v.SetDefault("remote.server", DefaultServer)
	v.SetDefault("remote.api", "")
	v.SetDefault("remote.local_sign", true)
	v.SetDefault("remote.timeout", "30s")
	v.SetDefault("remote.ping_interval", "30s")
	v.SetDefault("remote.path_cache", 100)
	v.SetDefault("remote.dial_retries", 5)

	// Logging
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("log.outputs", []string{"stderr"})
}
