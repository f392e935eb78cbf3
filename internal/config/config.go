package config

import (
	"time"

	"github.com/spf13/viper"
)

// SetDefaults registers the default configuration values with viper.
// Every key can be overridden by the config file, PONDER_* environment
// variables, or command flags.
func SetDefaults() {
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")

	viper.SetDefault("annotator.url", "http://localhost:9090")
	viper.SetDefault("annotator.timeout", 10*time.Second)

	viper.SetDefault("cache.size", 512)

	viper.SetDefault("classification.threshold", 0.4)

	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.cors", true)
}
