package config

import (
	"github.com/spf13/viper"
)

// Config stores all configuration for the application.
type Config struct {
	ServerPort      string `mapstructure:"SERVER_PORT"`
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	FetchTimeout    int    `mapstructure:"FETCH_TIMEOUT"` // in seconds
	CacheTTLMinutes int    `mapstructure:"CACHE_TTL_MINUTES"`
	MaxBatchSize    int    `mapstructure:"MAX_BATCH_SIZE"`
	SourcesFile     string `mapstructure:"SOURCES_FILE"` // optional reputation list override
}

// Load reads configuration from file or environment variables.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// Attempt to read the .env file, but don't fail if it's not present.
	// This allows configuration purely through environment variables in production.
	_ = viper.ReadInConfig()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("FETCH_TIMEOUT", 10)
	viper.SetDefault("CACHE_TTL_MINUTES", 30)
	viper.SetDefault("MAX_BATCH_SIZE", 10)
	viper.SetDefault("SOURCES_FILE", "")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
