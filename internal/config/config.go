package config

import "github.com/spf13/viper"

type Config struct {
	APIBaseURL  string `mapstructure:"TRAILHEAD_API_URL"`
	SessionFile string `mapstructure:"TRAILHEAD_SESSION_FILE"`
	HTTPTimeout int    `mapstructure:"TRAILHEAD_HTTP_TIMEOUT"`
	MockMode    bool   `mapstructure:"TRAILHEAD_MOCK"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	LogDev      bool   `mapstructure:"LOG_DEV"`
}

func Load() Config {
	viper.AutomaticEnv()
	viper.SetDefault("TRAILHEAD_API_URL", "http://localhost:8080")
	viper.SetDefault("TRAILHEAD_SESSION_FILE", "")
	viper.SetDefault("TRAILHEAD_HTTP_TIMEOUT", 15)
	viper.SetDefault("TRAILHEAD_MOCK", false)
	viper.SetDefault("LOG_LEVEL", "info")

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
