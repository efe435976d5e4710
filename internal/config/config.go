package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the settings of the runescan command. Values come from an
// optional runescan.env file and from RUNESCAN_* environment variables, the
// latter taking precedence.
type Config struct {
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	Operation string `mapstructure:"OPERATION"`
	Quote     bool   `mapstructure:"QUOTE"`
}

// Load reads runescan.env from path, if present, and the environment.
func Load(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("runescan")
	v.SetConfigType("env")
	v.SetEnvPrefix("RUNESCAN")
	v.AutomaticEnv()

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("OPERATION", "trim")
	v.SetDefault("QUOTE", true)

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			err = fmt.Errorf("error reading config: %w", err)
			return
		}
	}

	err = v.Unmarshal(&config)
	if err != nil {
		err = fmt.Errorf("error decoding config: %w", err)
	}
	return
}
