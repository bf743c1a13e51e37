package config

import (
	"fmt"
	"path/filepath"
	"strings"

	internal "github.com/ZanzyTHEbar/matcache/matcache"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Solver  SolverConfig  `mapstructure:"solver"`
}

// LoggingConfig controls the diagnostic stream.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // zerolog level: trace, debug, info, warn, error
	Format string `mapstructure:"format"` // "console" or "json"
}

// SolverConfig controls how the inversion collaborator is wired.
type SolverConfig struct {
	Instrument         bool    `mapstructure:"instrument"`          // Wrap the inverter with a call counter
	ConditionTolerance float64 `mapstructure:"condition_tolerance"` // Reject inverses above this condition number
}

var AppConfig Config

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(configPath string) (*Config, error) {
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath(filepath.Join("etc", internal.DefaultAppName))
		viper.AddConfigPath(internal.DefaultConfigPath)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Set default values
	viper.SetDefault("logging.level", internal.DefaultLogLevel)
	viper.SetDefault("logging.format", internal.DefaultLogFormat)
	viper.SetDefault("solver.instrument", true)
	viper.SetDefault("solver.condition_tolerance", internal.DefaultConditionTolerance)

	viper.AutomaticEnv()
	// Replace dots with underscores in env var names e.g. logging.level becomes LOGGING_LEVEL
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; defaults will be used.
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &AppConfig, nil
}

// WatchConfig re-reads AppConfig when the config file changes on disk and
// hands the refreshed config to onChange.
func WatchConfig(onChange func(*Config)) {
	viper.OnConfigChange(func(e fsnotify.Event) {
		if err := viper.Unmarshal(&AppConfig); err != nil {
			return
		}
		if onChange != nil {
			onChange(&AppConfig)
		}
	})
	viper.WatchConfig()
}
