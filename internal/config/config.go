// Package config resolves runtime settings from flags, P2TUTOR_*
// environment variables, an optional p2tutor.yaml file and defaults, in
// that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/abhisek/p2tutor/internal/progress"
)

// EnvPrefix namespaces environment variables, e.g. P2TUTOR_PROGRESS_FILE.
const EnvPrefix = "P2TUTOR"

type Config struct {
	ProgressFile string `mapstructure:"progress_file"`
	DB           string `mapstructure:"db"`
	LogFile      string `mapstructure:"log_file"`
	LogLevel     string `mapstructure:"log_level"`
	MetricsFile  string `mapstructure:"metrics_file"`
	Seed         int64  `mapstructure:"seed"`
	History      int    `mapstructure:"history"`

	// ConfigFile is the file the settings were read from, if any.
	ConfigFile string `mapstructure:"-"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"progress":     "progress_file",
	"db":           "db",
	"log-file":     "log_file",
	"log-level":    "log_level",
	"metrics-file": "metrics_file",
	"seed":         "seed",
	"limit":        "history",
}

// Load reads the configuration. configFile, when non-empty, must exist;
// otherwise p2tutor.yaml is looked up in the working directory and in
// $XDG_CONFIG_HOME/p2tutor and skipped when absent. Flags present in flags
// are bound to their keys.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("progress_file", progress.DefaultFile)
	v.SetDefault("db", "")
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("metrics_file", "")
	v.SetDefault("seed", 0)
	v.SetDefault("history", 20)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("p2tutor")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()
	return &cfg, nil
}

// configDir returns $XDG_CONFIG_HOME/p2tutor, or ~/.config/p2tutor.
func configDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "p2tutor"), nil
}
