package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the app reads.
const EnvPrefix = "WEGBEREITER"

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env         string `mapstructure:"env"`     // anything but "production" selects the development logger
	DBPath      string `mapstructure:"db"`      // SQLite history file (empty = default XDG path)
	ContentPath string `mapstructure:"content"` // alternative lesson catalogue (empty = built-in)
	History     bool   `mapstructure:"history"` // record answers and runs
	Log         Log    `mapstructure:"log"`
}

// Log contains logging configuration.
type Log struct {
	File  string `mapstructure:"file"`  // empty disables logging
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// Production reports whether the app runs with production settings.
func (c *Config) Production() bool {
	return c.Env == "production"
}

// Load reads configuration from an optional YAML file, a .env file and
// environment variables. If path is empty, config.yaml is looked up in the
// working directory and in $XDG_CONFIG_HOME/wegbereiter.
func Load(path string) (*Config, error) {
	// .env values never override variables already set in the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$XDG_CONFIG_HOME/wegbereiter")
		v.AddConfigPath("$HOME/.config/wegbereiter")
	}

	v.SetDefault("env", "production")
	v.SetDefault("db", "")
	v.SetDefault("content", "")
	v.SetDefault("history", true)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // log.file -> WEGBEREITER_LOG_FILE
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return &cfg, nil
}
