package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/justinabrahms/atchess-rules/internal/chess"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type Config struct {
	Development DevelopmentConfig `mapstructure:"development"`
	Game        GameConfig        `mapstructure:"game"`
}

type DevelopmentConfig struct {
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
}

type GameConfig struct {
	FirstPlayer    string `mapstructure:"first_player"`
	LegacyRollback bool   `mapstructure:"legacy_rollback"`
	HistoryWindow  int    `mapstructure:"history_window"`
}

// Load reads config.yaml from the working directory or ./config. A missing
// file is not an error: defaults and CHESS_* environment variables apply.
func Load() (*Config, error) {
	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return unmarshal(v)
}

// LoadFile reads the config from an explicit path.
func LoadFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()

	// Enable environment variables
	v.SetEnvPrefix("CHESS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	v.SetDefault("development.debug", false)
	v.SetDefault("development.log_level", "info")
	v.SetDefault("game.first_player", "white")
	v.SetDefault("game.legacy_rollback", false)
	v.SetDefault("game.history_window", 8)

	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the game cannot start with.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Development.LogLevel); err != nil {
		return fmt.Errorf("invalid development.log_level: %w", err)
	}
	if _, err := chess.ParseColor(c.Game.FirstPlayer); err != nil {
		return fmt.Errorf("invalid game.first_player: %w", err)
	}
	if c.Game.HistoryWindow < 0 {
		return fmt.Errorf("invalid game.history_window: %d", c.Game.HistoryWindow)
	}
	return nil
}

// GameOptions translates the game section into chess.Game options.
func (c *Config) GameOptions() ([]chess.Option, error) {
	first, err := chess.ParseColor(c.Game.FirstPlayer)
	if err != nil {
		return nil, err
	}
	return []chess.Option{
		chess.WithFirstPlayer(first),
		chess.WithLegacyRollback(c.Game.LegacyRollback),
	}, nil
}

// Level is the parsed log level; invalid levels fall back to info.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Development.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
