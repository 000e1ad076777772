// Package config provides configuration management for the strategist CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"

	"option-strategist/internal/errors"
)

// Config holds all application configuration.
type Config struct {
	Pricing PricingConfig `mapstructure:"pricing"`
	PnL     PnLConfig     `mapstructure:"pnl"`
	Storage StorageConfig `mapstructure:"storage"`
	Logging LoggingConfig `mapstructure:"logging"`
	UI      UIConfig      `mapstructure:"ui"`
}

// PricingConfig holds default pricing model parameters.
type PricingConfig struct {
	Volatility float64 `mapstructure:"volatility"` // annualized, e.g. 0.25
	Rate       float64 `mapstructure:"rate"`       // risk-free rate, e.g. 0.05
}

// PnLConfig holds P&L evaluation parameters.
type PnLConfig struct {
	GridPoints int `mapstructure:"grid_points"`
}

// StorageConfig holds persistence configuration.
type StorageConfig struct {
	DatabasePath string `mapstructure:"database_path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Console    bool   `mapstructure:"console"`
	File       bool   `mapstructure:"file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool `mapstructure:"color_enabled"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/option-strategist"
	}
	return filepath.Join(home, ".config", "option-strategist")
}

// Default returns the built-in configuration defaults.
func Default() *Config {
	dir := DefaultConfigDir()
	return &Config{
		Pricing: PricingConfig{Volatility: 0.25, Rate: 0.05},
		PnL:     PnLConfig{GridPoints: 500},
		Storage: StorageConfig{DatabasePath: filepath.Join(dir, "strategist.db")},
		Logging: LoggingConfig{
			Level:      "info",
			Console:    true,
			File:       true,
			FilePath:   filepath.Join(dir, "logs", "strategist.log"),
			MaxSize:    50,
			MaxBackups: 5,
			MaxAge:     30,
		},
		UI: UIConfig{ColorEnabled: true},
	}
}

// Load loads configuration from the specified directory. A missing config
// file is not an error; a template is written and the defaults are used.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := Default()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	v.SetDefault("pricing.volatility", cfg.Pricing.Volatility)
	v.SetDefault("pricing.rate", cfg.Pricing.Rate)
	v.SetDefault("pnl.grid_points", cfg.PnL.GridPoints)
	v.SetDefault("storage.database_path", cfg.Storage.DatabasePath)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.console", cfg.Logging.Console)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.file_path", cfg.Logging.FilePath)
	v.SetDefault("logging.max_size", cfg.Logging.MaxSize)
	v.SetDefault("logging.max_backups", cfg.Logging.MaxBackups)
	v.SetDefault("logging.max_age", cfg.Logging.MaxAge)
	v.SetDefault("ui.color_enabled", cfg.UI.ColorEnabled)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config.toml: %w", err)
		}
		if err := createTemplateConfig(configDir); err != nil {
			return nil, fmt.Errorf("writing config template: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("STRATEGIST_VOLATILITY"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Pricing.Volatility = f
		}
	}
	if v := os.Getenv("STRATEGIST_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Pricing.Rate = f
		}
	}
	if v := os.Getenv("STRATEGIST_DB_PATH"); v != "" {
		cfg.Storage.DatabasePath = v
	}
	if v := os.Getenv("STRATEGIST_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Pricing.Volatility <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalid, "pricing.volatility must be > 0, got %v", c.Pricing.Volatility)
	}
	if c.PnL.GridPoints < 2 {
		return errors.Wrapf(errors.ErrConfigInvalid, "pnl.grid_points must be >= 2, got %d", c.PnL.GridPoints)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.Wrapf(errors.ErrConfigInvalid, "unknown logging.level %q", c.Logging.Level)
	}
	return nil
}
