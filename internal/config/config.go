// Package config provides configuration management for the pricer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"fxbarrier-pricer/internal/calendar"
)

// Config holds all application configuration.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Store    StoreConfig    `mapstructure:"store"`
	Market   MarketConfig   `mapstructure:"market"`
	Calendar CalendarConfig `mapstructure:"calendar"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Console    bool   `mapstructure:"console"`
	File       bool   `mapstructure:"file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// StoreConfig holds result persistence configuration.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// MarketConfig holds market data configuration.
type MarketConfig struct {
	SnapshotPath string `mapstructure:"snapshot_path"`
	// AsOf is the valuation date in YYYY-MM-DD; empty means today.
	AsOf string `mapstructure:"as_of"`
}

// CalendarConfig holds per-calendar date adjustments. Dates are YYYY-MM-DD.
type CalendarConfig struct {
	AdditionalHolidays     map[string][]string `mapstructure:"additional_holidays"`
	AdditionalBusinessDays map[string][]string `mapstructure:"additional_business_days"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/fxbarrier-pricer"
	}
	return filepath.Join(home, ".config", "fxbarrier-pricer")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	setDefaults(v, configDir)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, configDir string) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", true)
	v.SetDefault("logging.file", false)
	v.SetDefault("logging.file_path", filepath.Join(configDir, "logs", "pricer.log"))
	v.SetDefault("logging.max_size", 100)
	v.SetDefault("logging.max_backups", 7)
	v.SetDefault("logging.max_age", 30)
	v.SetDefault("store.path", filepath.Join(configDir, "pricer.db"))
	v.SetDefault("market.snapshot_path", filepath.Join(configDir, "market.csv"))
	v.SetDefault("market.as_of", "")
}

// AsOfDate parses the configured valuation date, defaulting to today.
func (c MarketConfig) AsOfDate() (time.Time, error) {
	if c.AsOf == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", c.AsOf)
}

// AdjustmentConfig builds the calendar adjustment config from the parsed
// date strings.
func (c CalendarConfig) AdjustmentConfig() (*calendar.AdjustmentConfig, error) {
	adj := calendar.NewAdjustmentConfig()
	for cal, dates := range c.AdditionalHolidays {
		for _, s := range dates {
			d, err := time.Parse("2006-01-02", s)
			if err != nil {
				return nil, fmt.Errorf("invalid holiday date %q for calendar %s: %w", s, cal, err)
			}
			adj.AddHolidays(cal, d)
		}
	}
	for cal, dates := range c.AdditionalBusinessDays {
		for _, s := range dates {
			d, err := time.Parse("2006-01-02", s)
			if err != nil {
				return nil, fmt.Errorf("invalid business day %q for calendar %s: %w", s, cal, err)
			}
			adj.AddBusinessDays(cal, d)
		}
	}
	return adj, nil
}
