package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		BaseURL   string `yaml:"base_url"`
		APIKey    string `yaml:"api_key"`
		Timeframe string `yaml:"timeframe"`
	} `yaml:"data_source"`
	Schedule struct {
		ReviewCron string `yaml:"review_cron"`
	} `yaml:"schedule"`
	Pattern struct {
		Days     int `yaml:"days"`
		Lookback int `yaml:"lookback"`
	} `yaml:"pattern"`
	Watchlist struct {
		StateFile string `yaml:"state_file"`
	} `yaml:"watchlist"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("KLINE_API_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("KLINE_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("REVIEW_CRON"); v != "" {
		cfg.Schedule.ReviewCron = v
	}
	if v := os.Getenv("PATTERN_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			cfg.Pattern.Days = days
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.DataSource.Timeframe == "" {
		cfg.DataSource.Timeframe = "daily"
	}
	if cfg.Schedule.ReviewCron == "" {
		cfg.Schedule.ReviewCron = "0 0 18 * * 1-5"
	}
	if cfg.Pattern.Days == 0 {
		cfg.Pattern.Days = 20
	}
	if cfg.Pattern.Lookback == 0 {
		cfg.Pattern.Lookback = 200
	}
	if cfg.Watchlist.StateFile == "" {
		cfg.Watchlist.StateFile = "data/watchlist.json"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/stockscope.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if c.Pattern.Days < 5 || c.Pattern.Days > 60 {
		return fmt.Errorf("pattern.days must be within 5-60, got %d", c.Pattern.Days)
	}
	return nil
}
