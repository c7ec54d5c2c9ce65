package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config keeps runtime settings for the bot.
type Config struct {
	TelegramToken     string        `yaml:"telegram_token" env:"TELEGRAM_TOKEN"`
	AdminPassword     string        `yaml:"admin_password" env:"ADMIN_PASSWORD"`
	DatabaseURL       string        `yaml:"database_url" env:"DATABASE_URL" env-default:"bot_database.db"`
	BroadcastInterval time.Duration `yaml:"broadcast_interval" env:"BROADCAST_INTERVAL" env-default:"100ms"`
	StatsInterval     time.Duration `yaml:"stats_interval" env:"STATS_INTERVAL" env-default:"6h"`
	StatsDailyAt      string        `yaml:"stats_daily_at" env:"STATS_DAILY_AT"`
}

// Load reads configuration from an optional YAML file (CONFIG_PATH) and environment variables.
func Load() (Config, error) {
	return LoadFrom(strings.TrimSpace(os.Getenv("CONFIG_PATH")))
}

// LoadFrom reads path first when it is not empty; the environment always wins.
func LoadFrom(path string) (Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return cfg, fmt.Errorf("read config %q: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("read env: %w", err)
	}

	cfg.TelegramToken = strings.TrimSpace(cfg.TelegramToken)
	cfg.StatsDailyAt = strings.TrimSpace(cfg.StatsDailyAt)

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "bot_database.db"
	}
	if cfg.BroadcastInterval < 0 {
		cfg.BroadcastInterval = 0
	}
	if cfg.StatsInterval < 0 {
		cfg.StatsInterval = 0
	}

	if cfg.TelegramToken == "" {
		return cfg, fmt.Errorf("TELEGRAM_TOKEN is required")
	}
	if cfg.AdminPassword == "" {
		return cfg, fmt.Errorf("ADMIN_PASSWORD is required")
	}

	return cfg, nil
}
