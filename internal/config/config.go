package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr      string     `env:"HTTP_ADDR" envDefault:":8080"`
	DBPath        string     `env:"DB_PATH" envDefault:"data/game.db"`
	LogLevel      slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	DataDir       string     `env:"DATA_DIR"`
	SPADir        string     `env:"SPA_DIR" envDefault:"../web/dist"`
	AdminEmail    string     `env:"ADMIN_EMAIL"`
	AdminPassword string     `env:"ADMIN_PASSWORD"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
