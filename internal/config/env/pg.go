package env

import (
	"errors"
	"slot_machine/internal/config"
	"strings"
)

type pgConfig struct {
	Dsn string `env:"PG_DSN"`
}

func NewPGConfig() (config.PGConfig, error) {
	var cfg pgConfig
	if err := config.ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(cfg.Dsn)) == 0 {
		return nil, errors.New("pg dsn not found")
	}

	return &cfg, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.Dsn
}
