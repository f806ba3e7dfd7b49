package env

import (
	"fmt"
	"slot_machine/internal/config"
	"strings"
)

type storeConfig struct {
	Store string `env:"SESSION_STORE" envDefault:"memory"`
}

// NewStoreConfig - какое хранилище сессий поднимать: memory, postgres или redis
func NewStoreConfig() (config.StoreConfig, error) {
	var cfg storeConfig
	if err := config.ParseEnv(&cfg); err != nil {
		return nil, err
	}

	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))
	switch cfg.Store {
	case config.StoreMemory, config.StorePostgres, config.StoreRedis:
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.Store)
	}

	return &cfg, nil
}

func (cfg *storeConfig) Kind() string {
	return cfg.Store
}
