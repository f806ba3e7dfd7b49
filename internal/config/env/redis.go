package env

import (
	"errors"
	"slot_machine/internal/config"
	"time"
)

type redisConfig struct {
	Addr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Pass     string        `env:"REDIS_PASSWORD"`
	Database int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"REDIS_SESSION_TTL" envDefault:"24h"`
}

func NewRedisConfig() (config.RedisConfig, error) {
	var cfg redisConfig
	if err := config.ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if cfg.Database < 0 {
		return nil, errors.New("redis db must not be negative")
	}
	if cfg.TTL < 0 {
		return nil, errors.New("redis session ttl must not be negative")
	}
	return &cfg, nil
}

func (cfg *redisConfig) Address() string           { return cfg.Addr }
func (cfg *redisConfig) Password() string          { return cfg.Pass }
func (cfg *redisConfig) DB() int                   { return cfg.Database }
func (cfg *redisConfig) SessionTTL() time.Duration { return cfg.TTL }
