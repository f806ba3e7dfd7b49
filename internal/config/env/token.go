package env

import (
	"errors"
	"slot_machine/internal/config"
	"time"
)

// defaultTokenSecret - только для локального запуска
const defaultTokenSecret = "development-secret-key-min-32-chars-long"

type tokenConfig struct {
	Secret string        `env:"TOKEN_SECRET" envDefault:"development-secret-key-min-32-chars-long"`
	TTL    time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	Secure bool          `env:"COOKIE_SECURE" envDefault:"false"`
}

func NewTokenConfig() (config.TokenConfig, error) {
	var cfg tokenConfig
	if err := config.ParseEnv(&cfg); err != nil {
		return nil, err
	}

	if len(cfg.Secret) < 32 {
		return nil, errors.New("token secret must be at least 32 bytes")
	}
	if cfg.TTL <= 0 {
		return nil, errors.New("token ttl must be positive")
	}

	return &cfg, nil
}

func (cfg *tokenConfig) SecretKey() []byte       { return []byte(cfg.Secret) }
func (cfg *tokenConfig) Duration() time.Duration { return cfg.TTL }
func (cfg *tokenConfig) SecureCookie() bool      { return cfg.Secure }

// IsDefaultSecret - секрет не задан через TOKEN_SECRET
func IsDefaultSecret(cfg config.TokenConfig) bool {
	return string(cfg.SecretKey()) == defaultTokenSecret
}
