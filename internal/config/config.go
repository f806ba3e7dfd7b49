package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// ParseEnv заполняет структуру из переменных окружения по тегам env
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Хранилища сессий
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

type HTTPConfig interface {
	Address() string
	ReadTimeout() time.Duration
	WriteTimeout() time.Duration
}

type PGConfig interface {
	DSN() string
}

type RedisConfig interface {
	Address() string
	Password() string
	DB() int
	SessionTTL() time.Duration
}

type StoreConfig interface {
	Kind() string
}

type TokenConfig interface {
	SecretKey() []byte
	Duration() time.Duration
	SecureCookie() bool
}

type LogConfig interface {
	Level() string
	File() string
	MaxSizeMB() int
	MaxBackups() int
	MaxAgeDays() int
	Compress() bool
}

// SuppressionTier - диапазон баланса и вероятность подавления выигрыша
type SuppressionTier struct {
	MinCredits  int
	MaxCredits  int // 0 - без верхней границы
	Probability float64
}

type GameConfig interface {
	StartingCredits() int
	Stake() int
	MaxRedraws() int
	SuppressionTiers() []SuppressionTier
	StatsWindow() int
}
