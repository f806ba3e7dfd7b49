package env

import (
	"slot_machine/internal/config"
)

type logConfig struct {
	Lvl        string `env:"LOG_LEVEL" envDefault:"info"`
	Path       string `env:"LOG_FILE"`
	MaxSize    int    `env:"LOG_MAX_SIZE_MB" envDefault:"100"`
	Backups    int    `env:"LOG_MAX_BACKUPS" envDefault:"7"`
	MaxAge     int    `env:"LOG_MAX_DAYS" envDefault:"14"`
	CompressOn bool   `env:"LOG_COMPRESS" envDefault:"true"`
}

func NewLogConfig() (config.LogConfig, error) {
	var cfg logConfig
	if err := config.ParseEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *logConfig) Level() string   { return cfg.Lvl }
func (cfg *logConfig) File() string    { return cfg.Path }
func (cfg *logConfig) MaxSizeMB() int  { return cfg.MaxSize }
func (cfg *logConfig) MaxBackups() int { return cfg.Backups }
func (cfg *logConfig) MaxAgeDays() int { return cfg.MaxAge }
func (cfg *logConfig) Compress() bool  { return cfg.CompressOn }
