package env

import (
	"slot_machine/internal/config"
	"time"
)

type httpConfig struct {
	Addr  string        `env:"HTTP_ADDR" envDefault:":8080"`
	Read  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	Write time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	var cfg httpConfig
	if err := config.ParseEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *httpConfig) Address() string             { return cfg.Addr }
func (cfg *httpConfig) ReadTimeout() time.Duration  { return cfg.Read }
func (cfg *httpConfig) WriteTimeout() time.Duration { return cfg.Write }
