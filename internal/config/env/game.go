package env

import (
	"errors"
	"fmt"
	"os"
	"slot_machine/internal/config"

	"gopkg.in/yaml.v3"
)

const (
	gameConfigEnvName = "GAME_CONFIG"
	defaultGamePath   = "config.yaml"

	defaultStartingCredits = 10
	defaultStake           = 1
	defaultMaxRedraws      = 1000
	defaultStatsWindow     = 500
)

type tierYAML struct {
	MinCredits  int     `yaml:"min_credits"`
	MaxCredits  int     `yaml:"max_credits"`
	Probability float64 `yaml:"probability"`
}

type gameYAML struct {
	Game struct {
		StartingCredits int        `yaml:"starting_credits"`
		Stake           int        `yaml:"stake"`
		MaxRedraws      int        `yaml:"max_redraws"`
		StatsWindow     int        `yaml:"stats_window"`
		Suppression     []tierYAML `yaml:"suppression"`
	} `yaml:"game"`
}

type gameConfig struct {
	startingCredits int
	stake           int
	maxRedraws      int
	statsWindow     int
	tiers           []config.SuppressionTier
}

func defaultTiers() []config.SuppressionTier {
	return []config.SuppressionTier{
		{MinCredits: 40, MaxCredits: 60, Probability: 0.3},
		{MinCredits: 61, Probability: 0.6},
	}
}

// NewGameConfig - путь из GAME_CONFIG, по умолчанию config.yaml
func NewGameConfig() (config.GameConfig, error) {
	path := os.Getenv(gameConfigEnvName)
	if path == "" {
		path = defaultGamePath
	}
	return NewGameConfigFromYAML(path)
}

// NewGameConfigFromYAML читает параметры игры.
// Нет файла - значения по умолчанию, пропущенные поля тоже берутся по умолчанию
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultGameConfig(), nil
		}
		return nil, fmt.Errorf("read game config: %w", err)
	}
	return parseGameConfig(data)
}

func defaultGameConfig() *gameConfig {
	return &gameConfig{
		startingCredits: defaultStartingCredits,
		stake:           defaultStake,
		maxRedraws:      defaultMaxRedraws,
		statsWindow:     defaultStatsWindow,
		tiers:           defaultTiers(),
	}
}

func parseGameConfig(data []byte) (*gameConfig, error) {
	var raw gameYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse game config: %w", err)
	}

	cfg := defaultGameConfig()
	g := raw.Game

	if g.StartingCredits != 0 {
		cfg.startingCredits = g.StartingCredits
	}
	if g.Stake != 0 {
		cfg.stake = g.Stake
	}
	if g.MaxRedraws != 0 {
		cfg.maxRedraws = g.MaxRedraws
	}
	if g.StatsWindow != 0 {
		cfg.statsWindow = g.StatsWindow
	}
	if g.Suppression != nil {
		cfg.tiers = make([]config.SuppressionTier, len(g.Suppression))
		for i, t := range g.Suppression {
			cfg.tiers[i] = config.SuppressionTier{
				MinCredits:  t.MinCredits,
				MaxCredits:  t.MaxCredits,
				Probability: t.Probability,
			}
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *gameConfig) validate() error {
	switch {
	case cfg.startingCredits < 0:
		return errors.New("starting_credits must not be negative")
	case cfg.stake <= 0:
		return errors.New("stake must be positive")
	case cfg.maxRedraws <= 0:
		return errors.New("max_redraws must be positive")
	case cfg.statsWindow <= 0:
		return errors.New("stats_window must be positive")
	}

	for i, t := range cfg.tiers {
		if t.MinCredits < 0 {
			return fmt.Errorf("suppression[%d]: min_credits must not be negative", i)
		}
		if t.MaxCredits != 0 && t.MaxCredits < t.MinCredits {
			return fmt.Errorf("suppression[%d]: max_credits below min_credits", i)
		}
		if t.Probability < 0 || t.Probability > 1 {
			return fmt.Errorf("suppression[%d]: probability must be in [0,1]", i)
		}
	}
	return nil
}

func (cfg *gameConfig) StartingCredits() int { return cfg.startingCredits }
func (cfg *gameConfig) Stake() int           { return cfg.stake }
func (cfg *gameConfig) MaxRedraws() int      { return cfg.maxRedraws }
func (cfg *gameConfig) StatsWindow() int     { return cfg.statsWindow }

func (cfg *gameConfig) SuppressionTiers() []config.SuppressionTier {
	out := make([]config.SuppressionTier, len(cfg.tiers))
	copy(out, cfg.tiers)
	return out
}
