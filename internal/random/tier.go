package random

import (
	"errors"
	"fmt"
)

// Tier - диапазон баланса и вероятность подавления выигрыша в нем.
// MaxCredits == 0 означает диапазон без верхней границы
type Tier struct {
	MinCredits  int
	MaxCredits  int
	Probability float64
}

// DefaultTiers - до 40 кредитов выигрыш не трогаем, 40..60 - 30%, выше 60 - 60%
var DefaultTiers = []Tier{
	{MinCredits: 40, MaxCredits: 60, Probability: 0.3},
	{MinCredits: 61, Probability: 0.6},
}

var ErrInvalidTier = errors.New("invalid suppression tier")

func (t Tier) contains(credits int) bool {
	if credits < t.MinCredits {
		return false
	}
	return t.MaxCredits == 0 || credits <= t.MaxCredits
}

// ValidateTiers проверяет границы и вероятности
func ValidateTiers(tiers []Tier) error {
	for i, t := range tiers {
		if t.MinCredits < 0 {
			return fmt.Errorf("tier %d: negative min_credits: %w", i, ErrInvalidTier)
		}
		if t.MaxCredits != 0 && t.MaxCredits < t.MinCredits {
			return fmt.Errorf("tier %d: max_credits below min_credits: %w", i, ErrInvalidTier)
		}
		if t.Probability < 0 || t.Probability > 1 {
			return fmt.Errorf("tier %d: probability %v out of [0,1]: %w", i, t.Probability, ErrInvalidTier)
		}
	}
	return nil
}
