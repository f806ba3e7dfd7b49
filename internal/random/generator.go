// Package random draws reel symbols and decides when a winning draw is suppressed.
package random

import (
	"math/rand/v2"
	"slot_machine/internal/model"
	"sync"
)

// Generator - источник символов и решений о подавлении выигрыша.
// Безопасен для конкурентного использования
type Generator struct {
	mtx   sync.Mutex
	rng   *rand.Rand
	tiers []Tier
}

// New создает генератор с сидом из crypto/rand
func New(tiers []Tier) (*Generator, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return NewSeeded(seed, tiers)
}

// NewSeeded создает детерминированный генератор. Нужен для тестов и воспроизведения
func NewSeeded(seed uint64, tiers []Tier) (*Generator, error) {
	if err := ValidateTiers(tiers); err != nil {
		return nil, err
	}

	t := make([]Tier, len(tiers))
	copy(t, tiers)

	return &Generator{
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		tiers: t,
	}, nil
}

// DrawSymbols - n независимых равновероятных символов
func (g *Generator) DrawSymbols(n int) []model.Symbol {
	if n <= 0 {
		return nil
	}

	g.mtx.Lock()
	defer g.mtx.Unlock()

	out := make([]model.Symbol, n)
	for i := range out {
		out[i] = model.Symbols[g.rng.IntN(len(model.Symbols))]
	}
	return out
}

// Probability - вероятность подавления для баланса, первый подходящий диапазон
func (g *Generator) Probability(credits int) float64 {
	for _, t := range g.tiers {
		if t.contains(credits) {
			return t.Probability
		}
	}
	return 0
}

// ShouldSuppress решает, нужно ли перекрутить выигрышную комбинацию
func (g *Generator) ShouldSuppress(credits int) bool {
	p := g.Probability(credits)
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	}

	g.mtx.Lock()
	defer g.mtx.Unlock()

	return g.rng.Float64() < p
}
