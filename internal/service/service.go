package service

import (
	"context"
	"slot_machine/internal/model"
)

// GameService - спины в рамках сессии
type GameService interface {
	Roll(ctx context.Context, sessionID string) (*model.RollResult, error)
	Stats() model.RTPStats
}

// SessionService - жизненный цикл сессии
type SessionService interface {
	Create(ctx context.Context) (*model.CreatedSession, error)
	Status(ctx context.Context, sessionID string) (*model.SessionStatus, error)
	CashOut(ctx context.Context, sessionID string) (*model.CashOutResult, error)
	Delete(ctx context.Context, sessionID string) error
}

// SymbolDrawer - источник случайности для спина
type SymbolDrawer interface {
	DrawSymbols(n int) []model.Symbol
	ShouldSuppress(credits int) bool
}
