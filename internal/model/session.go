package model

import (
	"time"
)

// DefaultStartingCredits - стартовый баланс новой сессии
const DefaultStartingCredits = 10

// GameSession - игровая сессия игрока.
// Все изменения баланса и истории идут только через методы ниже
type GameSession struct {
	id          string
	credits     int
	createdAt   time.Time
	lastUpdated time.Time
	active      bool
	history     []Roll
}

// NewGameSession создает активную сессию с указанным балансом
func NewGameSession(id string, credits int) *GameSession {
	now := time.Now().UTC()
	return &GameSession{
		id:          id,
		credits:     credits,
		createdAt:   now,
		lastUpdated: now,
		active:      true,
	}
}

func (s *GameSession) ID() string             { return s.id }
func (s *GameSession) Credits() int           { return s.credits }
func (s *GameSession) CreatedAt() time.Time   { return s.createdAt }
func (s *GameSession) LastUpdated() time.Time { return s.lastUpdated }
func (s *GameSession) Active() bool           { return s.active }

// History returns a copy of the roll history, oldest first.
func (s *GameSession) History() []Roll {
	out := make([]Roll, len(s.history))
	copy(out, s.history)
	return out
}

// DecreaseCredits - списание кредитов
func (s *GameSession) DecreaseCredits(amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if !s.active {
		return ErrSessionInactive
	}
	if s.credits < amount {
		return ErrInsufficientFunds
	}
	s.credits -= amount
	s.touch()
	return nil
}

// IncreaseCredits - начисление кредитов
func (s *GameSession) IncreaseCredits(amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if !s.active {
		return ErrSessionInactive
	}
	s.credits += amount
	s.touch()
	return nil
}

// AddRoll записывает спин в историю и начисляет выигрыш.
// Ставка должна быть списана до вызова: Roll фиксирует баланс после списания
func (s *GameSession) AddRoll(symbols [3]Symbol, wasSuppressed bool) (Roll, error) {
	if !s.active {
		return Roll{}, ErrSessionInactive
	}

	roll := NewRoll(symbols, s.credits, time.Now().UTC(), wasSuppressed)

	if roll.IsWin() {
		if err := s.IncreaseCredits(roll.Payout()); err != nil {
			return Roll{}, err
		}
	}

	s.history = append(s.history, roll)
	s.touch()

	return roll, nil
}

// CashOut закрывает сессию и возвращает баланс, который был до обнуления
func (s *GameSession) CashOut() (int, error) {
	if !s.active {
		return 0, ErrSessionInactive
	}
	credits := s.credits
	s.credits = 0
	s.Deactivate()
	return credits, nil
}

// Deactivate - повторный вызов безопасен
func (s *GameSession) Deactivate() {
	s.active = false
	s.touch()
}

// Clone returns a deep copy. Rolls are immutable values so copying the slice is enough.
func (s *GameSession) Clone() *GameSession {
	c := *s
	c.history = s.History()
	return &c
}

// touch сдвигает lastUpdated вперед. Часы могут вернуть то же значение,
// поэтому гарантируем строгий рост
func (s *GameSession) touch() {
	now := time.Now().UTC()
	if !now.After(s.lastUpdated) {
		now = s.lastUpdated.Add(time.Nanosecond)
	}
	s.lastUpdated = now
}
