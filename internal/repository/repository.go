package repository

import (
	"context"
	"errors"
	"slot_machine/internal/model"
)

var (
	// ErrNotFound - записи с таким ключом нет
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists - запись с таким ключом уже есть
	ErrAlreadyExists = errors.New("already exists")
)

// SessionRepository - хранилище игровых сессий по ID.
// Реализации безопасны для конкурентного использования
type SessionRepository interface {
	Create(ctx context.Context, session *model.GameSession) error
	FindByID(ctx context.Context, id string) (*model.GameSession, error)
	Update(ctx context.Context, session *model.GameSession) error
	Delete(ctx context.Context, id string) error
}

// StatsRepository - статистика RTP в памяти процесса
type StatsRepository interface {
	Stats() model.RTPStats
	RecordRoll(stake, payout int, suppressed bool)
}
