package session

import (
	"context"
	"errors"
	"fmt"
	"slot_machine/internal/config"
	"slot_machine/internal/model"
	"slot_machine/internal/repository"
	"slot_machine/internal/service"
	"slot_machine/pkg/keylock"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type serv struct {
	repo            repository.SessionRepository
	locks           *keylock.KeyLock
	log             *zap.Logger
	startingCredits int
	newID           func() string
}

func NewSessionService(
	cfg config.GameConfig,
	repo repository.SessionRepository,
	locks *keylock.KeyLock,
	log *zap.Logger,
) service.SessionService {
	return &serv{
		repo:            repo,
		locks:           locks,
		log:             log.Named("session"),
		startingCredits: cfg.StartingCredits(),
		newID:           uuid.NewString,
	}
}

// find - сессия из хранилища, ErrNotFound превращается в ErrSessionNotFound
func (s *serv) find(ctx context.Context, sessionID string) (*model.GameSession, error) {
	session, err := s.repo.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, model.ErrSessionNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	return session, nil
}
