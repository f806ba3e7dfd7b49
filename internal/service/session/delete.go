package session

import (
	"context"
	"errors"
	"fmt"
	"slot_machine/internal/model"
	"slot_machine/internal/repository"

	"go.uber.org/zap"
)

// Delete убирает сессию из хранилища
func (s *serv) Delete(ctx context.Context, sessionID string) error {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	if err := s.repo.Delete(ctx, sessionID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.ErrSessionNotFound
		}
		return fmt.Errorf("delete session: %w", err)
	}

	s.log.Info("session deleted", zap.String("session_id", sessionID))
	return nil
}
