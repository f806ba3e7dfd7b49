package session

import (
	"context"
	"errors"
	"fmt"
	"slot_machine/internal/metrics"
	"slot_machine/internal/model"
	"slot_machine/internal/repository"

	"go.uber.org/zap"
)

// Create - новая активная сессия со стартовым балансом
func (s *serv) Create(ctx context.Context) (*model.CreatedSession, error) {
	session := model.NewGameSession(s.newID(), s.startingCredits)

	if err := s.repo.Create(ctx, session); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, fmt.Errorf("session id collision %s: %w", session.ID(), err)
		}
		return nil, fmt.Errorf("create session: %w", err)
	}

	metrics.RecordSessionCreated()
	s.log.Info("session created",
		zap.String("session_id", session.ID()),
		zap.Int("credits", session.Credits()),
	)

	return &model.CreatedSession{
		ID:      session.ID(),
		Credits: session.Credits(),
	}, nil
}
