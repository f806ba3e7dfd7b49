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

// CashOut закрывает сессию и отдает накопленные кредиты
func (s *serv) CashOut(ctx context.Context, sessionID string) (*model.CashOutResult, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	session, err := s.find(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	credits, err := session.CashOut()
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, session); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, model.ErrSessionNotFound
		}
		return nil, fmt.Errorf("update session: %w", err)
	}

	metrics.RecordCashOut(credits)
	s.log.Info("session cashed out",
		zap.String("session_id", sessionID),
		zap.Int("credits", credits),
	)

	return &model.CashOutResult{
		Credits: credits,
		Message: fmt.Sprintf("Session ended successfully, you have received %d credits", credits),
	}, nil
}
