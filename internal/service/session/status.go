package session

import (
	"context"
	"fmt"
	"slot_machine/internal/model"
)

// Status - снимок сессии и сообщение для игрока
func (s *serv) Status(ctx context.Context, sessionID string) (*model.SessionStatus, error) {
	session, err := s.find(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Session is active, you have %d credits", session.Credits())
	if !session.Active() {
		message = fmt.Sprintf("Session has ended, you have %d credits", session.Credits())
	}

	return &model.SessionStatus{
		Session: session.Record(),
		Message: message,
	}, nil
}
