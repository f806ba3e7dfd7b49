package session_repo

import (
	"context"
	"slot_machine/internal/model"
	"slot_machine/internal/repository"
	"sync"
)

// repo - хранилище сессий в памяти процесса.
// Хранит копии: изменения сессии не видны другим, пока не вызван Update
type repo struct {
	mtx      sync.RWMutex
	sessions map[string]*model.GameSession
}

func NewSessionRepository() repository.SessionRepository {
	return &repo{
		sessions: make(map[string]*model.GameSession),
	}
}

// Create - сохраняет новую сессию, ErrAlreadyExists если ID занят
func (r *repo) Create(_ context.Context, session *model.GameSession) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.sessions[session.ID()]; ok {
		return repository.ErrAlreadyExists
	}
	r.sessions[session.ID()] = session.Clone()
	return nil
}

func (r *repo) FindByID(_ context.Context, id string) (*model.GameSession, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return s.Clone(), nil
}

// Update - перезаписывает сессию целиком
func (r *repo) Update(_ context.Context, session *model.GameSession) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.sessions[session.ID()]; !ok {
		return repository.ErrNotFound
	}
	r.sessions[session.ID()] = session.Clone()
	return nil
}

func (r *repo) Delete(_ context.Context, id string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.sessions, id)
	return nil
}
