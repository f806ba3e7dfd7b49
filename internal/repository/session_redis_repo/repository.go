package session_redis_repo

import (
	"context"
	"errors"
	"fmt"
	"slot_machine/internal/model"
	"slot_machine/internal/repository"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "slot:session:"

// repo - сессии в Redis: одна JSON-запись на ключ.
// ttl == 0 - ключи без срока жизни, иначе срок продлевается на каждом Update
type repo struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionRepository(rdb *redis.Client, ttl time.Duration) repository.SessionRepository {
	return &repo{
		rdb: rdb,
		ttl: ttl,
	}
}

func key(id string) string {
	return keyPrefix + id
}

// Create - SETNX, ErrAlreadyExists если ключ занят
func (r *repo) Create(ctx context.Context, session *model.GameSession) error {
	data, err := model.MarshalSession(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	ok, err := r.rdb.SetNX(ctx, key(session.ID()), data, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("redis setnx: %w", err)
	}
	if !ok {
		return repository.ErrAlreadyExists
	}
	return nil
}

func (r *repo) FindByID(ctx context.Context, id string) (*model.GameSession, error) {
	data, err := r.rdb.Get(ctx, key(id)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, repository.ErrNotFound
	case err != nil:
		return nil, fmt.Errorf("redis get: %w", err)
	}

	return model.DecodeSession(data)
}

// Update - SET XX, ErrNotFound если ключа нет (или он истек)
func (r *repo) Update(ctx context.Context, session *model.GameSession) error {
	data, err := model.MarshalSession(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	ok, err := r.rdb.SetXX(ctx, key(session.ID()), data, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("redis setxx: %w", err)
	}
	if !ok {
		return repository.ErrNotFound
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, id string) error {
	n, err := r.rdb.Del(ctx, key(id)).Result()
	if err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
