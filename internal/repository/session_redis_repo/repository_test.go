package session_redis_repo

import (
	"context"
	"errors"
	"os"
	"slot_machine/internal/model"
	"slot_machine/internal/repository"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// newTestRepo connects to REDIS_TEST_ADDR and skips the test when it is unset.
func newTestRepo(t *testing.T) (repository.SessionRepository, *redis.Client) {
	t.Helper()

	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		t.Fatalf("ping: %v", err)
	}

	return NewSessionRepository(rdb, time.Minute), rdb
}

func TestSessionLifecycleRedis(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	id := uuid.NewString()

	s := model.NewGameSession(id, 10)
	if err := r.Create(ctx, s); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := r.Create(ctx, s); !errors.Is(err, repository.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	if _, err := s.AddRoll([3]model.Symbol{model.Cherry, model.Lemon, model.Orange}, false); err != nil {
		t.Fatalf("add roll: %v", err)
	}
	if err := r.Update(ctx, s); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := r.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Credits() != 10 || len(got.History()) != 1 {
		t.Fatalf("unexpected session: credits=%d history=%d", got.Credits(), len(got.History()))
	}

	if err := r.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := r.FindByID(ctx, id); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCorruptRecordRedis(t *testing.T) {
	r, rdb := newTestRepo(t)
	ctx := context.Background()
	id := uuid.NewString()

	if err := rdb.Set(ctx, key(id), `{"id":"x"}`, time.Minute).Err(); err != nil {
		t.Fatalf("seed: %v", err)
	}
	t.Cleanup(func() { rdb.Del(ctx, key(id)) })

	if _, err := r.FindByID(ctx, id); !errors.Is(err, model.ErrInvalidData) {
		t.Fatalf("expected ErrInvalidData, got %v", err)
	}
}

func TestUpdateMissingRedis(t *testing.T) {
	r, _ := newTestRepo(t)
	err := r.Update(context.Background(), model.NewGameSession(uuid.NewString(), 1))
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
