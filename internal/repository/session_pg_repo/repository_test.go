package session_pg_repo

import (
	"context"
	"errors"
	"os"
	"slot_machine/internal/model"
	"slot_machine/internal/repository"
	"testing"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// newTestRepo connects to PG_TEST_DSN and skips the test when it is unset.
func newTestRepo(t *testing.T) repository.SessionRepository {
	t.Helper()

	dsn := os.Getenv("PG_TEST_DSN")
	if dsn == "" {
		t.Skip("PG_TEST_DSN not set")
	}

	ctx := context.Background()
	dbc, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(dbc.Close)

	if err := Migrate(ctx, dbc); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	txManager, err := manager.New(trmpgx.NewDefaultFactory(dbc))
	if err != nil {
		t.Fatalf("tx manager: %v", err)
	}

	return NewSessionRepository(dbc, txManager)
}

func TestSessionLifecyclePostgres(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	id := uuid.NewString()

	s := model.NewGameSession(id, 10)
	if err := r.Create(ctx, s); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := r.Create(ctx, s); !errors.Is(err, repository.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	if err := s.DecreaseCredits(1); err != nil {
		t.Fatalf("stake: %v", err)
	}
	if _, err := s.AddRoll([3]model.Symbol{model.Lemon, model.Lemon, model.Lemon}, false); err != nil {
		t.Fatalf("add roll: %v", err)
	}
	if err := r.Update(ctx, s); err != nil {
		t.Fatalf("update: %v", err)
	}
	// second update must not duplicate stored rolls
	if err := r.Update(ctx, s); err != nil {
		t.Fatalf("update again: %v", err)
	}

	got, err := r.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Credits() != 29 {
		t.Fatalf("expected 29 credits, got %d", got.Credits())
	}
	if len(got.History()) != 1 {
		t.Fatalf("expected 1 roll, got %d", len(got.History()))
	}
	if got.History()[0].Payout() != 20 {
		t.Fatalf("expected payout 20, got %d", got.History()[0].Payout())
	}

	if err := r.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := r.FindByID(ctx, id); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := r.Delete(ctx, id); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestUpdateMissingPostgres(t *testing.T) {
	r := newTestRepo(t)
	err := r.Update(context.Background(), model.NewGameSession(uuid.NewString(), 1))
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
