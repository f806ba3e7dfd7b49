package session

import (
	"context"
	"errors"
	"slot_machine/internal/config"
	"slot_machine/internal/model"
	"slot_machine/internal/repository"
	"slot_machine/internal/repository/session_repo"
	"slot_machine/internal/service"
	"slot_machine/pkg/keylock"
	"testing"

	"go.uber.org/zap"
)

type testGameConfig struct{}

func (testGameConfig) StartingCredits() int                       { return model.DefaultStartingCredits }
func (testGameConfig) Stake() int                                 { return 1 }
func (testGameConfig) MaxRedraws() int                            { return 1000 }
func (testGameConfig) StatsWindow() int                           { return 100 }
func (testGameConfig) SuppressionTiers() []config.SuppressionTier { return nil }

func newTestService(t *testing.T) (service.SessionService, repository.SessionRepository) {
	t.Helper()
	repo := session_repo.NewSessionRepository()
	return NewSessionService(testGameConfig{}, repo, keylock.New(), zap.NewNop()), repo
}

// TestCreate covers a fresh session: 10 credits, active, empty history.
func TestCreate(t *testing.T) {
	serv, repo := newTestService(t)
	ctx := context.Background()

	created, err := serv.Create(ctx)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" || created.Credits != 10 {
		t.Fatalf("unexpected created session %+v", created)
	}

	stored, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !stored.Active() || stored.Credits() != 10 || len(stored.History()) != 0 {
		t.Fatalf("unexpected stored session %+v", stored.Record())
	}
}

func TestCreateUniqueIDs(t *testing.T) {
	serv, _ := newTestService(t)
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		created, err := serv.Create(context.Background())
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if seen[created.ID] {
			t.Fatalf("duplicate id %s", created.ID)
		}
		seen[created.ID] = true
	}
}

func TestCreateCollision(t *testing.T) {
	repo := session_repo.NewSessionRepository()
	s := NewSessionService(testGameConfig{}, repo, keylock.New(), zap.NewNop()).(*serv)
	s.newID = func() string { return "fixed" }

	if _, err := s.Create(context.Background()); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := s.Create(context.Background()); !errors.Is(err, repository.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestStatus(t *testing.T) {
	serv, _ := newTestService(t)
	ctx := context.Background()

	created, err := serv.Create(ctx)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	st, err := serv.Status(ctx, created.ID)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if st.Message != "Session is active, you have 10 credits" {
		t.Fatalf("unexpected message %q", st.Message)
	}
	if st.Session.ID != created.ID || !st.Session.IsActive || st.Session.Credits != 10 {
		t.Fatalf("unexpected snapshot %+v", st.Session)
	}

	if _, err := serv.Status(ctx, "missing"); !errors.Is(err, model.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

// TestCashOut cashes out 25 credits, then fails the second time.
func TestCashOut(t *testing.T) {
	serv, repo := newTestService(t)
	ctx := context.Background()
	if err := repo.Create(ctx, model.NewGameSession("s1", 25)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	res, err := serv.CashOut(ctx, "s1")
	if err != nil {
		t.Fatalf("cash out: %v", err)
	}
	if res.Credits != 25 {
		t.Fatalf("expected 25 credits, got %d", res.Credits)
	}
	if res.Message != "Session ended successfully, you have received 25 credits" {
		t.Fatalf("unexpected message %q", res.Message)
	}

	stored, err := repo.FindByID(ctx, "s1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if stored.Active() || stored.Credits() != 0 {
		t.Fatalf("expected closed session with 0 credits, got active=%v credits=%d", stored.Active(), stored.Credits())
	}

	if _, err := serv.CashOut(ctx, "s1"); !errors.Is(err, model.ErrSessionInactive) {
		t.Fatalf("expected ErrSessionInactive, got %v", err)
	}

	st, err := serv.Status(ctx, "s1")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if st.Message != "Session has ended, you have 0 credits" {
		t.Fatalf("unexpected message %q", st.Message)
	}
}

func TestCashOutMissing(t *testing.T) {
	serv, _ := newTestService(t)
	if _, err := serv.CashOut(context.Background(), "missing"); !errors.Is(err, model.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	serv, _ := newTestService(t)
	ctx := context.Background()

	created, err := serv.Create(ctx)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := serv.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := serv.Status(ctx, created.ID); !errors.Is(err, model.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
	if err := serv.Delete(ctx, created.ID); !errors.Is(err, model.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound on second delete, got %v", err)
	}
}
