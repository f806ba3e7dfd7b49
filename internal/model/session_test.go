package model

import (
	"errors"
	"testing"
)

// TestNewGameSession checks the starting state of a session.
func TestNewGameSession(t *testing.T) {
	s := NewGameSession("abc", DefaultStartingCredits)

	if s.ID() != "abc" {
		t.Fatalf("expected id abc, got %q", s.ID())
	}
	if s.Credits() != 10 {
		t.Fatalf("expected 10 credits, got %d", s.Credits())
	}
	if !s.Active() {
		t.Fatal("expected new session to be active")
	}
	if len(s.History()) != 0 {
		t.Fatalf("expected empty history, got %d rolls", len(s.History()))
	}
	if !s.CreatedAt().Equal(s.LastUpdated()) {
		t.Fatalf("expected lastUpdated == createdAt, got %v and %v", s.LastUpdated(), s.CreatedAt())
	}
}

func TestDecreaseCredits(t *testing.T) {
	tests := []struct {
		name    string
		credits int
		amount  int
		want    int
		wantErr error
	}{
		{name: "debit", credits: 10, amount: 3, want: 7},
		{name: "debit all", credits: 5, amount: 5, want: 0},
		{name: "insufficient", credits: 2, amount: 3, want: 2, wantErr: ErrInsufficientFunds},
		{name: "zero amount", credits: 2, amount: 0, want: 2, wantErr: ErrInvalidAmount},
		{name: "negative amount", credits: 2, amount: -1, want: 2, wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewGameSession("id", tt.credits)
			before := s.LastUpdated()

			err := s.DecreaseCredits(tt.amount)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if s.Credits() != tt.want {
				t.Fatalf("expected %d credits, got %d", tt.want, s.Credits())
			}
			if tt.wantErr == nil && !s.LastUpdated().After(before) {
				t.Fatal("expected lastUpdated to advance")
			}
			if tt.wantErr != nil && !s.LastUpdated().Equal(before) {
				t.Fatal("expected lastUpdated to stay on failure")
			}
		})
	}
}

func TestIncreaseCredits(t *testing.T) {
	s := NewGameSession("id", 1)

	if err := s.IncreaseCredits(0); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if err := s.IncreaseCredits(-5); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if err := s.IncreaseCredits(4); err != nil {
		t.Fatalf("increase: %v", err)
	}
	if s.Credits() != 5 {
		t.Fatalf("expected 5 credits, got %d", s.Credits())
	}
}

// TestCreditMutationsRejectedWhenInactive ensures a closed session keeps its balance.
func TestCreditMutationsRejectedWhenInactive(t *testing.T) {
	s := NewGameSession("id", 7)
	s.Deactivate()

	if err := s.IncreaseCredits(1); !errors.Is(err, ErrSessionInactive) {
		t.Fatalf("expected ErrSessionInactive, got %v", err)
	}
	if err := s.DecreaseCredits(1); !errors.Is(err, ErrSessionInactive) {
		t.Fatalf("expected ErrSessionInactive, got %v", err)
	}
	if s.Credits() != 7 {
		t.Fatalf("expected 7 credits, got %d", s.Credits())
	}
}

func TestAddRollWin(t *testing.T) {
	s := NewGameSession("id", 1)
	if err := s.DecreaseCredits(1); err != nil {
		t.Fatalf("stake: %v", err)
	}

	roll, err := s.AddRoll([3]Symbol{Orange, Orange, Orange}, false)
	if err != nil {
		t.Fatalf("add roll: %v", err)
	}
	if !roll.IsWin() {
		t.Fatal("expected a win")
	}
	if roll.Payout() != 30 {
		t.Fatalf("expected payout 30, got %d", roll.Payout())
	}
	if roll.Credits() != 0 {
		t.Fatalf("expected roll to record post-stake balance 0, got %d", roll.Credits())
	}
	if s.Credits() != 30 {
		t.Fatalf("expected 30 credits, got %d", s.Credits())
	}
	if len(s.History()) != 1 {
		t.Fatalf("expected 1 roll in history, got %d", len(s.History()))
	}
}

func TestAddRollLoss(t *testing.T) {
	s := NewGameSession("id", 5)

	roll, err := s.AddRoll([3]Symbol{Cherry, Lemon, Cherry}, true)
	if err != nil {
		t.Fatalf("add roll: %v", err)
	}
	if roll.IsWin() || roll.Payout() != 0 {
		t.Fatalf("expected a loss with no payout, got win=%v payout=%d", roll.IsWin(), roll.Payout())
	}
	if !roll.WasSuppressed() {
		t.Fatal("expected suppressed flag to be kept")
	}
	if s.Credits() != 5 {
		t.Fatalf("expected 5 credits, got %d", s.Credits())
	}
}

func TestAddRollInactive(t *testing.T) {
	s := NewGameSession("id", 5)
	s.Deactivate()

	if _, err := s.AddRoll([3]Symbol{Cherry, Cherry, Cherry}, false); !errors.Is(err, ErrSessionInactive) {
		t.Fatalf("expected ErrSessionInactive, got %v", err)
	}
	if len(s.History()) != 0 {
		t.Fatal("expected history to stay empty")
	}
}

// TestCashOutTwice covers cashing out 25 credits and the second attempt failing.
func TestCashOutTwice(t *testing.T) {
	s := NewGameSession("id", 25)

	credits, err := s.CashOut()
	if err != nil {
		t.Fatalf("cash out: %v", err)
	}
	if credits != 25 {
		t.Fatalf("expected 25 credits returned, got %d", credits)
	}
	if s.Credits() != 0 || s.Active() {
		t.Fatalf("expected credits=0 active=false, got credits=%d active=%v", s.Credits(), s.Active())
	}

	if _, err := s.CashOut(); !errors.Is(err, ErrSessionInactive) {
		t.Fatalf("expected ErrSessionInactive, got %v", err)
	}
}

func TestDeactivateIdempotent(t *testing.T) {
	s := NewGameSession("id", 3)
	s.Deactivate()
	first := s.LastUpdated()
	s.Deactivate()

	if s.Active() {
		t.Fatal("expected inactive session")
	}
	if !s.LastUpdated().After(first) {
		t.Fatal("expected lastUpdated to advance on every deactivation")
	}
	if s.Credits() != 3 {
		t.Fatalf("deactivate must not touch credits, got %d", s.Credits())
	}
}

func TestHistoryIsCopy(t *testing.T) {
	s := NewGameSession("id", 5)
	if _, err := s.AddRoll([3]Symbol{Cherry, Lemon, Orange}, false); err != nil {
		t.Fatalf("add roll: %v", err)
	}

	h := s.History()
	h[0] = Roll{}

	if s.History()[0].ID() == "" {
		t.Fatal("mutating returned history changed the session")
	}
}

func TestClone(t *testing.T) {
	s := NewGameSession("id", 5)
	c := s.Clone()

	if err := c.DecreaseCredits(2); err != nil {
		t.Fatalf("decrease: %v", err)
	}
	if _, err := c.AddRoll([3]Symbol{Cherry, Lemon, Orange}, false); err != nil {
		t.Fatalf("add roll: %v", err)
	}

	if s.Credits() != 5 || len(s.History()) != 0 {
		t.Fatalf("clone shares state with original: credits=%d history=%d", s.Credits(), len(s.History()))
	}
}
