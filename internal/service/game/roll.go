package game

import (
	"context"
	"errors"
	"fmt"
	"slot_machine/internal/metrics"
	"slot_machine/internal/model"
	"slot_machine/internal/repository"
	"time"

	"go.uber.org/zap"
)

// reelCount - барабанов в автомате
const reelCount = 3

// Roll выполняет один спин сессии
func (s *serv) Roll(ctx context.Context, sessionID string) (*model.RollResult, error) {
	started := time.Now()

	res, err := s.roll(ctx, sessionID)
	if err != nil {
		metrics.RecordRoll("fail", "", started)
		return nil, err
	}

	outcome := "loss"
	if res.IsWin {
		outcome = "win"
	}
	metrics.RecordRoll("success", outcome, started)

	return res, nil
}

func (s *serv) roll(ctx context.Context, sessionID string) (*model.RollResult, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	// 1. Поиск сессии
	session, err := s.repo.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, model.ErrSessionNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}

	// 2. Сессия должна быть активной
	if !session.Active() {
		return nil, model.ErrSessionInactive
	}

	// 3. Хватает ли на ставку
	if session.Credits() < s.stake {
		return nil, model.ErrInsufficientFunds
	}

	// 4. Списание ставки
	if err := session.DecreaseCredits(s.stake); err != nil {
		return nil, err
	}

	// 5-6. Символы и подавление выигрыша по балансу после ставки
	symbols, suppressed, err := s.draw(sessionID, session.Credits())
	if err != nil {
		return nil, err
	}

	// 7. Фиксация спина
	roll, err := session.AddRoll(symbols, suppressed)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, session); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, model.ErrSessionNotFound
		}
		return nil, fmt.Errorf("update session: %w", err)
	}

	s.statsRepo.RecordRoll(s.stake, roll.Payout(), suppressed)
	metrics.RecordPayout(roll.Payout())

	codes := roll.Codes()
	s.log.Debug("roll resolved",
		zap.String("session_id", sessionID),
		zap.Strings("symbols", codes[:]),
		zap.Bool("win", roll.IsWin()),
		zap.Bool("suppressed", suppressed),
		zap.Int("credits", session.Credits()),
	)

	// 8. Результат
	res := &model.RollResult{
		Symbols:    codes,
		IsWin:      roll.IsWin(),
		Credits:    session.Credits(),
		Suppressed: suppressed,
	}
	if roll.IsWin() {
		res.WinAmount = roll.Payout()
		res.Message = fmt.Sprintf("You won %d credits!", res.WinAmount)
	}

	return res, nil
}

// draw тянет три символа. Если выпала выигрышная тройка и баланс попадает
// под подавление, перекручивает до проигрышной комбинации (не более maxRedraws раз)
func (s *serv) draw(sessionID string, credits int) ([reelCount]model.Symbol, bool, error) {
	symbols, err := s.drawReels()
	if err != nil {
		return symbols, false, err
	}

	if !model.IsThreeOfAKind(symbols) || !s.drawer.ShouldSuppress(credits) {
		return symbols, false, nil
	}

	metrics.RecordSuppression()

	for i := 0; i < s.maxRedraws; i++ {
		symbols, err = s.drawReels()
		if err != nil {
			return symbols, false, err
		}
		if !model.IsThreeOfAKind(symbols) {
			return symbols, true, nil
		}
	}

	// Лимит перекруток исчерпан: ломаем тройку сдвигом последнего символа
	metrics.RecordRedrawCap()
	s.log.Warn("suppression redraw limit reached",
		zap.String("session_id", sessionID),
		zap.Int("max_redraws", s.maxRedraws),
	)
	symbols[reelCount-1] = nextSymbol(symbols[reelCount-1])

	return symbols, true, nil
}

func (s *serv) drawReels() ([reelCount]model.Symbol, error) {
	var out [reelCount]model.Symbol

	drawn := s.drawer.DrawSymbols(reelCount)
	if len(drawn) != reelCount {
		return out, fmt.Errorf("drawer returned %d symbols, want %d", len(drawn), reelCount)
	}
	copy(out[:], drawn)

	return out, nil
}

func nextSymbol(sym model.Symbol) model.Symbol {
	for i, s := range model.Symbols {
		if s == sym {
			return model.Symbols[(i+1)%len(model.Symbols)]
		}
	}
	return model.Symbols[0]
}
