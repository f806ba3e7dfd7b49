package stats_repo

import (
	"slot_machine/internal/model"
	"slot_machine/internal/repository"
	repoModel "slot_machine/internal/repository/stats_repo/model"
	"sync"
)

// DefaultWindowSize - сколько последних спинов учитывается в WindowRTP
const DefaultWindowSize = 500

type repo struct {
	mtx   sync.RWMutex
	state repoModel.State
}

// NewStatsRepository - статистика с пустым окном. windowSize <= 0 - DefaultWindowSize
func NewStatsRepository(windowSize int) repository.StatsRepository {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	return &repo{
		state: repoModel.State{
			RollWindow: make([]repoModel.RollResult, 0, windowSize),
			WindowSize: windowSize,
		},
	}
}

// Stats - копия текущих показателей
func (r *repo) Stats() model.RTPStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return model.RTPStats{
		TotalRolls:  r.state.TotalRolls,
		TotalStake:  r.state.TotalStake,
		TotalPayout: r.state.TotalPayout,
		Wins:        r.state.Wins,
		Suppressed:  r.state.Suppressed,
		RTP:         r.state.CurrentRTP,
		WindowRTP:   r.state.WindowRTP,
		WindowSize:  r.state.WindowSize,
	}
}

// RecordRoll - обновление статистики после спина
func (r *repo) RecordRoll(stake, payout int, suppressed bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalRolls++
	r.state.TotalStake += stake
	r.state.TotalPayout += payout
	if payout > 0 {
		r.state.Wins++
	}
	if suppressed {
		r.state.Suppressed++
	}
	if r.state.TotalStake > 0 {
		r.state.CurrentRTP = float64(r.state.TotalPayout) / float64(r.state.TotalStake) * 100
	}

	// Добавляем спин в окно и поддерживаем его размер
	r.state.RollWindow = append(r.state.RollWindow, repoModel.RollResult{Stake: stake, Payout: payout})
	if len(r.state.RollWindow) > r.state.WindowSize {
		r.state.RollWindow = r.state.RollWindow[1:]
	}

	var windowStake, windowPayout int
	for _, roll := range r.state.RollWindow {
		windowStake += roll.Stake
		windowPayout += roll.Payout
	}

	if windowStake > 0 {
		r.state.WindowRTP = float64(windowPayout) / float64(windowStake) * 100
	} else {
		r.state.WindowRTP = 0
	}
}
