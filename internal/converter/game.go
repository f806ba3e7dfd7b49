package converter

import (
	"slot_machine/internal/api/dto/game"
	"slot_machine/internal/model"
)

// ToRollResponse - флаг подавления наружу не отдается
func ToRollResponse(res model.RollResult) game.RollResponse {
	return game.RollResponse{
		Success: true,
		Result: game.RollResult{
			Symbols:   res.Symbols,
			IsWin:     res.IsWin,
			Credits:   res.Credits,
			Message:   res.Message,
			WinAmount: res.WinAmount,
		},
	}
}

func ToStatsResponse(s model.RTPStats) game.StatsResponse {
	return game.StatsResponse{
		Success:     true,
		TotalRolls:  s.TotalRolls,
		TotalStake:  s.TotalStake,
		TotalPayout: s.TotalPayout,
		Wins:        s.Wins,
		Suppressed:  s.Suppressed,
		RTP:         s.RTP,
		WindowRTP:   s.WindowRTP,
		WindowSize:  s.WindowSize,
	}
}
