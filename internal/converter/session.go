package converter

import (
	"slot_machine/internal/api/dto/session"
	"slot_machine/internal/model"
)

func ToCreateResponse(s model.CreatedSession) session.CreateResponse {
	return session.CreateResponse{
		Success: true,
		Session: session.Session{
			ID:      s.ID,
			Credits: s.Credits,
		},
	}
}

func ToStatusResponse(st model.SessionStatus) session.StatusResponse {
	return session.StatusResponse{
		Success: true,
		Status:  toSnapshot(st.Session),
		Message: st.Message,
	}
}

func ToCashOutResponse(res model.CashOutResult) session.CashOutResponse {
	return session.CashOutResponse{
		Success: true,
		Credits: res.Credits,
		Message: res.Message,
	}
}

func toSnapshot(rec model.SessionRecord) session.Snapshot {
	return session.Snapshot{
		ID:          rec.ID,
		Credits:     rec.Credits,
		CreatedAt:   rec.CreatedAt,
		LastUpdated: rec.LastUpdated,
		GameHistory: toRolls(rec.GameHistory),
		IsActive:    rec.IsActive,
	}
}

func toRolls(rolls []model.RollRecord) []session.Roll {
	result := make([]session.Roll, len(rolls))
	for i, r := range rolls {
		result[i] = session.Roll{
			ID:            r.ID,
			Symbols:       r.Symbols,
			IsWin:         r.IsWin,
			WinAmount:     r.WinAmount,
			Credits:       r.Credits,
			Timestamp:     r.Timestamp,
			WasSuppressed: r.WasSuppressed,
		}
	}
	return result
}
