package model

// RTPStats - агрегированная статистика спинов по всем сессиям
type RTPStats struct {
	TotalRolls  int
	TotalStake  int
	TotalPayout int
	Wins        int
	Suppressed  int
	RTP         float64 // TotalPayout / TotalStake * 100
	WindowRTP   float64 // RTP по последним WindowSize спинам
	WindowSize  int
}
