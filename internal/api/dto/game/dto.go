package game

type RollResult struct {
	Symbols   [3]string `json:"symbols"`             // Коды символов ("C", "L", "O", "W")
	IsWin     bool      `json:"isWin"`               // Три одинаковых
	Credits   int       `json:"credits"`             // Баланс после спина
	Message   string    `json:"message,omitempty"`   // Только при выигрыше
	WinAmount int       `json:"winAmount,omitempty"` // Только при выигрыше
}

type RollResponse struct {
	Success bool       `json:"success"`
	Result  RollResult `json:"result"`
}

type StatsResponse struct {
	Success     bool    `json:"success"`
	TotalRolls  int     `json:"totalRolls"`
	TotalStake  int     `json:"totalStake"`
	TotalPayout int     `json:"totalPayout"`
	Wins        int     `json:"wins"`
	Suppressed  int     `json:"suppressed"`
	RTP         float64 `json:"rtp"`
	WindowRTP   float64 `json:"windowRtp"`
	WindowSize  int     `json:"windowSize"`
}
