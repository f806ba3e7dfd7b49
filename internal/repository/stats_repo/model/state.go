package model

// State - накопленная статистика спинов
type State struct {
	TotalRolls  int // Сколько всего спинов сделано
	TotalStake  int // Сумма всех ставок
	TotalPayout int // Сумма всех выплат
	Wins        int // Спинов с выплатой
	Suppressed  int // Выигрышей, перекрученных подавлением

	CurrentRTP float64 // TotalPayout/TotalStake*100

	RollWindow []RollResult // Окно последних спинов
	WindowRTP  float64      // RTP в окне
	WindowSize int          // Размер окна
}

// RollResult - спин в окне
type RollResult struct {
	Stake  int
	Payout int
}
