package model

// RollResult - результат спина для внешнего слоя
type RollResult struct {
	Symbols    [3]string
	IsWin      bool
	Credits    int    // баланс после выплаты
	Message    string // только при выигрыше
	WinAmount  int    // только при выигрыше
	Suppressed bool
}

// CreatedSession - данные новой сессии
type CreatedSession struct {
	ID      string
	Credits int
}

// SessionStatus - снимок сессии и сообщение для игрока
type SessionStatus struct {
	Session SessionRecord
	Message string
}

// CashOutResult - итог закрытия сессии
type CashOutResult struct {
	Credits int
	Message string
}
