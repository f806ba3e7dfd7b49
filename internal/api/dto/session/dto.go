package session

import "time"

type Session struct {
	ID      string `json:"id"`
	Credits int    `json:"credits"`
}

type CreateResponse struct {
	Success bool    `json:"success"`
	Session Session `json:"session"`
}

type Roll struct {
	ID            string    `json:"id"`
	Symbols       [3]string `json:"symbols"`
	IsWin         bool      `json:"isWin"`
	WinAmount     int       `json:"winAmount"`
	Credits       int       `json:"credits"` // Баланс после ставки, до выплаты
	Timestamp     time.Time `json:"timestamp"`
	WasSuppressed bool      `json:"wasSuppressed"`
}

type Snapshot struct {
	ID          string    `json:"id"`
	Credits     int       `json:"credits"`
	CreatedAt   time.Time `json:"createdAt"`
	LastUpdated time.Time `json:"lastUpdated"`
	GameHistory []Roll    `json:"gameHistory"`
	IsActive    bool      `json:"isActive"`
}

type StatusResponse struct {
	Success bool     `json:"success"`
	Status  Snapshot `json:"status"`
	Message string   `json:"message"`
}

type CashOutResponse struct {
	Success bool   `json:"success"`
	Credits int    `json:"credits"`
	Message string `json:"message"`
}
