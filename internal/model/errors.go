package model

import "errors"

var (
	// ErrSessionNotFound - сессии с таким ID нет в хранилище
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionInactive - сессия закрыта (cash out или деактивация)
	ErrSessionInactive = errors.New("session is not active")
	// ErrInsufficientFunds - не хватает кредитов
	ErrInsufficientFunds = errors.New("insufficient credits")
	// ErrInvalidAmount - сумма изменения баланса должна быть положительной
	ErrInvalidAmount = errors.New("credit amount must be positive")
	// ErrInvalidData - запись сессии повреждена или неполная
	ErrInvalidData = errors.New("invalid data")
)
