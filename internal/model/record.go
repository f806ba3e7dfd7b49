package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// RollRecord - плоское представление спина для хранилища и клиента
type RollRecord struct {
	ID            string    `json:"id"`
	Symbols       [3]string `json:"symbols"`
	IsWin         bool      `json:"isWin"`
	WinAmount     int       `json:"winAmount"`
	Credits       int       `json:"credits"`
	Timestamp     time.Time `json:"timestamp"`
	WasSuppressed bool      `json:"wasSuppressed"`
}

// SessionRecord - плоское представление сессии (снимок для статуса и хранилищ)
type SessionRecord struct {
	ID          string       `json:"id"`
	Credits     int          `json:"credits"`
	CreatedAt   time.Time    `json:"createdAt"`
	LastUpdated time.Time    `json:"lastUpdated"`
	GameHistory []RollRecord `json:"gameHistory"`
	IsActive    bool         `json:"isActive"`
}

// Record returns the plain record of the roll.
func (r Roll) Record() RollRecord {
	return RollRecord{
		ID:            r.id,
		Symbols:       r.Codes(),
		IsWin:         r.IsWin(),
		WinAmount:     r.Payout(),
		Credits:       r.credits,
		Timestamp:     r.timestamp,
		WasSuppressed: r.wasSuppressed,
	}
}

// Record returns the plain record of the session including its history.
func (s *GameSession) Record() SessionRecord {
	history := make([]RollRecord, len(s.history))
	for i, r := range s.history {
		history[i] = r.Record()
	}
	return SessionRecord{
		ID:          s.id,
		Credits:     s.credits,
		CreatedAt:   s.createdAt,
		LastUpdated: s.lastUpdated,
		GameHistory: history,
		IsActive:    s.active,
	}
}

// MarshalSession - сериализация сессии в JSON
func MarshalSession(s *GameSession) ([]byte, error) {
	return json.Marshal(s.Record())
}

// SessionFromRecord восстанавливает сессию из записи.
// История спинов не восстанавливается: запись хранит ее только для чтения
func SessionFromRecord(rec SessionRecord) (*GameSession, error) {
	if strings.TrimSpace(rec.ID) == "" {
		return nil, fmt.Errorf("session id is empty: %w", ErrInvalidData)
	}
	if rec.Credits < 0 {
		return nil, fmt.Errorf("negative credits %d: %w", rec.Credits, ErrInvalidData)
	}
	if rec.CreatedAt.IsZero() {
		return nil, fmt.Errorf("createdAt is missing: %w", ErrInvalidData)
	}
	if rec.LastUpdated.IsZero() {
		return nil, fmt.Errorf("lastUpdated is missing: %w", ErrInvalidData)
	}

	return &GameSession{
		id:          rec.ID,
		credits:     rec.Credits,
		createdAt:   rec.CreatedAt.UTC(),
		lastUpdated: rec.LastUpdated.UTC(),
		active:      rec.IsActive,
	}, nil
}

// sessionPayload - все обязательные поля указателями, чтобы отличать отсутствие от нуля
type sessionPayload struct {
	ID          *string `json:"id"`
	Credits     *int    `json:"credits"`
	CreatedAt   *string `json:"createdAt"`
	LastUpdated *string `json:"lastUpdated"`
	IsActive    *bool   `json:"isActive"`
}

// UnmarshalSession разбирает JSON-запись сессии.
// Любое отсутствующее или не того типа обязательное поле - ErrInvalidData
func UnmarshalSession(data []byte) (*GameSession, error) {
	var p sessionPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode session: %v: %w", err, ErrInvalidData)
	}

	switch {
	case p.ID == nil:
		return nil, fmt.Errorf("id is missing: %w", ErrInvalidData)
	case p.Credits == nil:
		return nil, fmt.Errorf("credits is missing: %w", ErrInvalidData)
	case p.CreatedAt == nil:
		return nil, fmt.Errorf("createdAt is missing: %w", ErrInvalidData)
	case p.LastUpdated == nil:
		return nil, fmt.Errorf("lastUpdated is missing: %w", ErrInvalidData)
	case p.IsActive == nil:
		return nil, fmt.Errorf("isActive is missing: %w", ErrInvalidData)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, *p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("createdAt: %v: %w", err, ErrInvalidData)
	}
	lastUpdated, err := time.Parse(time.RFC3339Nano, *p.LastUpdated)
	if err != nil {
		return nil, fmt.Errorf("lastUpdated: %v: %w", err, ErrInvalidData)
	}

	return SessionFromRecord(SessionRecord{
		ID:          *p.ID,
		Credits:     *p.Credits,
		CreatedAt:   createdAt,
		LastUpdated: lastUpdated,
		IsActive:    *p.IsActive,
	})
}

// Roll восстанавливает спин из записи
func (rr RollRecord) Roll() (Roll, error) {
	if strings.TrimSpace(rr.ID) == "" {
		return Roll{}, fmt.Errorf("roll id is empty: %w", ErrInvalidData)
	}
	if rr.Credits < 0 {
		return Roll{}, fmt.Errorf("roll %s: negative credits: %w", rr.ID, ErrInvalidData)
	}

	var symbols [3]Symbol
	for i, code := range rr.Symbols {
		s, err := ParseSymbol(code)
		if err != nil {
			return Roll{}, fmt.Errorf("roll %s: %w", rr.ID, err)
		}
		symbols[i] = s
	}

	return Roll{
		id:            rr.ID,
		symbols:       symbols,
		credits:       rr.Credits,
		timestamp:     rr.Timestamp.UTC(),
		wasSuppressed: rr.WasSuppressed,
	}, nil
}

// RestoreSession - SessionFromRecord вместе с историей спинов.
// Используется хранилищами, которые держат историю отдельно от снимка
func RestoreSession(rec SessionRecord) (*GameSession, error) {
	s, err := SessionFromRecord(rec)
	if err != nil {
		return nil, err
	}

	history := make([]Roll, 0, len(rec.GameHistory))
	for _, rr := range rec.GameHistory {
		roll, err := rr.Roll()
		if err != nil {
			return nil, err
		}
		history = append(history, roll)
	}
	s.history = history

	return s, nil
}

// DecodeSession - UnmarshalSession с восстановлением истории.
// Битая история так же дает ErrInvalidData
func DecodeSession(data []byte) (*GameSession, error) {
	s, err := UnmarshalSession(data)
	if err != nil {
		return nil, err
	}

	var h struct {
		GameHistory []RollRecord `json:"gameHistory"`
	}
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("decode history: %v: %w", err, ErrInvalidData)
	}

	for _, rr := range h.GameHistory {
		roll, err := rr.Roll()
		if err != nil {
			return nil, err
		}
		s.history = append(s.history, roll)
	}

	return s, nil
}
