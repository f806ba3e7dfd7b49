package model

import (
	"math/rand/v2"
	"strconv"
	"time"
)

// Roll - результат одного спина. После создания не меняется
type Roll struct {
	id            string
	symbols       [3]Symbol
	credits       int // баланс после списания ставки, до выплаты
	timestamp     time.Time
	wasSuppressed bool
}

// NewRoll создает запись спина
func NewRoll(symbols [3]Symbol, credits int, timestamp time.Time, wasSuppressed bool) Roll {
	return Roll{
		id:            newRollID(timestamp),
		symbols:       symbols,
		credits:       credits,
		timestamp:     timestamp,
		wasSuppressed: wasSuppressed,
	}
}

// newRollID - время в base36 + случайный хвост. Уникален только для отображения
func newRollID(ts time.Time) string {
	return strconv.FormatInt(ts.UnixMilli(), 36) + strconv.FormatUint(rand.Uint64(), 36)
}

func (r Roll) ID() string           { return r.id }
func (r Roll) Symbols() [3]Symbol   { return r.symbols }
func (r Roll) Credits() int         { return r.credits }
func (r Roll) Timestamp() time.Time { return r.timestamp }
func (r Roll) WasSuppressed() bool  { return r.wasSuppressed }
func (r Roll) IsWin() bool          { return IsThreeOfAKind(r.symbols) }

// Payout - выплата за спин, 0 если проигрыш
func (r Roll) Payout() int {
	if !r.IsWin() {
		return 0
	}
	return r.symbols[0].Value()
}

// Codes returns the symbols as display codes.
func (r Roll) Codes() [3]string {
	return SymbolCodes(r.symbols)
}

// IsThreeOfAKind - все три символа одинаковые
func IsThreeOfAKind(symbols [3]Symbol) bool {
	return symbols[0] == symbols[1] && symbols[1] == symbols[2]
}

func SymbolCodes(symbols [3]Symbol) [3]string {
	return [3]string{symbols[0].Code(), symbols[1].Code(), symbols[2].Code()}
}
