package model

import "fmt"

// Symbol - символ на барабане
type Symbol string

const (
	Cherry     Symbol = "C"
	Lemon      Symbol = "L"
	Orange     Symbol = "O"
	Watermelon Symbol = "W"
)

// Symbols - полный алфавит барабана, порядок фиксирован
var Symbols = [...]Symbol{Cherry, Lemon, Orange, Watermelon}

// symbolValues - выплата за три одинаковых символа
var symbolValues = map[Symbol]int{
	Cherry:     10,
	Lemon:      20,
	Orange:     30,
	Watermelon: 40,
}

// Value returns the payout for three of this symbol, 0 for unknown symbols.
func (s Symbol) Value() int {
	return symbolValues[s]
}

// Code returns the display code sent to clients.
func (s Symbol) Code() string {
	return string(s)
}

func (s Symbol) Valid() bool {
	_, ok := symbolValues[s]
	return ok
}

// ParseSymbol - разбирает код символа ("C", "L", "O", "W")
func ParseSymbol(code string) (Symbol, error) {
	s := Symbol(code)
	if !s.Valid() {
		return "", fmt.Errorf("unknown symbol %q: %w", code, ErrInvalidData)
	}
	return s, nil
}
