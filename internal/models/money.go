package models

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Money is a monetary amount with its currency symbol, as stored in the
// spreadsheet cells ("€2.50").
type Money struct {
	Symbol string
	Amount float64
}

// ParseMoney parses a currency-prefixed cell value. The symbol is whatever
// precedes the first digit and may be empty.
func ParseMoney(value string) (Money, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Money{}, fmt.Errorf("empty amount")
	}
	start := strings.IndexFunc(trimmed, unicode.IsDigit)
	if start < 0 {
		return Money{}, fmt.Errorf("no numeric amount in %q", value)
	}
	amount, err := strconv.ParseFloat(trimmed[start:], 64)
	if err != nil {
		return Money{}, fmt.Errorf("parse amount %q: %w", value, err)
	}
	return Money{Symbol: strings.TrimSpace(trimmed[:start]), Amount: amount}, nil
}

func (m Money) String() string {
	return m.Symbol + strconv.FormatFloat(m.Amount, 'f', -1, 64)
}
