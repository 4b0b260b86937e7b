package khmer

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DomainError marks a numeric value that can never appear in a valid
// contract (e.g. negative money). Generation aborts on it. Message is the
// user-facing Khmer text.
type DomainError struct {
	Message string
	Value   decimal.Decimal
}

func (e *DomainError) Error() string {
	return e.Message
}

// ParseError marks a human-entered period string the parser could not
// classify. Callers recover by substituting a documented default period.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("មិនអាចបកស្រាយរយៈពេល %q បានទេ", e.Input)
}
