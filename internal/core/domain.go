package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// DateLayout is the wire format for all calendar dates in commands.
const DateLayout = "2006-01-02"

type (
	TransactionType string

	// Transaction is the fully normalized create-transaction command.
	// Amount always carries a resolved positive decimal serialized as a
	// string, and Date a valid ISO calendar date, never the raw entity text.
	Transaction struct {
		Type        TransactionType `json:"type"`
		Amount      string          `json:"amount"`
		Category    string          `json:"category"`
		Date        string          `json:"date"`
		Description string          `json:"description"`
	}

	// DateRange bounds a filter; either side may be empty.
	DateRange struct {
		Start string `json:"start,omitempty"`
		End   string `json:"end,omitempty"`
	}

	// Filter is the normalized filter-transactions command. Every field is
	// optional: a zero field means the corresponding entity was not supplied
	// or normalized to empty.
	Filter struct {
		Type      TransactionType  `json:"type,omitempty"`
		Category  string           `json:"category,omitempty"`
		DateRange *DateRange       `json:"dateRange,omitempty"`
		Amount    *decimal.Decimal `json:"amount,omitempty"`
	}
)

var (
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDate   = errors.New("invalid date")
)

func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

func (tx Transaction) Validate() error {
	if !tx.Type.Valid() {
		return ErrInvalidType
	}
	amount, err := decimal.NewFromString(tx.Amount)
	if err != nil || amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	if _, err := time.Parse(DateLayout, tx.Date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// ParsedAmount returns the transaction amount as a decimal. Validate first;
// on a malformed amount it returns zero.
func (tx Transaction) ParsedAmount() decimal.Decimal {
	amount, err := decimal.NewFromString(tx.Amount)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// IsZero reports whether no filter field is set.
func (f Filter) IsZero() bool {
	return f.Type == "" && f.Category == "" && f.DateRange == nil && f.Amount == nil
}

// MatchesCategory compares categories ignoring case and surrounding space.
func MatchesCategory(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
