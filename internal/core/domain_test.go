package core

import (
	"testing"
)

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tx      Transaction
		wantErr error
	}{
		{
			name: "valid expense",
			tx:   Transaction{Type: Expense, Amount: "1500", Category: "comida", Date: "2025-03-12"},
		},
		{
			name: "valid income with decimal amount",
			tx:   Transaction{Type: Income, Amount: "2500.5", Date: "2025-01-01"},
		},
		{
			name:    "unknown type",
			tx:      Transaction{Type: "transfer", Amount: "10", Date: "2025-01-01"},
			wantErr: ErrInvalidType,
		},
		{
			name:    "zero amount",
			tx:      Transaction{Type: Expense, Amount: "0", Date: "2025-01-01"},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			tx:      Transaction{Type: Expense, Amount: "-12", Date: "2025-01-01"},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "raw amount text",
			tx:      Transaction{Type: Expense, Amount: "dos lucas", Date: "2025-01-01"},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "raw date text",
			tx:      Transaction{Type: Expense, Amount: "10", Date: "mañana"},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "impossible calendar date",
			tx:      Transaction{Type: Expense, Amount: "10", Date: "2025-02-30"},
			wantErr: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFilter_IsZero(t *testing.T) {
	if !(Filter{}).IsZero() {
		t.Error("empty filter should be zero")
	}
	if (Filter{Category: "comida"}).IsZero() {
		t.Error("filter with category should not be zero")
	}
	if (Filter{DateRange: &DateRange{Start: "2025-01-01"}}).IsZero() {
		t.Error("filter with date range should not be zero")
	}
}

func TestMatchesCategory(t *testing.T) {
	if !MatchesCategory("Comida", " comida ") {
		t.Error("expected case and space insensitive match")
	}
	if MatchesCategory("comida", "transporte") {
		t.Error("distinct categories must not match")
	}
}
