// Package state holds the in-memory application model the assistant acts
// on: the active tab, the recorded transactions and the filters currently
// applied. It implements every callback the dispatcher can invoke. State
// lives for the process only; durable storage is the embedding
// application's concern.
package state

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"hablapp/internal/core"
)

type Store struct {
	mu           sync.Mutex
	activeTab    string
	transactions []core.Transaction
	filters      *core.Filter
	now          func() time.Time
}

// Snapshot is a point-in-time copy of the store for read endpoints.
type Snapshot struct {
	ActiveTab    string             `json:"activeTab"`
	Transactions []core.Transaction `json:"transactions"`
	Filters      *core.Filter       `json:"filters,omitempty"`
}

func New(defaultTab string) *Store {
	if defaultTab == "" {
		defaultTab = "transactions"
	}
	return &Store{activeTab: defaultTab, now: time.Now}
}

func (s *Store) NavigateToTab(tabID string) error {
	if strings.TrimSpace(tabID) == "" {
		return fmt.Errorf("empty tab id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeTab = tabID
	return nil
}

func (s *Store) AddTransaction(tx core.Transaction) error {
	if err := tx.Validate(); err != nil {
		return fmt.Errorf("add transaction: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, tx)
	return nil
}

// ApplyFilters replaces the active filter set; an empty filter clears it.
func (s *Store) ApplyFilters(f core.Filter) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f.IsZero() {
		s.filters = nil
		return nil
	}
	s.filters = &f
	return nil
}

// Balance is total incomes minus total expenses over all recorded
// transactions.
func (s *Store) Balance() (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	balance := decimal.Zero
	for _, tx := range s.transactions {
		amount := tx.ParsedAmount()
		if tx.Type == core.Income {
			balance = balance.Add(amount)
		} else {
			balance = balance.Sub(amount)
		}
	}
	return balance, nil
}

func (s *Store) ExpensesTotal(category, period string) (decimal.Decimal, error) {
	return s.total(core.Expense, category, period)
}

func (s *Store) IncomesTotal(category, period string) (decimal.Decimal, error) {
	return s.total(core.Income, category, period)
}

func (s *Store) total(txType core.TransactionType, category, period string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start, end, bounded := periodRange(period, s.now())

	total := decimal.Zero
	for _, tx := range s.transactions {
		if tx.Type != txType {
			continue
		}
		if category != "" && !core.MatchesCategory(tx.Category, category) {
			continue
		}
		if bounded {
			d, err := time.Parse(core.DateLayout, tx.Date)
			if err != nil || d.Before(start) || d.After(end) {
				continue
			}
		}
		total = total.Add(tx.ParsedAmount())
	}
	return total, nil
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ActiveTab:    s.activeTab,
		Transactions: append([]core.Transaction(nil), s.transactions...),
	}
	if s.filters != nil {
		f := *s.filters
		snap.Filters = &f
	}
	return snap
}

// periodRange translates a spoken period into a date window. Unrecognized
// periods mean "all time": the period text still shows up in the spoken
// reply, but there is nothing to bound the total by.
func periodRange(period string, now time.Time) (start, end time.Time, ok bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch strings.ToLower(strings.TrimSpace(period)) {
	case "hoy":
		return today, today, true
	case "esta semana":
		// Week starts on Monday.
		offset := (int(today.Weekday()) + 6) % 7
		monday := today.AddDate(0, 0, -offset)
		return monday, monday.AddDate(0, 0, 6), true
	case "este mes":
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return first, first.AddDate(0, 1, -1), true
	case "este año":
		first := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return first, time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, time.UTC), true
	default:
		return time.Time{}, time.Time{}, false
	}
}
