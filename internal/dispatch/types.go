package dispatch

import (
	"strings"

	"github.com/shopspring/decimal"

	"hablapp/internal/core"
)

// Entity is one named slot extracted by the upstream classifier, e.g.
// category "Monto" with text "2 melones".
type Entity struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// Result is the uniform record returned from every dispatch. Failures are
// always encoded as Success=false; Dispatch never panics or returns an
// error to its caller.
type Result struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// Callbacks is the set of application actions a dispatched command may
// invoke. The dispatcher calls at most one member per dispatch and treats a
// returned error (or a panic) as a generic command failure. Query callbacks
// are pure reads; how they obtain their value (store, API, rendered UI) is
// the caller's concern.
type Callbacks struct {
	OnNavigateToTab      func(tabID string) error
	OnCreateTransaction  func(tx core.Transaction) error
	OnFilterTransactions func(f core.Filter) error
	OnCheckBalance       func() (decimal.Decimal, error)
	OnCheckExpenses      func(category, period string) (decimal.Decimal, error)
	OnCheckIncomes       func(category, period string) (decimal.Decimal, error)
}

// entityMap is the flattened category→text lookup built fresh for one
// dispatch call. Keys are lowercased so upstream casing drift cannot split
// a slot; the first occurrence of a category wins and later duplicates are
// ignored.
type entityMap map[string]string

func buildEntityMap(entities []Entity) entityMap {
	m := make(entityMap, len(entities))
	for _, e := range entities {
		key := strings.ToLower(strings.TrimSpace(e.Category))
		if key == "" {
			continue
		}
		if _, ok := m[key]; !ok {
			m[key] = e.Text
		}
	}
	return m
}

func (m entityMap) get(category string) string {
	return strings.TrimSpace(m[strings.ToLower(category)])
}
