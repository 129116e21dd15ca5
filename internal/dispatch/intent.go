package dispatch

import (
	"strings"

	"hablapp/internal/core"
)

// Intent is the closed set of user goals the assistant understands. The
// upstream classifier emits string labels; ParseIntent folds them into this
// enum with IntentUnknown as an explicit variant rather than a runtime
// fallthrough.
type Intent int

const (
	IntentUnknown Intent = iota
	IntentNavigateTab
	IntentCreateTransaction
	IntentFilterTransactions
	IntentCheckBalance
	IntentCheckExpenses
	IntentCheckIncomes
)

// ParseIntent matches a classifier label case-insensitively against the
// known intent set.
func ParseIntent(label string) Intent {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "navegacionpestana":
		return IntentNavigateTab
	case "creartransaccion":
		return IntentCreateTransaction
	case "filtrartransacciones":
		return IntentFilterTransactions
	case "consultarsaldo":
		return IntentCheckBalance
	case "consultargastos":
		return IntentCheckExpenses
	case "consultaringresos":
		return IntentCheckIncomes
	default:
		return IntentUnknown
	}
}

func (i Intent) String() string {
	switch i {
	case IntentNavigateTab:
		return "NavegacionPestana"
	case IntentCreateTransaction:
		return "CrearTransaccion"
	case IntentFilterTransactions:
		return "FiltrarTransacciones"
	case IntentCheckBalance:
		return "ConsultarSaldo"
	case IntentCheckExpenses:
		return "ConsultarGastos"
	case IntentCheckIncomes:
		return "ConsultarIngresos"
	default:
		return "Unknown"
	}
}

// InferTransactionType maps the TipoTransaccion entity text to a
// transaction type. Anything that does not mention "ingreso" is an expense;
// the expense bias for unrecognized text is deliberate, since most spoken
// entries record spending.
func InferTransactionType(text string) core.TransactionType {
	if strings.Contains(strings.ToLower(text), "ingreso") {
		return core.Income
	}
	return core.Expense
}
