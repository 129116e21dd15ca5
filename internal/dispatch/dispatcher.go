// Package dispatch maps classified intents and their entities onto
// application callbacks, normalizing entity text through the nlu resolvers
// on the way. It is the only entry point the assistant surface calls.
package dispatch

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"hablapp/internal/core"
	"hablapp/internal/nlu"
)

// Dispatch resolves the intent label, normalizes the entities the matched
// handler needs, and invokes the corresponding callback with a structured
// payload. Every failure mode — missing input, missing callback, a zero
// amount, a failing or panicking callback, an unknown label — comes back as
// a Result with Success=false; nothing escapes this boundary.
func Dispatch(intent string, entities []Entity, cb *Callbacks) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Panic during command dispatch", "intent", intent, "panic", r)
			res = failure("Ocurrió un error al ejecutar la acción")
		}
	}()

	if intent == "" {
		return failure("No se recibió ninguna acción")
	}
	if entities == nil {
		return failure("No se recibieron entidades")
	}
	if cb == nil {
		return failure("No hay acciones disponibles")
	}

	em := buildEntityMap(entities)

	switch ParseIntent(intent) {
	case IntentNavigateTab:
		return handleNavigateTab(em, cb)
	case IntentCreateTransaction:
		return handleCreateTransaction(em, cb)
	case IntentFilterTransactions:
		return handleFilterTransactions(em, cb)
	case IntentCheckBalance:
		return handleCheckBalance(cb)
	case IntentCheckExpenses:
		return handleTotalsQuery(em, cb.OnCheckExpenses, "gastos")
	case IntentCheckIncomes:
		return handleTotalsQuery(em, cb.OnCheckIncomes, "ingresos")
	default:
		return failure(fmt.Sprintf("No se reconoció la acción %q", intent))
	}
}

func handleNavigateTab(em entityMap, cb *Callbacks) Result {
	if cb.OnNavigateToTab == nil {
		return failure("La navegación no está disponible")
	}
	raw := em.get("pestana")
	if raw == "" {
		return failure("No se indicó la pestaña de destino")
	}

	tabID := nlu.CanonicalTab(raw)
	if err := cb.OnNavigateToTab(tabID); err != nil {
		return callbackFailure("navigate", err)
	}
	return Result{
		Success: true,
		Message: fmt.Sprintf("Navegando a la pestaña %s", raw),
		Data:    map[string]any{"tab": tabID},
	}
}

func handleCreateTransaction(em entityMap, cb *Callbacks) Result {
	if cb.OnCreateTransaction == nil {
		return failure("La creación de transacciones no está disponible")
	}

	amount := nlu.ResolveAmount(em.get("Monto"))
	if amount.Fallback || amount.Value.IsZero() {
		return failure("No se pudo determinar el monto de la transacción")
	}

	tx := core.Transaction{
		Type:        InferTransactionType(em.get("TipoTransaccion")),
		Amount:      amount.Value.String(),
		Category:    nlu.NormalizeCategory(em.get("Categoria")),
		Date:        nlu.ResolveDate(em.get("Fecha")).ISO(),
		Description: em.get("Descripcion"),
	}
	if err := cb.OnCreateTransaction(tx); err != nil {
		return callbackFailure("create transaction", err)
	}

	kind := "un gasto"
	if tx.Type == core.Income {
		kind = "un ingreso"
	}
	msg := fmt.Sprintf("Se ha creado %s de $%s", kind, tx.Amount)
	if tx.Category != "" {
		msg += " en " + tx.Category
	}
	return Result{
		Success: true,
		Message: msg,
		Data:    map[string]any{"transaction": tx},
	}
}

func handleFilterTransactions(em entityMap, cb *Callbacks) Result {
	if cb.OnFilterTransactions == nil {
		return failure("El filtrado de transacciones no está disponible")
	}

	var f core.Filter
	if t := em.get("TipoTransaccion"); t != "" {
		f.Type = InferTransactionType(t)
	}
	if c := nlu.NormalizeCategory(em.get("Categoria")); c != "" {
		f.Category = c
	}
	if s := em.get("FechaInicio"); s != "" {
		f.DateRange = &core.DateRange{Start: nlu.ResolveDate(s).ISO()}
	}
	if e := em.get("FechaFin"); e != "" {
		if f.DateRange == nil {
			f.DateRange = &core.DateRange{}
		}
		f.DateRange.End = nlu.ResolveDate(e).ISO()
	}
	if m := em.get("Monto"); m != "" {
		if amount := nlu.ResolveAmount(m); !amount.Fallback {
			f.Amount = &amount.Value
		}
	}

	if err := cb.OnFilterTransactions(f); err != nil {
		return callbackFailure("filter transactions", err)
	}
	return Result{
		Success: true,
		Message: "Filtros aplicados correctamente",
		Data:    map[string]any{"filters": f},
	}
}

func handleCheckBalance(cb *Callbacks) Result {
	if cb.OnCheckBalance == nil {
		return failure("La consulta de saldo no está disponible")
	}
	balance, err := cb.OnCheckBalance()
	if err != nil {
		return callbackFailure("check balance", err)
	}
	return Result{
		Success: true,
		Message: fmt.Sprintf("Tu saldo actual es $%s", balance),
		Data:    map[string]any{"balance": balance.String()},
	}
}

// handleTotalsQuery serves both gastos and ingresos; kind only changes the
// wording of the message.
func handleTotalsQuery(em entityMap, query func(category, period string) (decimal.Decimal, error), kind string) Result {
	if query == nil {
		return failure(fmt.Sprintf("La consulta de %s no está disponible", kind))
	}

	category := nlu.NormalizeCategory(em.get("Categoria"))
	period := em.get("Periodo")

	total, err := query(category, period)
	if err != nil {
		return callbackFailure("totals query", err)
	}

	var msg string
	if category == "" {
		msg = fmt.Sprintf("Tus %s totales son $%s", kind, total)
	} else {
		msg = fmt.Sprintf("Tus %s en %s son $%s", kind, category, total)
	}
	if period != "" {
		msg += " en " + period
	}
	return Result{
		Success: true,
		Message: msg,
		Data:    map[string]any{"total": total.String(), "category": category, "period": period},
	}
}

func failure(msg string) Result {
	return Result{Success: false, Message: msg}
}

// callbackFailure converts a callback error into a generic failure result.
// The error detail is logged but never surfaces in the message.
func callbackFailure(op string, err error) Result {
	slog.Error("Callback failed during dispatch", "operation", op, "error", err)
	return failure("No se pudo completar la acción")
}
