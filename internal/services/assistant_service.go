package services

import (
	"context"
	"log/slog"

	"hablapp/internal/amqp"
	"hablapp/internal/core"
	"hablapp/internal/dispatch"
	"hablapp/internal/state"
)

// Assistant wires the dispatcher's callback set to the application state
// and the optional AMQP event publisher. Publishing is fire-and-forget: a
// broker failure is logged and never fails the user's command.
type Assistant struct {
	store      *state.Store
	amqpClient *amqp.Client
}

func NewAssistant(store *state.Store, amqpClient *amqp.Client) *Assistant {
	return &Assistant{
		store:      store,
		amqpClient: amqpClient,
	}
}

// Dispatch runs one classified command against the assistant's callbacks.
func (a *Assistant) Dispatch(intent string, entities []dispatch.Entity) dispatch.Result {
	return dispatch.Dispatch(intent, entities, a.Callbacks())
}

// Callbacks exposes the application actions the dispatcher may invoke.
func (a *Assistant) Callbacks() *dispatch.Callbacks {
	return &dispatch.Callbacks{
		OnNavigateToTab:      a.store.NavigateToTab,
		OnCreateTransaction:  a.createTransaction,
		OnFilterTransactions: a.store.ApplyFilters,
		OnCheckBalance:       a.store.Balance,
		OnCheckExpenses:      a.store.ExpensesTotal,
		OnCheckIncomes:       a.store.IncomesTotal,
	}
}

// Snapshot returns the current application state for read endpoints.
func (a *Assistant) Snapshot() state.Snapshot {
	return a.store.Snapshot()
}

func (a *Assistant) createTransaction(tx core.Transaction) error {
	if err := a.store.AddTransaction(tx); err != nil {
		return err
	}

	if err := a.publishTransactionCreated(tx); err != nil {
		slog.Error("Failed to publish transaction created event",
			"amount", tx.Amount, "error", err)
		// Don't fail the command - the transaction is recorded
	}
	return nil
}

func (a *Assistant) publishTransactionCreated(tx core.Transaction) error {
	if a.amqpClient == nil {
		slog.Debug("AMQP client not available, skipping command event")
		return nil
	}
	return a.amqpClient.PublishTransactionCreated(context.Background(), tx)
}

// Close releases the AMQP connection if one was configured.
func (a *Assistant) Close() error {
	if a.amqpClient != nil {
		return a.amqpClient.Close()
	}
	return nil
}
