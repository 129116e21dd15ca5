package services

import (
	"testing"

	"hablapp/internal/dispatch"
	"hablapp/internal/state"
)

func TestAssistant_DispatchCreateAndQuery(t *testing.T) {
	asst := NewAssistant(state.New("transactions"), nil) // no AMQP configured

	res := asst.Dispatch("CrearTransaccion", []dispatch.Entity{
		{Category: "TipoTransaccion", Text: "gasto"},
		{Category: "Monto", Text: "2 lucas"},
		{Category: "Categoria", Text: "comida"},
		{Category: "Fecha", Text: "hoy"},
	})
	if !res.Success {
		t.Fatalf("create failed: %s", res.Message)
	}

	snap := asst.Snapshot()
	if len(snap.Transactions) != 1 {
		t.Fatalf("transactions = %d, want 1", len(snap.Transactions))
	}
	if snap.Transactions[0].Amount != "2000" {
		t.Errorf("amount = %s", snap.Transactions[0].Amount)
	}

	res = asst.Dispatch("ConsultarGastos", []dispatch.Entity{
		{Category: "Categoria", Text: "comida"},
	})
	if !res.Success {
		t.Fatalf("query failed: %s", res.Message)
	}
	if res.Message != "Tus gastos en comida son $2000" {
		t.Errorf("message = %q", res.Message)
	}
}

func TestAssistant_NavigationUpdatesState(t *testing.T) {
	asst := NewAssistant(state.New(""), nil)

	res := asst.Dispatch("NavegacionPestana", []dispatch.Entity{
		{Category: "pestana", Text: "presupuestos"},
	})
	if !res.Success {
		t.Fatalf("navigation failed: %s", res.Message)
	}
	if got := asst.Snapshot().ActiveTab; got != "budgets" {
		t.Errorf("activeTab = %q, want budgets", got)
	}
}

func TestAssistant_CloseWithoutAMQP(t *testing.T) {
	asst := NewAssistant(state.New(""), nil)
	if err := asst.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}
