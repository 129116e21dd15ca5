package nlu

import "testing"

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"clean category untouched", "comida", "comida"},
		{"trailing para", "comida para", "comida"},
		{"trailing para with spaces", "comida para   ", "comida"},
		{"trailing en", "transporte en", "transporte"},
		{"trailing de", "gastos de", "gastos"},
		{"trailing del", "gastos del", "gastos"},
		{"trailing por", "servicios por", "servicios"},
		{"stacked filler", "comida de por", "comida"},
		{"filler inside phrase kept", "gastos de casa", "gastos de casa"},
		{"surrounding whitespace", "  salud  ", "salud"},
		{"empty input", "", ""},
		{"only filler", " para ", "para"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeCategory(tt.text)
			if got != tt.want {
				t.Errorf("NormalizeCategory(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestNormalizeCategory_Idempotent(t *testing.T) {
	inputs := []string{
		"comida", "comida para", "comida de por", "gastos del", "", "  en  ",
		"supermercado para ", "ocio por de para",
	}
	for _, text := range inputs {
		once := NormalizeCategory(text)
		twice := NormalizeCategory(once)
		if once != twice {
			t.Errorf("NormalizeCategory not idempotent for %q: %q != %q", text, once, twice)
		}
	}
}

func TestCanonicalTab(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"transacciones", "transactions"},
		{"Presupuesto", "budgets"},
		{"presupuestos", "budgets"},
		{"Categorías", "categories"},
		{"categorias", "categories"},
		{"vencimientos", "reminders"},
		{"recordatorios", "reminders"},
		{"alertas", "alerts"},
		{"informes", "reports"},
		{"Reportes", "reports"},
		{" ajustes ", "ajustes"}, // unknown names pass through as tab id
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := CanonicalTab(tt.text); got != tt.want {
				t.Errorf("CanonicalTab(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
