// Package nlu normalizes free-form Spanish entity text coming out of the
// cloud intent classifier into typed values: calendar dates, money amounts
// and clean category names. All resolvers are pure functions over their
// input; the lexicon tables below are the only package state and are never
// mutated after load.
package nlu

import (
	"time"

	"github.com/shopspring/decimal"
)

// relativeDays maps relative-date words to day offsets from today.
var relativeDays = map[string]int{
	"hoy":           0,
	"mañana":        1,
	"pasado mañana": 2,
	"ayer":          -1,
	"anteayer":      -2,
}

var monthIndex = map[string]time.Month{
	"enero":      time.January,
	"febrero":    time.February,
	"marzo":      time.March,
	"abril":      time.April,
	"mayo":       time.May,
	"junio":      time.June,
	"julio":      time.July,
	"agosto":     time.August,
	"septiembre": time.September,
	"setiembre":  time.September,
	"octubre":    time.October,
	"noviembre":  time.November,
	"diciembre":  time.December,
}

// slangMultipliers maps colloquial money terms to their multiplier.
// "dos melones" = 2.000.000, "tres lucas" = 3.000, "cinco gambas" = 500.
var slangMultipliers = map[string]decimal.Decimal{
	"melón":   decimal.New(1, 6),
	"melon":   decimal.New(1, 6),
	"melones": decimal.New(1, 6),
	"palo":    decimal.New(1, 6),
	"palos":   decimal.New(1, 6),
	"kilo":    decimal.New(1, 3),
	"kilos":   decimal.New(1, 3),
	"luca":    decimal.New(1, 3),
	"lucas":   decimal.New(1, 3),
	"barra":   decimal.New(1, 3),
	"barras":  decimal.New(1, 3),
	"gamba":   decimal.New(1, 2),
	"gambas":  decimal.New(1, 2),
}

// numberWords are the spelled-out quantities accepted next to a slang term.
var numberWords = map[string]decimal.Decimal{
	"un":     decimal.New(1, 0),
	"una":    decimal.New(1, 0),
	"uno":    decimal.New(1, 0),
	"dos":    decimal.New(2, 0),
	"tres":   decimal.New(3, 0),
	"cuatro": decimal.New(4, 0),
	"cinco":  decimal.New(5, 0),
	"seis":   decimal.New(6, 0),
	"siete":  decimal.New(7, 0),
	"ocho":   decimal.New(8, 0),
	"nueve":  decimal.New(9, 0),
	"diez":   decimal.New(10, 0),
	"media":  decimal.New(5, -1),
	"medio":  decimal.New(5, -1),
}

// tabSynonyms maps spoken tab names to the canonical tab ids the web client
// navigates by.
var tabSynonyms = map[string]string{
	"transacciones": "transactions",
	"presupuesto":   "budgets",
	"presupuestos":  "budgets",
	"categoria":     "categories",
	"categorias":    "categories",
	"categoría":     "categories",
	"categorías":    "categories",
	"vencimiento":   "reminders",
	"vencimientos":  "reminders",
	"recordatorio":  "reminders",
	"recordatorios": "reminders",
	"alerta":        "alerts",
	"alertas":       "alerts",
	"reporte":       "reports",
	"reportes":      "reports",
	"informe":       "reports",
	"informes":      "reports",
}
