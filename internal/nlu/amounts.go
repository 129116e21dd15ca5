package nlu

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var numericLiteralRE = regexp.MustCompile(`\d+(?:\.\d+)?`)

// AmountResolution is the outcome of resolving a free-text amount
// expression. Fallback reports that nothing could be parsed and zero was
// substituted.
type AmountResolution struct {
	Value    decimal.Decimal
	Fallback bool
}

// ResolveAmount converts a free-text amount expression into a decimal.
// It understands plain numerals ("2500", "1.500", "2,5"), money slang
// ("2 melones", "un kilo", "media luca") and numerals qualified by slang
// ("3 lucas y media" resolves the numeral times the slang multiplier).
// Periods are treated as thousand separators and commas as the decimal
// mark, matching how the amounts are spoken. The result is never negative
// and never NaN: unparseable input degrades to zero with Fallback set.
func ResolveAmount(text string) AmountResolution {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.TrimSpace(strings.TrimSuffix(s, "pesos"))
	if s == "" {
		return AmountResolution{Value: decimal.Zero, Fallback: true}
	}

	words := strings.Fields(s)

	if literal := numericLiteralRE.FindString(s); literal != "" {
		value, err := decimal.NewFromString(literal)
		if err == nil {
			for _, w := range words {
				if multiplier, ok := slangMultipliers[w]; ok {
					return AmountResolution{Value: value.Mul(multiplier)}
				}
			}
			return AmountResolution{Value: value}
		}
	}

	for i, w := range words {
		multiplier, ok := slangMultipliers[w]
		if !ok {
			continue
		}
		quantity := decimal.New(1, 0)
		if i > 0 {
			if q, ok := numberWords[words[i-1]]; ok {
				quantity = q
			}
		}
		return AmountResolution{Value: quantity.Mul(multiplier)}
	}

	if value, err := decimal.NewFromString(s); err == nil && !value.IsNegative() {
		return AmountResolution{Value: value}
	}
	return AmountResolution{Value: decimal.Zero, Fallback: true}
}
