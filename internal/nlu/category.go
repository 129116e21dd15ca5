package nlu

import (
	"regexp"
	"strings"
)

var (
	trailingParaRE = regexp.MustCompile(`\s+para\s*$`)
	trailingPrepRE = regexp.MustCompile(`\s+(en|de|del|por)\s*$`)
)

// NormalizeCategory strips the trailing filler speech leaves on category
// phrases ("comida para", "transporte en"). It is idempotent: stripping is
// repeated until the text stops changing, so stacked filler ("comida de
// por") collapses in one call. Empty input yields empty output, which
// callers treat as "category absent".
func NormalizeCategory(text string) string {
	s := strings.TrimSpace(text)
	for {
		next := trailingParaRE.ReplaceAllString(s, "")
		next = trailingPrepRE.ReplaceAllString(next, "")
		next = strings.TrimSpace(next)
		if next == s {
			return s
		}
		s = next
	}
}

// CanonicalTab maps a spoken tab name to the canonical tab id. Unknown
// names pass through lowercased and trimmed; navigation treats them as
// literal tab ids rather than errors.
func CanonicalTab(text string) string {
	key := strings.ToLower(strings.TrimSpace(text))
	if id, ok := tabSynonyms[key]; ok {
		return id
	}
	return key
}
