package nlu

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"hablapp/internal/core"
)

var (
	slashDateRE   = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	naturalDateRE = regexp.MustCompile(`^(\d{1,2})(?:\s+de)?\s+([a-záéíóúñü]+)(?:\s+de\s+(\d{4}))?$`)
)

// DateResolution is the outcome of resolving a free-text date expression.
// Fallback reports that the text could not be parsed and today's date was
// substituted, so callers can tell "resolved to today" from "fell back to
// today".
type DateResolution struct {
	Date     time.Time
	Fallback bool
}

// ISO renders the resolved date in YYYY-MM-DD.
func (r DateResolution) ISO() string {
	return r.Date.Format(core.DateLayout)
}

// ResolveDate converts a Spanish free-text date expression ("ayer",
// "12/3/2025", "15 de abril") into a calendar date. It never fails:
// unparseable input degrades to today's date with Fallback set.
func ResolveDate(text string) DateResolution {
	return ResolveDateAt(text, time.Now())
}

// ResolveDateAt is ResolveDate with an explicit current date, resolved in
// this priority order:
//
//  1. relative-date word ("hoy", "mañana", "anteayer", ...)
//  2. slash date D/M/YYYY, accepted only if it round-trips to a real
//     calendar date
//  3. "<day> [de] <month> [de <year>]"; a past date with no explicit year
//     is assumed to mean the next occurrence and bumped one year
//  4. fallback to today
func ResolveDateAt(text string, now time.Time) DateResolution {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.TrimSuffix(s, ".")

	if offset, ok := relativeDays[s]; ok {
		return DateResolution{Date: today.AddDate(0, 0, offset)}
	}

	if m := slashDateRE.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if d, ok := calendarDate(year, month, day); ok {
			return DateResolution{Date: d}
		}
		// Wrapped dates like 30/2/2025 fall through to the next pattern
		// instead of silently shifting into March.
	}

	if m := naturalDateRE.FindStringSubmatch(s); m != nil {
		if month, ok := monthIndex[m[2]]; ok {
			day, _ := strconv.Atoi(m[1])
			year := now.Year()
			explicitYear := m[3] != ""
			if explicitYear {
				year, _ = strconv.Atoi(m[3])
			}
			if d, ok := calendarDate(year, int(month), day); ok {
				if !explicitYear && d.Before(today) {
					if bumped, ok := calendarDate(year+1, int(month), day); ok {
						return DateResolution{Date: bumped}
					}
				}
				return DateResolution{Date: d}
			}
		}
	}

	slog.Warn("Unparseable date expression, falling back to today", "text", text)
	return DateResolution{Date: today, Fallback: true}
}

// calendarDate builds a date and verifies it round-trips to the same
// components, rejecting wrapped dates such as February 30th.
func calendarDate(year, month, day int) (time.Time, bool) {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || int(d.Month()) != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}
