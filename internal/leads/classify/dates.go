package classify

import (
	"strconv"
	"strings"
	"time"
)

// canonicalDateLayout is the single date form the engine compares.
// Comparisons are plain string comparisons on this form; date-object
// arithmetic is never used, so host-timezone conversion cannot shift a
// calendar day.
const canonicalDateLayout = "2006-01-02"

// canonicalDate converts any of the accepted date encodings to a business-
// local YYYY-MM-DD string. Unparseable input returns "" (attribute absent).
func (e *Engine) canonicalDate(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.In(e.loc).Format(canonicalDateLayout)
	case string:
		return e.canonicalDateString(v)
	default:
		return ""
	}
}

func (e *Engine) canonicalDateString(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	// ISO datetime with an explicit zone: convert the instant to business
	// time before taking the calendar date.
	if strings.ContainsAny(s, "TZ+") || strings.Count(s, ":") >= 1 {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t.In(e.loc).Format(canonicalDateLayout)
		}
		// Zone-less datetimes are recorded in business-local time already;
		// only the date part matters.
		for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format(canonicalDateLayout)
			}
		}
	}

	if idx := strings.IndexAny(s, "T "); idx > 0 {
		s = s[:idx]
	}

	sep := ""
	switch {
	case strings.Contains(s, "/"):
		sep = "/"
	case strings.Contains(s, "-"):
		sep = "-"
	default:
		return ""
	}

	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return ""
	}

	year, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	month, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	day, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return ""
	}

	return formatCalendarDate(year, month, day)
}

// formatCalendarDate validates the components against the real calendar.
// time.Date normalizes overflow (2024-02-31 becomes March 2), so a
// round-trip comparison rejects impossible dates.
func formatCalendarDate(year, month, day int) string {
	if year < 1 || month < 1 || month > 12 || day < 1 || day > 31 {
		return ""
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return ""
	}

	return t.Format(canonicalDateLayout)
}

// ValidDate reports whether s parses as one of the accepted date encodings.
// Intake validation uses it so new rows never need the malformed-input
// degradation path.
func ValidDate(s string) bool {
	return Default().canonicalDateString(s) != ""
}

// Calendar-date ordering on the canonical form. Empty means absent and never
// satisfies any ordering.

func onOrBefore(date, today string) bool {
	return date != "" && date <= today
}

func onOrAfter(date, today string) bool {
	return date != "" && date >= today
}

func strictlyBefore(date, today string) bool {
	return date != "" && date < today
}
