package importer

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var (
	dayMonthRe   = regexp.MustCompile(`^(\d{1,2})[.,]?\s+([A-Za-z]+)$`)
	slashDateRe  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2,4})$`)
	monthDayRe   = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})$`)
	fullMonths   = []string{
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	}
)

// Misparsed two-digit years land in 1900-2019; anything earlier than this is
// assumed to really mean "this year".
const minPlausibleYear = 2020

// ParseDate turns a free-form date token into an ISO-8601 timestamp. It never
// fails: anything it cannot make sense of degrades to the current time.
//
// Accepted shapes, in order:
//   - blank                  -> now
//   - "20, November" / "13. November" / "13 November" (month matched by
//     case-insensitive prefix)   -> that day in the current year
//   - anything generic date parsing accepts with a year >= 2020
//   - "MM/DD/YYYY", "MM/DD/YY" (two-digit or pre-2020 years remapped to the
//     current year), "MM/DD" (current year assumed); a leading component
//     above 12 is read day-first
func ParseDate(raw string) string {
	return parseDateAt(raw, time.Now())
}

func parseDateAt(raw string, now time.Time) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return now.UTC().Format(time.RFC3339)
	}

	if m := dayMonthRe.FindStringSubmatch(trimmed); m != nil {
		if month, ok := matchMonthName(m[2]); ok {
			day, _ := strconv.Atoi(m[1])
			return isoDate(now.Year(), month, day)
		}
	}

	if t, err := dateparse.ParseAny(trimmed); err == nil && t.Year() >= minPlausibleYear {
		return t.UTC().Format(time.RFC3339)
	}

	if m := slashDateRe.FindStringSubmatch(trimmed); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		month, day = fixDayFirst(month, day)
		if len(m[3]) == 2 || year < minPlausibleYear {
			year = now.Year()
		}
		return isoDate(year, time.Month(month), day)
	}

	if m := monthDayRe.FindStringSubmatch(trimmed); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		month, day = fixDayFirst(month, day)
		return isoDate(now.Year(), time.Month(month), day)
	}

	return now.UTC().Format(time.RFC3339)
}

// matchMonthName resolves a (possibly abbreviated) month name by
// case-insensitive prefix against the full English month names.
func matchMonthName(name string) (time.Month, bool) {
	lower := strings.ToLower(name)
	for i, full := range fullMonths {
		if strings.HasPrefix(full, lower) {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}

// fixDayFirst reads "13/02" as day-first when the leading component cannot
// be a month.
func fixDayFirst(month, day int) (int, int) {
	if month > 12 && day <= 12 {
		return day, month
	}
	return month, day
}

func isoDate(year int, month time.Month, day int) string {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(time.RFC3339)
}

// looksLikeDate reports whether a cell plausibly holds a date, used to decide
// if an unlabeled first column is the date column.
func looksLikeDate(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return false
	}
	if m := dayMonthRe.FindStringSubmatch(trimmed); m != nil {
		if _, ok := matchMonthName(m[2]); ok {
			return true
		}
	}
	if slashDateRe.MatchString(trimmed) || monthDayRe.MatchString(trimmed) {
		return true
	}
	_, err := dateparse.ParseAny(trimmed)
	return err == nil
}
