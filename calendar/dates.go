package calendar

import (
	"strconv"
	"strings"
	"time"
)

// DisplayDate is the canonical external date representation.
const DisplayDate = "02/01/2006"

func isDateSep(r rune) bool {
	return r == '/' || r == '-'
}

// ParseDate accepts the two date shapes found in the source data:
// DD/MM/YYYY (also with '-' as separator) and YYYY-MM-DD. A 4-digit first
// segment means year-first, anything else is day-first. Two-digit years get
// 2000 added; years before 2000 cannot be expressed in the short form.
//
// The boolean is false for empty input, a wrong segment count, or a
// calendrically invalid date. Callers treat false as "leave this record out
// of date-dependent operations", never as a fatal condition.
func ParseDate(s string) (time.Time, bool) {
	if len(s) == 0 {
		return time.Time{}, false
	}
	parts := strings.FieldsFunc(s, isDateSep)
	if len(parts) != 3 {
		return time.Time{}, false
	}

	var ds, ms, ys string
	if len(parts[0]) == 4 {
		ys, ms, ds = parts[0], parts[1], parts[2]
	} else {
		ds, ms, ys = parts[0], parts[1], parts[2]
	}

	day, err := strconv.Atoi(ds)
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(ms)
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(ys)
	if err != nil {
		return time.Time{}, false
	}
	if year < 100 {
		year += 2000
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range values (32/01 becomes 01/02); a
	// mismatch after construction means the input was not a real date.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders the display form DD/MM/YYYY.
func FormatDate(t time.Time) string {
	return t.Format(DisplayDate)
}
