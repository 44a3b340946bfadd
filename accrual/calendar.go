// Package accrual holds the points and streak rules. Every function takes
// record snapshots and returns new ones; nothing here touches storage.
//
// All calendar arithmetic uses UTC dates: a time is reduced to midnight UTC
// of its UTC calendar day before any comparison.
package accrual

import (
	"fmt"
	"time"
)

// DateLayout is the format of completion date keys.
const DateLayout = "2006-01-02"

// Day normalises t to midnight UTC of its UTC calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateKey returns the YYYY-MM-DD key of t's UTC date.
func DateKey(t time.Time) string {
	return Day(t).Format(DateLayout)
}

// ParseDateKey parses a YYYY-MM-DD key into midnight UTC.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, key, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", key, err)
	}
	return t, nil
}

func previousDay(day time.Time) time.Time {
	return day.AddDate(0, 0, -1)
}
