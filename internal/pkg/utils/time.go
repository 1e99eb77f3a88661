package utils

import (
	"medibook-service/internal/pkg/constvars"
	"time"
)

// Timestamp formats a creation time the way records store it.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// CalendarDate formats the calendar day of t in its own location.
func CalendarDate(t time.Time) string {
	return t.Format(constvars.DateLayout)
}

// AddCalendarDays moves t by whole days keeping the wall clock.
func AddCalendarDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}
