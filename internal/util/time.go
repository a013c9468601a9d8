package util //nolint:revive // package name util hosts shared helpers used across handlers

import "time"

// UTCMidnight normalizes t to 00:00:00 UTC on the same calendar day.
// Lessons are scheduled per day, so everything after the date is dropped.
func UTCMidnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
