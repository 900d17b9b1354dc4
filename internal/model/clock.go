package model

import (
	"fmt"
	"time"
)

// Dates and clock times are stored as text. Both layouts sort
// lexicographically in the same order as chronologically, which the storage
// layer relies on for ORDER BY.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func ParseClock(s string) (time.Time, error) {
	return time.Parse(ClockLayout, s)
}

// ReminderInstant returns the wall-clock minute at which a reminder should
// fire: scheduled minus minutesBefore, wrapping across midnight.
func ReminderInstant(scheduled string, minutesBefore int) (string, error) {
	t, err := ParseClock(scheduled)
	if err != nil {
		return "", fmt.Errorf("model: invalid scheduled_time %q: %w", scheduled, err)
	}
	return t.Add(-time.Duration(minutesBefore) * time.Minute).Format(ClockLayout), nil
}
