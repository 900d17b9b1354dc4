package model

import "testing"

func TestReminderInstant(t *testing.T) {
	cases := []struct {
		scheduled string
		minutes   int
		want      string
	}{
		{"14:00", 15, "13:45"},
		{"14:00", 0, "14:00"},
		{"09:05", 65, "08:00"},
		{"00:10", 30, "23:40"}, // wraps across midnight
	}
	for _, tc := range cases {
		got, err := ReminderInstant(tc.scheduled, tc.minutes)
		if err != nil {
			t.Fatalf("ReminderInstant(%q, %d): %v", tc.scheduled, tc.minutes, err)
		}
		if got != tc.want {
			t.Fatalf("ReminderInstant(%q, %d) = %q, want %q", tc.scheduled, tc.minutes, got, tc.want)
		}
	}

	if _, err := ReminderInstant("2pm", 15); err == nil {
		t.Fatal("expected error for malformed scheduled time")
	}
}

func TestParseDateRejectsMalformedInput(t *testing.T) {
	for _, bad := range []string{"03/01/2026", "2026-3-1", "yesterday", ""} {
		if _, err := ParseDate(bad); err == nil {
			t.Fatalf("ParseDate(%q) accepted malformed input", bad)
		}
	}
	if _, err := ParseDate("2026-03-01"); err != nil {
		t.Fatalf("ParseDate rejected valid date: %v", err)
	}
}
