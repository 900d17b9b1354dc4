package model

import (
	"errors"
	"testing"
)

func strptr(s string) *string { return &s }

func TestCreateTaskInputValidate(t *testing.T) {
	valid := CreateTaskInput{
		Title:         "Dentist",
		ScheduledDate: "2026-03-01",
		ScheduledTime: strptr("14:00"),
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	missingTitle := valid
	missingTitle.Title = "   "
	if err := missingTitle.Validate(); err == nil {
		t.Fatal("expected error for blank title")
	}

	missingDate := valid
	missingDate.ScheduledDate = ""
	if err := missingDate.Validate(); err == nil {
		t.Fatal("expected error for missing scheduled_date")
	}

	badTime := valid
	badTime.ScheduledTime = strptr("25:99")
	if err := badTime.Validate(); err == nil {
		t.Fatal("expected error for malformed scheduled_time")
	}

	badPriority := valid
	p := Priority("urgent")
	badPriority.Priority = &p
	if err := badPriority.Validate(); !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got %v", err)
	}
}

func TestUpdateTaskInputHasFields(t *testing.T) {
	empty := UpdateTaskInput{ID: "task-1"}
	if empty.HasFields() {
		t.Fatal("input with no fields reported HasFields")
	}

	done := true
	withField := UpdateTaskInput{ID: "task-1", IsCompleted: &done}
	if !withField.HasFields() {
		t.Fatal("input with is_completed did not report HasFields")
	}
}

func TestPriorityIsValid(t *testing.T) {
	for _, p := range []Priority{PriorityHigh, PriorityMedium, PriorityLow} {
		if !p.IsValid() {
			t.Fatalf("priority %q reported invalid", p)
		}
	}
	if Priority("critical").IsValid() {
		t.Fatal("unknown priority reported valid")
	}
}
