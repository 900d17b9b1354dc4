package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidPriority = errors.New("model: invalid task priority")

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

const DefaultDurationMinutes = 30

type Task struct {
	ID              string
	Title           string
	Description     *string
	ScheduledDate   string
	ScheduledTime   *string
	DurationMinutes int
	Priority        Priority
	IsCompleted     bool
	ReminderMinutes *int
	Color           *string
	CreatedAt       string
}

type CreateTaskInput struct {
	Title           string
	Description     *string
	ScheduledDate   string
	ScheduledTime   *string
	DurationMinutes *int
	Priority        *Priority
	ReminderMinutes *int
	Color           *string
}

func (in CreateTaskInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return errors.New("model: task title is required")
	}
	if in.ScheduledDate == "" {
		return errors.New("model: task scheduled_date is required")
	}
	if _, err := ParseDate(in.ScheduledDate); err != nil {
		return fmt.Errorf("model: invalid scheduled_date %q: %w", in.ScheduledDate, err)
	}
	if in.ScheduledTime != nil {
		if _, err := ParseClock(*in.ScheduledTime); err != nil {
			return fmt.Errorf("model: invalid scheduled_time %q: %w", *in.ScheduledTime, err)
		}
	}
	if in.Priority != nil && !in.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, *in.Priority)
	}
	return nil
}

type UpdateTaskInput struct {
	ID              string
	Title           *string
	Description     *string
	ScheduledDate   *string
	ScheduledTime   *string
	DurationMinutes *int
	Priority        *Priority
	IsCompleted     *bool
	ReminderMinutes *int
	Color           *string
}

// HasFields reports whether the input carries at least one modifiable field.
func (in UpdateTaskInput) HasFields() bool {
	return in.Title != nil ||
		in.Description != nil ||
		in.ScheduledDate != nil ||
		in.ScheduledTime != nil ||
		in.DurationMinutes != nil ||
		in.Priority != nil ||
		in.IsCompleted != nil ||
		in.ReminderMinutes != nil ||
		in.Color != nil
}

func (in UpdateTaskInput) Validate() error {
	if strings.TrimSpace(in.ID) == "" {
		return errors.New("model: task id is required")
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return errors.New("model: task title cannot be empty")
	}
	if in.ScheduledDate != nil {
		if _, err := ParseDate(*in.ScheduledDate); err != nil {
			return fmt.Errorf("model: invalid scheduled_date %q: %w", *in.ScheduledDate, err)
		}
	}
	if in.ScheduledTime != nil {
		if _, err := ParseClock(*in.ScheduledTime); err != nil {
			return fmt.Errorf("model: invalid scheduled_time %q: %w", *in.ScheduledTime, err)
		}
	}
	if in.Priority != nil && !in.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, *in.Priority)
	}
	return nil
}
