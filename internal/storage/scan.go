package storage

import (
	"database/sql"

	"github.com/sandeepkv93/daybook/internal/model"
)

type scanner interface {
	Scan(dest ...any) error
}

const taskColumns = `id, title, description, scheduled_date, scheduled_time,
	duration_minutes, priority, is_completed, reminder_minutes, color, created_at`

func scanTask(s scanner) (model.Task, error) {
	var out model.Task
	var description, scheduledTime, color sql.NullString
	var priority string
	var completed int
	var reminder sql.NullInt64
	if err := s.Scan(
		&out.ID, &out.Title, &description, &out.ScheduledDate, &scheduledTime,
		&out.DurationMinutes, &priority, &completed, &reminder, &color, &out.CreatedAt,
	); err != nil {
		return model.Task{}, err
	}
	out.Description = nullString(description)
	out.ScheduledTime = nullString(scheduledTime)
	out.Priority = model.Priority(priority)
	out.IsCompleted = completed != 0
	out.ReminderMinutes = nullInt(reminder)
	out.Color = nullString(color)
	return out, nil
}

const goalColumns = `id, goal_date, goal_text, goal_order, is_completed`

func scanGoal(s scanner) (model.DailyGoal, error) {
	var out model.DailyGoal
	var completed int
	if err := s.Scan(&out.ID, &out.GoalDate, &out.GoalText, &out.GoalOrder, &completed); err != nil {
		return model.DailyGoal{}, err
	}
	out.IsCompleted = completed != 0
	return out, nil
}

const entryColumns = `id, entry_date, content, mood`

func scanEntry(s scanner) (model.JournalEntry, error) {
	var out model.JournalEntry
	var mood sql.NullString
	if err := s.Scan(&out.ID, &out.EntryDate, &out.Content, &mood); err != nil {
		return model.JournalEntry{}, err
	}
	out.Mood = nullString(mood)
	return out, nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func optString(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func optInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
