package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sandeepkv93/daybook/internal/model"
)

type TaskRepository struct {
	db *DB
}

func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// ListByDateRange returns tasks with scheduled_date in [start, end]
// inclusive, ordered by (scheduled_date, scheduled_time). Tasks without a
// time sort before timed tasks on the same date (SQLite orders NULL first
// ascending).
func (r *TaskRepository) ListByDateRange(ctx context.Context, start, end string) ([]model.Task, error) {
	var out []model.Task
	err := r.db.With(func(conn *sql.DB) error {
		rows, err := conn.QueryContext(ctx, `
			SELECT `+taskColumns+`
			FROM tasks
			WHERE scheduled_date >= ? AND scheduled_date <= ?
			ORDER BY scheduled_date, scheduled_time`, start, end)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]model.Task, 0)
		for rows.Next() {
			task, scanErr := scanTask(rows)
			if scanErr != nil {
				return scanErr
			}
			out = append(out, task)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create persists a new task with a generated id and returns the stored
// row, including the server-assigned created_at.
func (r *TaskRepository) Create(ctx context.Context, in model.CreateTaskInput) (model.Task, error) {
	if err := in.Validate(); err != nil {
		return model.Task{}, err
	}

	id := uuid.NewString()
	duration := model.DefaultDurationMinutes
	if in.DurationMinutes != nil {
		duration = *in.DurationMinutes
	}
	priority := model.PriorityMedium
	if in.Priority != nil {
		priority = *in.Priority
	}

	var out model.Task
	err := r.db.With(func(conn *sql.DB) error {
		_, err := conn.ExecContext(ctx, `
			INSERT INTO tasks (id, title, description, scheduled_date, scheduled_time,
				duration_minutes, priority, reminder_minutes, color)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, in.Title, optString(in.Description), in.ScheduledDate, optString(in.ScheduledTime),
			duration, string(priority), optInt(in.ReminderMinutes), optString(in.Color),
		)
		if err != nil {
			return err
		}
		out, err = fetchTask(ctx, conn, id)
		return err
	})
	if err != nil {
		return model.Task{}, err
	}
	return out, nil
}

// Update applies the fields present in the input as a single multi-field
// UPDATE and returns the resulting row. It fails with ErrNoFields when the
// input carries nothing to change and ErrNotFound for an unknown id.
func (r *TaskRepository) Update(ctx context.Context, in model.UpdateTaskInput) (model.Task, error) {
	if err := in.Validate(); err != nil {
		return model.Task{}, err
	}
	if !in.HasFields() {
		return model.Task{}, ErrNoFields
	}

	sets := make([]string, 0, 9)
	args := make([]any, 0, 10)
	appendSet := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}
	if in.Title != nil {
		appendSet("title", *in.Title)
	}
	if in.Description != nil {
		appendSet("description", *in.Description)
	}
	if in.ScheduledDate != nil {
		appendSet("scheduled_date", *in.ScheduledDate)
	}
	if in.ScheduledTime != nil {
		appendSet("scheduled_time", *in.ScheduledTime)
	}
	if in.DurationMinutes != nil {
		appendSet("duration_minutes", *in.DurationMinutes)
	}
	if in.Priority != nil {
		appendSet("priority", string(*in.Priority))
	}
	if in.IsCompleted != nil {
		appendSet("is_completed", boolInt(*in.IsCompleted))
	}
	if in.ReminderMinutes != nil {
		appendSet("reminder_minutes", *in.ReminderMinutes)
	}
	if in.Color != nil {
		appendSet("color", *in.Color)
	}
	args = append(args, in.ID)

	var out model.Task
	err := r.db.With(func(conn *sql.DB) error {
		query := fmt.Sprintf(`UPDATE tasks SET %s WHERE id = ?`, strings.Join(sets, ", "))
		if _, err := conn.ExecContext(ctx, query, args...); err != nil {
			return err
		}
		var err error
		out, err = fetchTask(ctx, conn, in.ID)
		return err
	})
	if err != nil {
		return model.Task{}, err
	}
	return out, nil
}

// Delete removes the task. Deleting an unknown id is a no-op.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	return r.db.With(func(conn *sql.DB) error {
		_, err := conn.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
		return err
	})
}

// ToggleCompletion flips is_completed in a single statement so concurrent
// toggles cannot lose an update, then returns the stored row.
func (r *TaskRepository) ToggleCompletion(ctx context.Context, id string) (model.Task, error) {
	var out model.Task
	err := r.db.With(func(conn *sql.DB) error {
		if _, err := conn.ExecContext(ctx,
			`UPDATE tasks SET is_completed = NOT is_completed WHERE id = ?`, id); err != nil {
			return err
		}
		var err error
		out, err = fetchTask(ctx, conn, id)
		return err
	})
	if err != nil {
		return model.Task{}, err
	}
	return out, nil
}

// ListDueReminders returns the incomplete tasks on date that still carry a
// reminder and a scheduled time, the scheduler's per-tick candidate set.
func (r *TaskRepository) ListDueReminders(ctx context.Context, date string) ([]model.Task, error) {
	var out []model.Task
	err := r.db.With(func(conn *sql.DB) error {
		rows, err := conn.QueryContext(ctx, `
			SELECT `+taskColumns+`
			FROM tasks
			WHERE scheduled_date = ?
			  AND scheduled_time IS NOT NULL
			  AND reminder_minutes IS NOT NULL
			  AND is_completed = 0`, date)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]model.Task, 0)
		for rows.Next() {
			task, scanErr := scanTask(rows)
			if scanErr != nil {
				return scanErr
			}
			out = append(out, task)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ConsumeReminder clears reminder_minutes so the task never fires again for
// that value. Clearing an already-consumed reminder is a no-op.
func (r *TaskRepository) ConsumeReminder(ctx context.Context, id string) error {
	return r.db.With(func(conn *sql.DB) error {
		_, err := conn.ExecContext(ctx,
			`UPDATE tasks SET reminder_minutes = NULL WHERE id = ?`, id)
		return err
	})
}

func fetchTask(ctx context.Context, conn *sql.DB, id string) (model.Task, error) {
	row := conn.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, ErrNotFound
	}
	return task, err
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
