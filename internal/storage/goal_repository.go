package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/sandeepkv93/daybook/internal/model"
)

type GoalRepository struct {
	db *DB
}

func NewGoalRepository(db *DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) ListForDate(ctx context.Context, date string) ([]model.DailyGoal, error) {
	var out []model.DailyGoal
	err := r.db.With(func(conn *sql.DB) error {
		rows, err := conn.QueryContext(ctx, `
			SELECT `+goalColumns+`
			FROM daily_goals
			WHERE goal_date = ?
			ORDER BY goal_order`, date)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]model.DailyGoal, 0)
		for rows.Next() {
			goal, scanErr := scanGoal(rows)
			if scanErr != nil {
				return scanErr
			}
			out = append(out, goal)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert replaces the goal text for an occupied (goal_date, goal_order)
// slot, preserving its id, or creates a new goal at the slot. The whole
// find-or-create runs under one connection hold so a concurrent upsert for
// the same slot cannot race past the existence check.
func (r *GoalRepository) Upsert(ctx context.Context, in model.UpsertGoalInput) (model.DailyGoal, error) {
	if err := in.Validate(); err != nil {
		return model.DailyGoal{}, err
	}

	var out model.DailyGoal
	err := r.db.With(func(conn *sql.DB) error {
		var id string
		err := conn.QueryRowContext(ctx,
			`SELECT id FROM daily_goals WHERE goal_date = ? AND goal_order = ?`,
			in.GoalDate, in.GoalOrder).Scan(&id)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			id = uuid.NewString()
			if _, err := conn.ExecContext(ctx, `
				INSERT INTO daily_goals (id, goal_date, goal_text, goal_order)
				VALUES (?, ?, ?, ?)`,
				id, in.GoalDate, in.GoalText, in.GoalOrder); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if _, err := conn.ExecContext(ctx,
				`UPDATE daily_goals SET goal_text = ? WHERE id = ?`,
				in.GoalText, id); err != nil {
				return err
			}
		}
		out, err = fetchGoal(ctx, conn, id)
		return err
	})
	if err != nil {
		return model.DailyGoal{}, err
	}
	return out, nil
}

func (r *GoalRepository) ToggleCompletion(ctx context.Context, id string) (model.DailyGoal, error) {
	var out model.DailyGoal
	err := r.db.With(func(conn *sql.DB) error {
		if _, err := conn.ExecContext(ctx,
			`UPDATE daily_goals SET is_completed = NOT is_completed WHERE id = ?`, id); err != nil {
			return err
		}
		var err error
		out, err = fetchGoal(ctx, conn, id)
		return err
	})
	if err != nil {
		return model.DailyGoal{}, err
	}
	return out, nil
}

func (r *GoalRepository) Delete(ctx context.Context, id string) error {
	return r.db.With(func(conn *sql.DB) error {
		_, err := conn.ExecContext(ctx, `DELETE FROM daily_goals WHERE id = ?`, id)
		return err
	})
}

func fetchGoal(ctx context.Context, conn *sql.DB, id string) (model.DailyGoal, error) {
	row := conn.QueryRowContext(ctx, `SELECT `+goalColumns+` FROM daily_goals WHERE id = ?`, id)
	goal, err := scanGoal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DailyGoal{}, ErrNotFound
	}
	return goal, err
}
