package model

import (
	"errors"
	"fmt"
	"strings"
)

type DailyGoal struct {
	ID          string
	GoalDate    string
	GoalText    string
	GoalOrder   int
	IsCompleted bool
}

// UpsertGoalInput addresses a goal by its (goal_date, goal_order) slot,
// never by id.
type UpsertGoalInput struct {
	GoalDate  string
	GoalText  string
	GoalOrder int
}

func (in UpsertGoalInput) Validate() error {
	if in.GoalDate == "" {
		return errors.New("model: goal_date is required")
	}
	if _, err := ParseDate(in.GoalDate); err != nil {
		return fmt.Errorf("model: invalid goal_date %q: %w", in.GoalDate, err)
	}
	if strings.TrimSpace(in.GoalText) == "" {
		return errors.New("model: goal_text is required")
	}
	if in.GoalOrder < 0 {
		return errors.New("model: goal_order cannot be negative")
	}
	return nil
}
