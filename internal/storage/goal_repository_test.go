package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/sandeepkv93/daybook/internal/model"
)

func TestGoalUpsertCreatesThenReplacesInPlace(t *testing.T) {
	repo := NewGoalRepository(setupDB(t))
	ctx := context.Background()

	first, err := repo.Upsert(ctx, model.UpsertGoalInput{
		GoalDate: "2026-03-01", GoalText: "Run 5k", GoalOrder: 0,
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if first.ID == "" {
		t.Fatal("expected generated id")
	}

	replaced, err := repo.Upsert(ctx, model.UpsertGoalInput{
		GoalDate: "2026-03-01", GoalText: "Run 10k", GoalOrder: 0,
	})
	if err != nil {
		t.Fatalf("replacing upsert: %v", err)
	}
	if replaced.ID != first.ID {
		t.Fatalf("id changed on replace: %q -> %q", first.ID, replaced.ID)
	}
	if replaced.GoalText != "Run 10k" {
		t.Fatalf("goal_text = %q, want Run 10k", replaced.GoalText)
	}

	other, err := repo.Upsert(ctx, model.UpsertGoalInput{
		GoalDate: "2026-03-01", GoalText: "Read a chapter", GoalOrder: 1,
	})
	if err != nil {
		t.Fatalf("new-slot upsert: %v", err)
	}
	if other.ID == first.ID {
		t.Fatal("new slot reused an existing id")
	}

	goals, err := repo.ListForDate(ctx, "2026-03-01")
	if err != nil {
		t.Fatalf("list goals: %v", err)
	}
	if len(goals) != 2 {
		t.Fatalf("expected 2 goals, got %#v", goals)
	}
	if goals[0].GoalOrder != 0 || goals[1].GoalOrder != 1 {
		t.Fatalf("goals not ordered by goal_order: %#v", goals)
	}
}

func TestGoalToggleCompletion(t *testing.T) {
	repo := NewGoalRepository(setupDB(t))
	ctx := context.Background()

	goal, err := repo.Upsert(ctx, model.UpsertGoalInput{
		GoalDate: "2026-03-01", GoalText: "Meditate", GoalOrder: 0,
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	once, err := repo.ToggleCompletion(ctx, goal.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !once.IsCompleted {
		t.Fatal("toggle did not complete the goal")
	}

	twice, err := repo.ToggleCompletion(ctx, goal.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if twice.IsCompleted {
		t.Fatal("second toggle did not restore the goal")
	}

	if _, err := repo.ToggleCompletion(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGoalDeleteIsIdempotent(t *testing.T) {
	repo := NewGoalRepository(setupDB(t))
	ctx := context.Background()

	goal, err := repo.Upsert(ctx, model.UpsertGoalInput{
		GoalDate: "2026-03-01", GoalText: "Tidy desk", GoalOrder: 2,
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if err := repo.Delete(ctx, goal.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, goal.ID); err != nil {
		t.Fatalf("second delete should be a no-op, got %v", err)
	}

	goals, err := repo.ListForDate(ctx, "2026-03-01")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(goals) != 0 {
		t.Fatalf("goal still listed after delete: %#v", goals)
	}
}
