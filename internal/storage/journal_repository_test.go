package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/sandeepkv93/daybook/internal/model"
)

func TestJournalGetForDateAbsentIsNotAnError(t *testing.T) {
	repo := NewJournalRepository(setupDB(t))

	entry, err := repo.GetForDate(context.Background(), "2026-03-01")
	if err != nil {
		t.Fatalf("get for date: %v", err)
	}
	if entry != nil {
		t.Fatalf("expected nil entry for empty date, got %#v", entry)
	}
}

func TestJournalUpsertPreservesIDAndStaysSingleRow(t *testing.T) {
	db := setupDB(t)
	repo := NewJournalRepository(db)
	ctx := context.Background()

	first, err := repo.Upsert(ctx, model.UpsertEntryInput{
		EntryDate: "2026-03-01",
		Content:   "Slow morning.",
		Mood:      strptr("calm"),
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second, err := repo.Upsert(ctx, model.UpsertEntryInput{
		EntryDate: "2026-03-01",
		Content:   "Slow morning, busy afternoon.",
		Mood:      strptr("tired"),
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("id changed on upsert: %q -> %q", first.ID, second.ID)
	}
	if second.Content != "Slow morning, busy afternoon." {
		t.Fatalf("content not replaced: %q", second.Content)
	}
	if second.Mood == nil || *second.Mood != "tired" {
		t.Fatalf("mood not replaced: %#v", second.Mood)
	}

	var count int
	err = db.With(func(conn *sql.DB) error {
		return conn.QueryRow(
			`SELECT COUNT(*) FROM journal_entries WHERE entry_date = ?`, "2026-03-01",
		).Scan(&count)
	})
	if err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one row for the date, got %d", count)
	}

	got, err := repo.GetForDate(ctx, "2026-03-01")
	if err != nil {
		t.Fatalf("get for date: %v", err)
	}
	if got == nil || got.ID != first.ID {
		t.Fatalf("unexpected entry: %#v", got)
	}
}

func TestJournalDeleteIsIdempotent(t *testing.T) {
	repo := NewJournalRepository(setupDB(t))
	ctx := context.Background()

	entry, err := repo.Upsert(ctx, model.UpsertEntryInput{
		EntryDate: "2026-03-01",
		Content:   "Short note.",
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if err := repo.Delete(ctx, entry.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, entry.ID); err != nil {
		t.Fatalf("second delete should be a no-op, got %v", err)
	}

	got, err := repo.GetForDate(ctx, "2026-03-01")
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if got != nil {
		t.Fatalf("entry still present after delete: %#v", got)
	}
}
