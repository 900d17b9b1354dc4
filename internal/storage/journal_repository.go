package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/sandeepkv93/daybook/internal/model"
)

type JournalRepository struct {
	db *DB
}

func NewJournalRepository(db *DB) *JournalRepository {
	return &JournalRepository{db: db}
}

// GetForDate returns the entry for date, or (nil, nil) when none exists.
// Absence is a valid result, not an error.
func (r *JournalRepository) GetForDate(ctx context.Context, date string) (*model.JournalEntry, error) {
	var out *model.JournalEntry
	err := r.db.With(func(conn *sql.DB) error {
		row := conn.QueryRowContext(ctx,
			`SELECT `+entryColumns+` FROM journal_entries WHERE entry_date = ?`, date)
		entry, err := scanEntry(row)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		out = &entry
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert replaces content and mood for the date's existing entry,
// preserving its id, or creates the entry. entry_date is unique, so a
// second upsert for the same date can never produce two rows.
func (r *JournalRepository) Upsert(ctx context.Context, in model.UpsertEntryInput) (model.JournalEntry, error) {
	if err := in.Validate(); err != nil {
		return model.JournalEntry{}, err
	}

	var out model.JournalEntry
	err := r.db.With(func(conn *sql.DB) error {
		var id string
		err := conn.QueryRowContext(ctx,
			`SELECT id FROM journal_entries WHERE entry_date = ?`, in.EntryDate).Scan(&id)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			id = uuid.NewString()
			if _, err := conn.ExecContext(ctx, `
				INSERT INTO journal_entries (id, entry_date, content, mood)
				VALUES (?, ?, ?, ?)`,
				id, in.EntryDate, in.Content, optString(in.Mood)); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if _, err := conn.ExecContext(ctx,
				`UPDATE journal_entries SET content = ?, mood = ? WHERE id = ?`,
				in.Content, optString(in.Mood), id); err != nil {
				return err
			}
		}

		row := conn.QueryRowContext(ctx,
			`SELECT `+entryColumns+` FROM journal_entries WHERE id = ?`, id)
		entry, err := scanEntry(row)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		out = entry
		return nil
	})
	if err != nil {
		return model.JournalEntry{}, err
	}
	return out, nil
}

func (r *JournalRepository) Delete(ctx context.Context, id string) error {
	return r.db.With(func(conn *sql.DB) error {
		_, err := conn.ExecContext(ctx, `DELETE FROM journal_entries WHERE id = ?`, id)
		return err
	})
}
