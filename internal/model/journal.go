package model

import (
	"errors"
	"fmt"
	"strings"
)

type JournalEntry struct {
	ID        string
	EntryDate string
	Content   string
	Mood      *string
}

type UpsertEntryInput struct {
	EntryDate string
	Content   string
	Mood      *string
}

func (in UpsertEntryInput) Validate() error {
	if in.EntryDate == "" {
		return errors.New("model: entry_date is required")
	}
	if _, err := ParseDate(in.EntryDate); err != nil {
		return fmt.Errorf("model: invalid entry_date %q: %w", in.EntryDate, err)
	}
	if strings.TrimSpace(in.Content) == "" {
		return errors.New("model: journal content is required")
	}
	return nil
}
