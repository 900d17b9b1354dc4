package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/daybook/internal/model"
	"github.com/sandeepkv93/daybook/internal/storage"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Manage journal entries",
}

var journalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the entry for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		date, _ := cmd.Flags().GetString("date")
		if date == "" {
			date = today()
		}

		entry, err := storage.NewJournalRepository(db).GetForDate(cmd.Context(), date)
		if err != nil {
			return err
		}
		if entry == nil {
			fmt.Printf("no entry for %s\n", date)
			return nil
		}
		printEntry(*entry)
		return nil
	},
}

var journalWriteCmd = &cobra.Command{
	Use:   "write <content>",
	Short: "Write or replace the entry for a date",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		date, _ := cmd.Flags().GetString("date")
		if date == "" {
			date = today()
		}

		entry, err := storage.NewJournalRepository(db).Upsert(cmd.Context(), model.UpsertEntryInput{
			EntryDate: date,
			Content:   joinArgs(args),
			Mood:      stringFlag(cmd, "mood"),
		})
		if err != nil {
			return err
		}
		printEntry(entry)
		return nil
	},
}

var journalDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a journal entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := storage.NewJournalRepository(db).Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil
	},
}

func init() {
	journalShowCmd.Flags().String("date", "", "entry date (default today)")

	journalWriteCmd.Flags().String("date", "", "entry date (default today)")
	journalWriteCmd.Flags().String("mood", "", "mood for the day")

	journalCmd.AddCommand(journalShowCmd)
	journalCmd.AddCommand(journalWriteCmd)
	journalCmd.AddCommand(journalDeleteCmd)
}

func printEntry(e model.JournalEntry) {
	header := e.EntryDate
	if e.Mood != nil {
		header += "  (" + *e.Mood + ")"
	}
	fmt.Println(header)
	fmt.Println(e.Content)
	fmt.Println("id=" + e.ID)
}
