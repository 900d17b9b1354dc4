package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/daybook/internal/model"
	"github.com/sandeepkv93/daybook/internal/storage"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage daily goals",
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals for a date",
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

		goals, err := storage.NewGoalRepository(db).ListForDate(cmd.Context(), date)
		if err != nil {
			return err
		}
		if len(goals) == 0 {
			fmt.Printf("no goals for %s\n", date)
			return nil
		}
		for _, g := range goals {
			fmt.Println(formatGoal(g))
		}
		return nil
	},
}

var goalSetCmd = &cobra.Command{
	Use:   "set <text>",
	Short: "Set the goal at a (date, order) slot",
	Long: `Set writes the goal occupying an order slot on a date. If the slot is
already taken its text is replaced in place; otherwise a new goal is
created there.`,
	Args: cobra.MinimumNArgs(1),
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
		order, _ := cmd.Flags().GetInt("order")

		goal, err := storage.NewGoalRepository(db).Upsert(cmd.Context(), model.UpsertGoalInput{
			GoalDate:  date,
			GoalText:  joinArgs(args),
			GoalOrder: order,
		})
		if err != nil {
			return err
		}
		fmt.Println(formatGoal(goal))
		return nil
	},
}

var goalDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Toggle a goal's completion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		goal, err := storage.NewGoalRepository(db).ToggleCompletion(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(formatGoal(goal))
		return nil
	},
}

var goalDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := storage.NewGoalRepository(db).Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil
	},
}

func init() {
	goalListCmd.Flags().String("date", "", "goal date (default today)")

	goalSetCmd.Flags().String("date", "", "goal date (default today)")
	goalSetCmd.Flags().Int("order", 0, "position of the goal within the date")

	goalCmd.AddCommand(goalListCmd)
	goalCmd.AddCommand(goalSetCmd)
	goalCmd.AddCommand(goalDoneCmd)
	goalCmd.AddCommand(goalDeleteCmd)
}

func formatGoal(g model.DailyGoal) string {
	mark := " "
	if g.IsCompleted {
		mark = "x"
	}
	return fmt.Sprintf("[%s] %s #%d  %s  id=%s", mark, g.GoalDate, g.GoalOrder, g.GoalText, g.ID)
}
