package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/daybook/internal/model"
	"github.com/sandeepkv93/daybook/internal/storage"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage scheduled tasks",
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks in a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		if from == "" {
			from = today()
		}
		if to == "" {
			to = from
		}

		tasks, err := storage.NewTaskRepository(db).ListByDateRange(cmd.Context(), from, to)
		if err != nil {
			return err
		}
		if len(tasks) == 0 {
			fmt.Printf("no tasks between %s and %s\n", from, to)
			return nil
		}
		for _, t := range tasks {
			fmt.Println(formatTask(t))
		}
		return nil
	},
}

var taskAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a task",
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
		in := model.CreateTaskInput{
			Title:           joinArgs(args),
			Description:     stringFlag(cmd, "desc"),
			ScheduledDate:   date,
			ScheduledTime:   stringFlag(cmd, "time"),
			DurationMinutes: intFlag(cmd, "duration"),
			Priority:        priorityFlag(cmd, "priority"),
			ReminderMinutes: intFlag(cmd, "remind"),
			Color:           stringFlag(cmd, "color"),
		}

		task, err := storage.NewTaskRepository(db).Create(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Println(formatTask(task))
		return nil
	},
}

var taskUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		in := model.UpdateTaskInput{
			ID:              args[0],
			Title:           stringFlag(cmd, "title"),
			Description:     stringFlag(cmd, "desc"),
			ScheduledDate:   stringFlag(cmd, "date"),
			ScheduledTime:   stringFlag(cmd, "time"),
			DurationMinutes: intFlag(cmd, "duration"),
			Priority:        priorityFlag(cmd, "priority"),
			IsCompleted:     boolFlag(cmd, "completed"),
			ReminderMinutes: intFlag(cmd, "remind"),
			Color:           stringFlag(cmd, "color"),
		}

		task, err := storage.NewTaskRepository(db).Update(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Println(formatTask(task))
		return nil
	},
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Toggle a task's completion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		task, err := storage.NewTaskRepository(db).ToggleCompletion(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(formatTask(task))
		return nil
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := storage.NewTaskRepository(db).Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil
	},
}

func init() {
	taskListCmd.Flags().String("from", "", "start date (default today)")
	taskListCmd.Flags().String("to", "", "end date inclusive (default --from)")

	taskAddCmd.Flags().String("date", "", "scheduled date (default today)")
	taskAddCmd.Flags().String("time", "", "scheduled time, 24h HH:MM")
	taskAddCmd.Flags().String("desc", "", "description")
	taskAddCmd.Flags().Int("duration", 0, "duration in minutes (default 30)")
	taskAddCmd.Flags().String("priority", "", "priority: high, medium, or low")
	taskAddCmd.Flags().Int("remind", 0, "minutes before the scheduled time to fire a reminder")
	taskAddCmd.Flags().String("color", "", "display color hint")

	taskUpdateCmd.Flags().String("title", "", "new title")
	taskUpdateCmd.Flags().String("date", "", "new scheduled date")
	taskUpdateCmd.Flags().String("time", "", "new scheduled time")
	taskUpdateCmd.Flags().String("desc", "", "new description")
	taskUpdateCmd.Flags().Int("duration", 0, "new duration in minutes")
	taskUpdateCmd.Flags().String("priority", "", "new priority")
	taskUpdateCmd.Flags().Bool("completed", false, "set completion state")
	taskUpdateCmd.Flags().Int("remind", 0, "new reminder lead time in minutes")
	taskUpdateCmd.Flags().String("color", "", "new display color hint")

	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskUpdateCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskDeleteCmd)
}

func formatTask(t model.Task) string {
	mark := " "
	if t.IsCompleted {
		mark = "x"
	}
	when := "--:--"
	if t.ScheduledTime != nil {
		when = *t.ScheduledTime
	}
	line := fmt.Sprintf("[%s] %s %s  %s (%s, %dm)", mark, t.ScheduledDate, when, t.Title, t.Priority, t.DurationMinutes)
	if t.ReminderMinutes != nil {
		line += fmt.Sprintf("  remind %dm before", *t.ReminderMinutes)
	}
	return line + "  id=" + t.ID
}
