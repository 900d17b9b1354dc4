package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/daybook/internal/notify"
	"github.com/sandeepkv93/daybook/internal/scheduler"
	"github.com/sandeepkv93/daybook/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the reminder scheduler until interrupted",
	Long: `Serve scans for due reminders once per tick and fires a desktop
notification for each task whose reminder minute has arrived. A fired
reminder is consumed and never fires again.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		var sink notify.Notifier = notify.NewDesktop(logger)
		if logOnly, _ := cmd.Flags().GetBool("log-only"); logOnly {
			sink = notify.NewLogger(logger)
		}

		s := scheduler.New(storage.NewTaskRepository(db), sink, scheduler.Options{
			Interval: cfg.TickInterval(),
			Logger:   logger,
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("reminder scheduler running",
			"interval", cfg.TickInterval(), "database", cfg.DatabasePath())
		s.Run(ctx)
		logger.Info("shutting down")
		return nil
	},
}

func init() {
	serveCmd.Flags().Bool("log-only", false, "log notifications instead of delivering them to the desktop")
}
