// Package scheduler runs the reminder loop: once per tick it scans today's
// pending reminders, fires the ones whose minute has arrived, and consumes
// them so they cannot fire again.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sandeepkv93/daybook/internal/model"
	"github.com/sandeepkv93/daybook/internal/notify"
)

const DefaultInterval = 60 * time.Second

// TaskStore is the slice of storage the scheduler needs.
type TaskStore interface {
	ListDueReminders(ctx context.Context, date string) ([]model.Task, error)
	ConsumeReminder(ctx context.Context, id string) error
}

type Scheduler struct {
	tasks    TaskStore
	sink     notify.Notifier
	interval time.Duration
	now      func() time.Time
	logger   *slog.Logger
}

type Options struct {
	// Interval between scans; defaults to DefaultInterval.
	Interval time.Duration
	// Now overrides the wall clock, for tests.
	Now    func() time.Time
	Logger *slog.Logger
}

func New(tasks TaskStore, sink notify.Notifier, opts Options) *Scheduler {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Scheduler{
		tasks:    tasks,
		sink:     sink,
		interval: opts.Interval,
		now:      opts.Now,
		logger:   opts.Logger,
	}
}

// Run ticks until ctx is canceled. Production callers never cancel; tests
// do. A tick that overruns the interval delays the next one, it never
// overlaps.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick scans one wall-clock minute. A bad row is logged and skipped; the
// remaining candidates are still processed.
func (s *Scheduler) tick(ctx context.Context) {
	now := s.now()
	today := now.Format(model.DateLayout)
	current := now.Format(model.ClockLayout)

	due, err := s.tasks.ListDueReminders(ctx, today)
	if err != nil {
		s.logger.Warn("reminder scan failed", "err", err)
		return
	}

	for _, task := range due {
		if task.ScheduledTime == nil || task.ReminderMinutes == nil {
			continue
		}
		match, err := dueNow(current, *task.ScheduledTime, *task.ReminderMinutes)
		if err != nil {
			s.logger.Warn("skipping reminder with malformed time",
				"task", task.ID, "scheduled_time", *task.ScheduledTime, "err", err)
			continue
		}
		if !match {
			continue
		}

		s.sink.Notify("Task Reminder", fmt.Sprintf("%s at %s", task.Title, *task.ScheduledTime))

		// Consume regardless of delivery: the sink is fire-and-forget and
		// there is no retry.
		if err := s.tasks.ConsumeReminder(ctx, task.ID); err != nil {
			s.logger.Warn("failed to consume reminder", "task", task.ID, "err", err)
		}
	}
}

// dueNow reports whether current falls exactly on the reminder instant
// (scheduled minus reminderMinutes), in whole minutes. The instant is
// normalized back to clock text first so a reminder that wraps across
// midnight still lands on the right minute.
func dueNow(current, scheduled string, reminderMinutes int) (bool, error) {
	instant, err := model.ReminderInstant(scheduled, reminderMinutes)
	if err != nil {
		return false, err
	}
	cur, err := model.ParseClock(current)
	if err != nil {
		return false, err
	}
	ins, err := model.ParseClock(instant)
	if err != nil {
		return false, err
	}
	diff := cur.Sub(ins)
	if diff < 0 {
		diff = -diff
	}
	return diff/time.Minute == 0, nil
}
