// Package notify delivers fire-and-forget notifications. Delivery failures
// are logged and dropped; no sink reports success to its caller.
package notify

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
)

type Notifier interface {
	Notify(title, body string)
}

// Logger writes notifications to the log. Used by headless serve and tests.
type Logger struct {
	logger *slog.Logger
}

func NewLogger(logger *slog.Logger) *Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logger{logger: logger}
}

func (n *Logger) Notify(title, body string) {
	n.logger.Info("notification", "title", title, "body", body)
}

// Desktop shells out to the platform notification tool.
type Desktop struct {
	logger *slog.Logger
	goos   string
	run    func(name string, args ...string) error
}

func NewDesktop(logger *slog.Logger) *Desktop {
	if logger == nil {
		logger = slog.Default()
	}
	return &Desktop{
		logger: logger,
		goos:   runtime.GOOS,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

func (n *Desktop) Notify(title, body string) {
	name, args, ok := notifyCommand(n.goos, title, body)
	if !ok {
		n.logger.Warn("no desktop notifier for platform", "goos", n.goos)
		return
	}
	if err := n.run(name, args...); err != nil {
		n.logger.Warn("notification delivery failed", "command", name, "err", err)
	}
}

func notifyCommand(goos, title, body string) (string, []string, bool) {
	switch goos {
	case "linux":
		return "notify-send", []string{title, body}, true
	case "darwin":
		script := fmt.Sprintf("display notification %q with title %q", body, title)
		return "osascript", []string{"-e", script}, true
	default:
		return "", nil, false
	}
}
