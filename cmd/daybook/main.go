// Daybook is a local planner: scheduled tasks, daily goals, and a journal
// backed by a single SQLite file, with minute-accurate desktop reminders.
package main

import (
	"fmt"
	"os"

	"github.com/sandeepkv93/daybook/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
