package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"newsfeed/internal/config"
	"newsfeed/internal/tui"
	"newsfeed/pkg/news"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run returns the process exit code so deferred cleanup always happens.
func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("viewer", flag.ContinueOnError)
	flags.SetOutput(stderr)
	refreshCron := flags.String("refresh-cron", "", "optional cron spec for automatic refresh, e.g. \"@every 5m\"")
	logFile := flags.String("log-file", "newsfeed-viewer.log", "file for viewer logs; empty disables logging")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	var out io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(stderr, "error opening log file: %v\n", err)
			return 1
		}
		defer f.Close()
		out = f
	}

	logger := slog.New(slog.NewJSONHandler(out, nil))
	slog.SetDefault(logger)

	client := news.NewClient(config.BaseURLFor(runtime.GOOS))
	logger.Info("viewer starting", "endpoint", client.Endpoint(), "platform", runtime.GOOS)

	p := tea.NewProgram(tui.New(client, logger), tea.WithAltScreen())

	if *refreshCron != "" {
		scheduler, err := tui.ScheduleRefresh(*refreshCron, p.Send)
		if err != nil {
			logger.Error("error scheduling refresh", "error", err)
			fmt.Fprintf(stderr, "error scheduling refresh: %v\n", err)
			return 1
		}
		defer scheduler.Stop()
	}

	if _, err := p.Run(); err != nil {
		logger.Error("error running viewer", "error", err)
		fmt.Fprintf(stderr, "error running viewer: %v\n", err)
		return 1
	}
	return 0
}
