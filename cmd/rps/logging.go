package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// openLogFile truncates and opens the debug log. The TUI owns the terminal,
// so nothing may log to stderr while it runs.
func openLogFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// setupLogger configures a timestamped logger writing to w
func setupLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "rps",
		Level:           level,
	})
}
