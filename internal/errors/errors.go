package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/gantt/internal/calendar"
	"github.com/julianstephens/gantt/internal/logger"
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Hint returns a follow-up suggestion for errors the user can fix from the
// command line, or "" when there is nothing useful to add.
func Hint(err error) string {
	var rangeErr *calendar.InvalidRangeError
	switch {
	case stderrors.As(err, &rangeErr):
		return "Hint: set start_month and end_month in chart.yaml (or GANTT_START_MONTH / GANTT_END_MONTH) so the end is not before the start."
	case stderrors.Is(err, os.ErrNotExist):
		return "Hint: run 'gantt init' to create the database and chart config."
	}
	return ""
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		if hint := Hint(err); hint != "" {
			fmt.Fprintln(os.Stderr, hint)
		}
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
