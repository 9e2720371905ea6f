package logger

import (
	"log/slog"
	"os"
)

// New returns the process logger. JSON output keeps log aggregation
// structured; handlers attach request-scoped attributes themselves.
func New() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}
