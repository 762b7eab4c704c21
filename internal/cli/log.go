package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// logSink is the slice of *log.Logger the commands actually use.
type logSink interface {
	Info(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

// newLogger creates the stderr diagnostics logger. Verbose selects debug
// level; timestamps use a compact wall-clock format.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
