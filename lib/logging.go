package allspaceslib

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger only reports warnings and errors unless verbose is set, so a
// successful run prints nothing.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "wallpaper",
		ReportTimestamp: false,
	})
}

var discard = log.New(io.Discard)

func orDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return discard
	}
	return l
}
