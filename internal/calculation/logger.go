package calculation

import (
	"io"
	"log"
)

// Logger is a minimal logging interface for the calculation engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// WriterLogger writes leveled lines to an io.Writer. Debug lines are dropped
// unless Verbose is set.
type WriterLogger struct {
	Verbose bool
	l       *log.Logger
}

// NewWriterLogger creates a WriterLogger on w.
func NewWriterLogger(w io.Writer, verbose bool) *WriterLogger {
	return &WriterLogger{Verbose: verbose, l: log.New(w, "", 0)}
}

func (wl *WriterLogger) Debugf(format string, args ...any) {
	if wl.Verbose {
		wl.l.Printf("DEBUG "+format, args...)
	}
}

func (wl *WriterLogger) Infof(format string, args ...any)  { wl.l.Printf("INFO  "+format, args...) }
func (wl *WriterLogger) Warnf(format string, args ...any)  { wl.l.Printf("WARN  "+format, args...) }
func (wl *WriterLogger) Errorf(format string, args ...any) { wl.l.Printf("ERROR "+format, args...) }
