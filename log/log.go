package log

import (
	"log"
)

// Logger is the interface used to surface non-fatal compile diagnostics,
// such as duplicate declaration warnings. It is settable via blossom.New.
type Logger interface {
	Warnf(format string, args ...interface{})
}

// LoggerFunc is a function type that implements the Logger interface.
type LoggerFunc func(format string, args ...interface{})

// Warnf calls the LoggerFunc with the given format and arguments.
func (f LoggerFunc) Warnf(format string, args ...interface{}) {
	f(format, args...)
}

// DefaultLogger writes diagnostics to the standard logger.
type DefaultLogger struct{}

// Warnf logs a compile diagnostic.
func (l *DefaultLogger) Warnf(format string, args ...interface{}) {
	log.Printf("blossom: "+format, args...)
}
