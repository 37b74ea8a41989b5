// Package logger provides the logging abstraction used across the application.
package logger

import (
	"io"
	"log"
	"os"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocks/logger.gen.go -package=mocks

// Logger writes diagnostic messages.
type Logger interface {
	Logf(format string, args ...interface{})
}

type noopLogger struct{}

// NewNoopLogger returns a logger discarding every message.
func NewNoopLogger() Logger {
	return noopLogger{}
}

func (noopLogger) Logf(string, ...interface{}) {}

type verboseLogger struct {
	logger *log.Logger
}

// NewVerboseLogger returns a logger writing to stderr.
func NewVerboseLogger() Logger {
	return NewWriterLogger(os.Stderr)
}

// NewWriterLogger returns a logger writing to w.
func NewWriterLogger(w io.Writer) Logger {
	return &verboseLogger{
		logger: log.New(w, "[issue-state] ", 0),
	}
}

func (l *verboseLogger) Logf(format string, args ...interface{}) {
	l.logger.Printf(format, args...)
}
