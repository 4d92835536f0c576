package service

import (
	"fmt"
	"io"
)

// Logger is the minimal logging surface the orchestration layer needs.
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// NewLogger returns a Logger writing leveled lines to out.
func NewLogger(out io.Writer) Logger {
	return &writerLogger{out: out}
}

type writerLogger struct {
	out io.Writer
}

func (l *writerLogger) Info(msg string)  { l.print("INFO", msg) }
func (l *writerLogger) Warn(msg string)  { l.print("WARN", msg) }
func (l *writerLogger) Error(msg string) { l.print("ERROR", msg) }

func (l *writerLogger) print(level, msg string) {
	fmt.Fprintf(l.out, "[%s] %s\n", level, msg)
}
