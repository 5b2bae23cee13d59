package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rpgo/carlease-calculator/internal/calculation"
)

// slogLogger adapts log/slog to the engine's printf-style Logger.
type slogLogger struct {
	l *slog.Logger
}

var _ calculation.Logger = slogLogger{}

func newLogger(w io.Writer, level string) (slogLogger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slogLogger{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	return slogLogger{l: slog.New(h)}, nil
}

func (s slogLogger) Debugf(format string, args ...any) { s.l.Debug(fmt.Sprintf(format, args...)) }
func (s slogLogger) Infof(format string, args ...any)  { s.l.Info(fmt.Sprintf(format, args...)) }
func (s slogLogger) Warnf(format string, args ...any)  { s.l.Warn(fmt.Sprintf(format, args...)) }
func (s slogLogger) Errorf(format string, args ...any) { s.l.Error(fmt.Sprintf(format, args...)) }
