package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogLevel is a level name as accepted by --log-level and drills.toml
type LogLevel string

const (
	LevelError LogLevel = "error"
	LevelWarn  LogLevel = "warn"
	LevelInfo  LogLevel = "info"
	LevelDebug LogLevel = "debug"
)

var levels = map[LogLevel]slog.Level{
	LevelError: slog.LevelError,
	LevelWarn:  slog.LevelWarn,
	LevelInfo:  slog.LevelInfo,
	LevelDebug: slog.LevelDebug,
}

var (
	// shared by every handler so SetLevel never rebuilds the logger
	level  = new(slog.LevelVar)
	logger = slog.New(NewHandler(os.Stderr, level))
)

// SetLevel changes the minimum level written
func SetLevel(l LogLevel) error {
	sl, ok := levels[l]
	if !ok {
		return fmt.Errorf("invalid log level: %s", l)
	}
	level.Set(sl)
	return nil
}

// ParseLevel converts a case-insensitive name to a LogLevel
func ParseLevel(s string) (LogLevel, error) {
	l := LogLevel(strings.ToLower(s))
	if _, ok := levels[l]; !ok {
		return "", fmt.Errorf("invalid log level: %s", s)
	}
	return l, nil
}

// SetOutput redirects log records. Stdout carries exercise output, so logs
// default to stderr.
func SetOutput(w io.Writer) {
	logger = slog.New(NewHandler(w, level))
}

func Error(msg string, args ...any) {
	logger.Error(msg, args...)
}

func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}

func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}
