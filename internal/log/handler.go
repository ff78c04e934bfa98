package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Handler is a slog.Handler that writes one plain line per record
type Handler struct {
	level  slog.Leveler
	mu     *sync.Mutex
	attrs  []slog.Attr
	output io.Writer
}

// NewHandler creates a new handler for formatted output
func NewHandler(output io.Writer, level slog.Leveler) *Handler {
	return &Handler{
		level:  level,
		mu:     &sync.Mutex{},
		output: output,
	}
}

// Enabled returns whether the handler handles records at the given level
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats the record as "[LEVEL] message key=value ..."
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var levelStr string
	switch {
	case r.Level >= slog.LevelError:
		levelStr = "[ERROR] "
	case r.Level >= slog.LevelWarn:
		levelStr = "[WARN] "
	case r.Level >= slog.LevelInfo:
		levelStr = "" // No prefix for INFO
	default:
		levelStr = "[DEBUG] "
	}

	var b strings.Builder
	b.WriteString(levelStr)
	b.WriteString(r.Message)

	writeAttr := func(a slog.Attr) bool {
		if a.Key == slog.TimeKey {
			return true
		}
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value.Any())
		return true
	}
	for _, a := range h.attrs {
		writeAttr(a)
	}
	r.Attrs(writeAttr)
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.output, b.String())
	return err
}

// WithAttrs returns a new Handler with the given attributes
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &Handler{
		level:  h.level,
		mu:     h.mu,
		attrs:  merged,
		output: h.output,
	}
}

// WithGroup returns a new Handler with the given group name
func (h *Handler) WithGroup(name string) slog.Handler {
	// Groups are flattened
	return h
}
