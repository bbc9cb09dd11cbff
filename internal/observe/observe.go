// Package observe is the sink for anomalous-but-non-fatal conditions:
// permission mismatches, unexpected object shapes, and similar events worth
// surfacing without altering control flow.
package observe

import (
	"context"
	"log/slog"
)

// Sink accepts fire-and-forget capture calls. Implementations must never
// block the caller or return control-flow-relevant state.
type Sink interface {
	CaptureMessage(ctx context.Context, message string, attrs ...slog.Attr)
}

// LogSink reports captured messages through structured logging.
type LogSink struct {
	log *slog.Logger
}

// NewLogSink creates a Sink backed by the given logger.
func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log.With("channel", "capture")}
}

func (s *LogSink) CaptureMessage(ctx context.Context, message string, attrs ...slog.Attr) {
	s.log.LogAttrs(ctx, slog.LevelWarn, message, attrs...)
}

// Nop discards every capture. Useful in tests.
type Nop struct{}

func (Nop) CaptureMessage(context.Context, string, ...slog.Attr) {}
