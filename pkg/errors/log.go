package errors

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// LogHandler is an ErrorHandler that writes through a zerolog logger.
// The zero value logs to stderr with a console writer.
type LogHandler struct {
	// Logger receives the records. When nil, a stderr console logger is used.
	Logger *zerolog.Logger
	// Verbose enables detailed output including stack traces.
	Verbose bool

	once     sync.Once
	fallback zerolog.Logger
}

// NewConsoleLogger returns a console logger at the given level, in the
// format the engine's tools use.
func NewConsoleLogger(level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func (h *LogHandler) logger() *zerolog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	h.once.Do(func() {
		h.fallback = NewConsoleLogger(zerolog.InfoLevel)
	})
	return &h.fallback
}

// HandleError logs an EngineError.
func (h *LogHandler) HandleError(err *EngineError) {
	if err == nil {
		return
	}
	ev := h.logger().Error().Str("op", err.Op).Str("kind", err.Kind.String()).Err(err.Err)
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("engine error")
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	ev := h.logger().Error().Str("op", err.Op).Interface("value", err.Value)
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("recovered panic")
}

// HandleInvariant logs an InvariantError.
func (h *LogHandler) HandleInvariant(err *InvariantError) {
	if err == nil {
		return
	}
	ev := h.logger().Error().Str("op", err.Op).Str("violation", err.Message)
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("invariant violated")
}
