package errors

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapHandler is an ErrorHandler that emits structured zap log entries.
type ZapHandler struct {
	logger  *zap.Logger
	verbose bool
}

// NewZapHandler wraps logger. A nil logger yields a no-op handler.
func NewZapHandler(logger *zap.Logger, verbose bool) *ZapHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapHandler{logger: logger.Named("interop"), verbose: verbose}
}

// NewProductionLogger builds a JSON logger from zap's production preset.
// debug lowers the level to zapcore.DebugLevel.
func NewProductionLogger(debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}
	return logger, nil
}

// Logger returns the underlying logger.
func (h *ZapHandler) Logger() *zap.Logger {
	return h.logger
}

// HandleError logs an InteropError.
func (h *ZapHandler) HandleError(err *InteropError) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Stringer("kind", err.Kind),
		zap.Error(err.Err),
		zap.Time("at", err.Timestamp),
	}
	if err.Field != "" {
		fields = append(fields, zap.String("field", err.Field))
	}
	if h.verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	h.logger.Warn("interop error", fields...)
}

// HandlePanic logs a PanicError.
func (h *ZapHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Any("value", err.Value),
		zap.Time("at", err.Timestamp),
	}
	if h.verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	h.logger.Error("interop panic", fields...)
}
