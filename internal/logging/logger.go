// Package logging builds the structured logger shared by the CLI and the web server
// and adapts it to the calculation engine's printf-style Logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Config holds logger configuration
type Config struct {
	Level     slog.Level
	Component string
	Output    io.Writer
	JSON      bool
}

// DefaultConfig returns sensible defaults for logging
func DefaultConfig() Config {
	return Config{
		Level:     slog.LevelInfo,
		Component: "growth",
		Output:    os.Stderr,
	}
}

// New creates a slog logger tagged with the configured component
func New(config Config) *slog.Logger {
	out := config.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: config.Level}

	var handler slog.Handler
	if config.JSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	logger := slog.New(handler)
	if config.Component != "" {
		logger = logger.With("component", config.Component)
	}
	return logger
}

// EngineLogger adapts a slog.Logger to calculation.Logger
type EngineLogger struct {
	logger *slog.Logger
}

// NewEngineLogger wraps l; a nil logger falls back to slog.Default()
func NewEngineLogger(l *slog.Logger) *EngineLogger {
	if l == nil {
		l = slog.Default()
	}
	return &EngineLogger{logger: l.With("component", "calculation")}
}

func (e *EngineLogger) Debugf(format string, args ...any) { e.logger.Debug(fmt.Sprintf(format, args...)) }
func (e *EngineLogger) Infof(format string, args ...any)  { e.logger.Info(fmt.Sprintf(format, args...)) }
func (e *EngineLogger) Warnf(format string, args ...any)  { e.logger.Warn(fmt.Sprintf(format, args...)) }
func (e *EngineLogger) Errorf(format string, args ...any) { e.logger.Error(fmt.Sprintf(format, args...)) }
