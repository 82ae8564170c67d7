package calculation

// Logger receives printf-style progress and skip messages from RunScenarios.
// internal/logging adapts a slog.Logger to it.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything; it is the engine default.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// log returns the configured logger, so a zero CalculationEngine is usable.
func (ce *CalculationEngine) log() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}
