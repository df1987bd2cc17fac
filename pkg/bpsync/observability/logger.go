// Package observability provides structured logging, metrics and tracing
// for bpsync catalogs and event logs.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
)

// EnrichLogger adds run context to a logger.
// Returns a new logger with run_id and thread fields.
func EnrichLogger(logger *slog.Logger, runID, thread string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("run_id", runID),
		slog.String("thread", thread),
	)
}

// LogEventDeclared logs a new catalog entry.
func LogEventDeclared(logger *slog.Logger, name, kind, id string) {
	if logger == nil {
		return
	}
	logger.Debug("event declared",
		slog.String("event", name),
		slog.String("kind", kind),
		slog.String("event_id", id),
	)
}

// LogGroupDeclared logs a new named event group.
func LogGroupDeclared(logger *slog.Logger, name string, size int) {
	if logger == nil {
		return
	}
	logger.Debug("event group declared",
		slog.String("group", name),
		slog.Int("size", size),
	)
}

// LogEventRecorded logs an event appended to a run's event log.
func LogEventRecorded(logger *slog.Logger, runID, name string, sequence int) {
	if logger == nil {
		return
	}
	logger.Debug("event recorded",
		slog.String("run_id", runID),
		slog.String("event", name),
		slog.Int("sequence", sequence),
	)
}

// LogContractViolation logs a rejected event-set operation.
func LogContractViolation(logger *slog.Logger, op string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("event set contract violation",
		slog.String("operation", op),
		slog.String("kind", ViolationKind(err)),
		slog.String("error", err.Error()),
	)
}

// LogStoreError logs an event log storage failure.
func LogStoreError(logger *slog.Logger, runID, op string, err error) {
	if logger == nil {
		return
	}
	logger.Error("event log store failed",
		slog.String("run_id", runID),
		slog.String("operation", op),
		slog.String("error", err.Error()),
	)
}
