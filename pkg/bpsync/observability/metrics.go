package observability

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records bpsync metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordDeclaration records a catalog declaration ("event" or "group").
	RecordDeclaration(ctx context.Context, entry string)

	// RecordViolation records a rejected event-set operation.
	RecordViolation(ctx context.Context, op string, err error)

	// RecordEventFired records an event appended to a run's log.
	RecordEventFired(ctx context.Context, name string)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	declarations metric.Int64Counter
	violations   metric.Int64Counter
	eventsFired  metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("bpsync")

	declarations, err := meter.Int64Counter("bpsync.catalog.declarations",
		metric.WithDescription("Number of catalog declarations"),
	)
	if err != nil {
		return nil, err
	}

	violations, err := meter.Int64Counter("bpsync.event_set.violations",
		metric.WithDescription("Number of rejected event-set operations"),
	)
	if err != nil {
		return nil, err
	}

	eventsFired, err := meter.Int64Counter("bpsync.eventlog.events",
		metric.WithDescription("Number of events recorded to event logs"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		declarations: declarations,
		violations:   violations,
		eventsFired:  eventsFired,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

func (m *otelMetrics) RecordDeclaration(ctx context.Context, entry string) {
	m.declarations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("entry", entry),
	))
}

func (m *otelMetrics) RecordViolation(ctx context.Context, op string, err error) {
	m.violations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("kind", ViolationKind(err)),
	))
}

func (m *otelMetrics) RecordEventFired(ctx context.Context, name string) {
	m.eventsFired.Add(ctx, 1, metric.WithAttributes(
		attribute.String("event", name),
	))
}
