package eventlog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/randalmurphal/bpsync/pkg/bpsync/catalog"
	"github.com/randalmurphal/bpsync/pkg/bpsync/event"
	"github.com/randalmurphal/bpsync/pkg/bpsync/observability"
)

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.New().String()
}

// Recorder appends the events fired in one run to a Store.
type Recorder struct {
	store   Store
	runID   string
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithRunID sets the run to record into (default: NewRunID()).
func WithRunID(id string) RecorderOption {
	return func(r *Recorder) {
		if id != "" {
			r.runID = id
		}
	}
}

// WithLogger sets the logger for recorded events and store failures.
func WithLogger(logger *slog.Logger) RecorderOption {
	return func(r *Recorder) {
		r.logger = logger
	}
}

// WithMetrics sets the metrics recorder (default: NoopMetrics).
func WithMetrics(m observability.MetricsRecorder) RecorderOption {
	return func(r *Recorder) {
		if m != nil {
			r.metrics = m
		}
	}
}

// WithSpanManager sets the span manager (default: NoopSpanManager).
func WithSpanManager(s observability.SpanManager) RecorderOption {
	return func(r *Recorder) {
		if s != nil {
			r.spans = s
		}
	}
}

// NewRecorder creates a recorder writing to store.
func NewRecorder(store Store, opts ...RecorderOption) *Recorder {
	r := &Recorder{
		store:   store,
		runID:   NewRunID(),
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = observability.EnrichLogger(r.logger, r.runID, "recorder")
	return r
}

// RunID returns the run this recorder writes to.
func (r *Recorder) RunID() string {
	return r.runID
}

// Record appends e to the run's log and returns the stored entry.
func (r *Recorder) Record(ctx context.Context, e *event.Event) (Entry, error) {
	if e == nil {
		return Entry{}, ErrNilEvent
	}
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}

	ctx, span := r.spans.StartRecordSpan(ctx, r.runID, e.Name())
	entry, err := r.store.Append(r.runID, Entry{
		EventName: e.Name(),
		EventID:   e.ID(),
		Kind:      e.Kind(),
	})
	if err != nil {
		r.spans.EndSpanWithError(span, err)
		observability.LogStoreError(r.logger, r.runID, "append", err)
		return Entry{}, fmt.Errorf("record %s: %w", e, err)
	}

	r.spans.AddSpanEvent(ctx, "event.recorded", attribute.Int("sequence", entry.Sequence))
	r.spans.EndSpanWithError(span, nil)
	observability.LogEventRecorded(r.logger, r.runID, entry.EventName, entry.Sequence)
	r.metrics.RecordEventFired(ctx, entry.EventName)
	return entry, nil
}

// Replay loads runID and resolves each entry by name to its catalog event,
// so the result compares by identity with the events threads hold.
func (r *Recorder) Replay(ctx context.Context, runID string, cat *catalog.Catalog) ([]*event.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	_, span := r.spans.StartReplaySpan(ctx, runID)
	events, err := r.replay(runID, cat)
	r.spans.EndSpanWithError(span, err)
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *Recorder) replay(runID string, cat *catalog.Catalog) ([]*event.Event, error) {
	entries, err := r.store.Load(runID)
	if err != nil {
		observability.LogStoreError(r.logger, runID, "load", err)
		return nil, fmt.Errorf("replay %s: %w", runID, err)
	}

	events := make([]*event.Event, 0, len(entries))
	for _, entry := range entries {
		e, ok := cat.Lookup(entry.EventName)
		if !ok {
			return nil, fmt.Errorf("replay %s at sequence %d: %q: %w",
				runID, entry.Sequence, entry.EventName, catalog.ErrUnknownEvent)
		}
		events = append(events, e)
	}
	return events, nil
}
