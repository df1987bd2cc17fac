package event

import (
	"iter"

	"github.com/google/uuid"
)

// DefaultKind is the kind label of events created without WithKind.
const DefaultKind = "Event"

// Event is an atomic, named occurrence exchanged by the synchronization engine.
//
// An Event is its own singleton set: it implements EventSet and Requestable
// with size 1 and itself as the only member. Equality is pointer identity;
// the name is a label only.
type Event struct {
	id   string
	kind string
	name string
}

// Compile-time interface checks.
var (
	_ Requestable = (*Event)(nil)
	_ EventSet    = (*Event)(nil)
	_ Matcher     = (*Event)(nil)
)

// Option configures event creation.
type Option func(*eventConfig)

type eventConfig struct {
	id   string
	kind string
}

// WithKind sets the declared kind label (default: DefaultKind).
// An event created with an empty name is named after its kind.
func WithKind(kind string) Option {
	return func(cfg *eventConfig) {
		cfg.kind = kind
	}
}

// WithID sets a specific correlation ID (default: auto-generated UUID).
func WithID(id string) Option {
	return func(cfg *eventConfig) {
		cfg.id = id
	}
}

// New creates an event with the given name.
// If name is empty the event is named after its kind.
func New(name string, opts ...Option) *Event {
	cfg := &eventConfig{
		kind: DefaultKind,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.id == "" {
		cfg.id = uuid.New().String()
	}
	if cfg.kind == "" {
		cfg.kind = DefaultKind
	}
	if name == "" {
		name = cfg.kind
	}

	return &Event{
		id:   cfg.id,
		kind: cfg.kind,
		name: name,
	}
}

// ID returns the correlation ID used in logs, traces and persisted runs.
// It plays no part in equality.
func (e *Event) ID() string {
	return e.id
}

// Kind returns the declared kind label.
func (e *Event) Kind() string {
	return e.kind
}

// Name returns the current identity label.
func (e *Event) Name() string {
	return e.name
}

// SetName replaces the identity label. Uniqueness is not checked.
func (e *Event) SetName(name string) {
	e.name = name
}

// String returns the event name.
func (e *Event) String() string {
	if e == nil {
		return "<nil>"
	}
	return e.name
}

// Contains reports whether candidate is this very event.
func (e *Event) Contains(candidate any) bool {
	other, ok := candidate.(*Event)
	return ok && e != nil && other == e
}

// Size always returns 1.
func (e *Event) Size() int {
	return 1
}

// ElementAt returns the event itself for index 0.
func (e *Event) ElementAt(index int) (*Event, error) {
	if index != 0 {
		return nil, &IndexError{Index: index, Size: 1}
	}
	return e, nil
}

// RequestedEvent returns the event itself. It never fails.
func (e *Event) RequestedEvent() (*Event, error) {
	return e, nil
}

// EventList returns a new single-element slice holding the event.
func (e *Event) EventList() []*Event {
	return e.AppendEvents(make([]*Event, 0, 1))
}

// AppendEvents appends the event to dst.
func (e *Event) AppendEvents(dst []*Event) []*Event {
	return append(dst, e)
}

// AddMember always fails: an atomic event is not a growable set.
func (e *Event) AddMember(r Requestable) (bool, error) {
	return false, &MutationError{Target: e, Candidate: r}
}

// IsAtomicEvent always returns true.
func (e *Event) IsAtomicEvent() bool {
	return true
}

// All returns a sequence that yields the event once per range.
func (e *Event) All() iter.Seq[*Event] {
	return func(yield func(*Event) bool) {
		yield(e)
	}
}

// Iterator returns a fresh one-shot iterator over the event.
func (e *Event) Iterator() Iterator {
	return newSingleEventIterator(e)
}
