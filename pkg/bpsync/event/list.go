package event

import (
	"fmt"
	"iter"
	"strings"
	"sync"
)

// List is an ordered, growable composite set of requestables.
// Members may be atomic events or other composites; all set operations
// work on the depth-first flattened view.
type List struct {
	mu      sync.RWMutex
	name    string
	members []Requestable
}

var _ Requestable = (*List)(nil)

// structureMu serializes AddMember across all lists so a cycle check and
// the append it guards see the same nesting.
var structureMu sync.Mutex

// NewList creates a composite set holding members in order.
// Nil members are skipped.
func NewList(members ...Requestable) *List {
	l := &List{members: make([]Requestable, 0, len(members))}
	for _, m := range members {
		if m != nil {
			l.members = append(l.members, m)
		}
	}
	return l
}

// NewNamedList creates a composite set with a label used by String.
func NewNamedList(name string, members ...Requestable) *List {
	l := NewList(members...)
	l.name = name
	return l
}

// Name returns the label of the set, or "" if unnamed.
func (l *List) Name() string {
	return l.name
}

// Members returns a copy of the direct members.
func (l *List) Members() []Requestable {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Requestable, len(l.members))
	copy(out, l.members)
	return out
}

// Contains reports whether any member contains candidate.
func (l *List) Contains(candidate any) bool {
	if candidate == nil {
		return false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, m := range l.members {
		if m.Contains(candidate) {
			return true
		}
	}
	return false
}

// Size returns the number of events in the flattened set.
func (l *List) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := 0
	for _, m := range l.members {
		n += m.Size()
	}
	return n
}

// ElementAt returns the event at index in the flattened set.
func (l *List) ElementAt(index int) (*Event, error) {
	events := l.EventList()
	if index < 0 || index >= len(events) {
		return nil, &IndexError{Index: index, Size: len(events)}
	}
	return events[index], nil
}

// RequestedEvent returns the only event of the set.
// Fails with ErrAmbiguousRequest unless the flattened set has exactly one event.
func (l *List) RequestedEvent() (*Event, error) {
	events := l.EventList()
	if len(events) != 1 {
		return nil, fmt.Errorf("%s has %d events: %w", l, len(events), ErrAmbiguousRequest)
	}
	return events[0], nil
}

// EventList returns a new slice holding the flattened set.
func (l *List) EventList() []*Event {
	return l.AppendEvents(nil)
}

// AppendEvents appends every member's events to dst, depth first.
func (l *List) AppendEvents(dst []*Event) []*Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, m := range l.members {
		dst = m.AppendEvents(dst)
	}
	return dst
}

// AddMember appends r to the set.
// Fails with ErrNilMember for nil and ErrInvalidSetMutation when r would
// make the set contain itself.
func (l *List) AddMember(r Requestable) (bool, error) {
	if r == nil {
		return false, ErrNilMember
	}

	structureMu.Lock()
	defer structureMu.Unlock()

	if other, ok := r.(*List); ok && (other == l || other.reaches(l)) {
		return false, fmt.Errorf("add %s to %s would create a cycle: %w", other, l, ErrInvalidSetMutation)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.members = append(l.members, r)
	return true, nil
}

// reaches reports whether target is nested anywhere below l.
// It never locks target itself.
func (l *List) reaches(target *List) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, m := range l.members {
		if inner, ok := m.(*List); ok {
			if inner == target || inner.reaches(target) {
				return true
			}
		}
	}
	return false
}

// IsAtomicEvent always returns false.
func (l *List) IsAtomicEvent() bool {
	return false
}

// All returns a sequence over a snapshot of the flattened set.
// The snapshot is taken when ranging starts.
func (l *List) All() iter.Seq[*Event] {
	return func(yield func(*Event) bool) {
		for _, e := range l.EventList() {
			if !yield(e) {
				return
			}
		}
	}
}

// Iterator returns a one-shot iterator over a snapshot of the flattened set.
func (l *List) Iterator() Iterator {
	return &sliceIterator{events: l.EventList()}
}

// String returns the set name, or its members in braces.
func (l *List) String() string {
	if l.name != "" {
		return l.name
	}
	events := l.EventList()
	names := make([]string, len(events))
	for i, e := range events {
		names[i] = e.String()
	}
	return "{" + strings.Join(names, ", ") + "}"
}

// None is the empty requestable set. It contains nothing and rejects members.
var None Requestable = emptySet{}

type emptySet struct{}

func (emptySet) Contains(any) bool { return false }
func (emptySet) Size() int { return 0 }

func (emptySet) ElementAt(index int) (*Event, error) {
	return nil, &IndexError{Index: index, Size: 0}
}

func (emptySet) RequestedEvent() (*Event, error) {
	return nil, fmt.Errorf("empty set: %w", ErrAmbiguousRequest)
}

func (emptySet) EventList() []*Event { return []*Event{} }
func (emptySet) AppendEvents(dst []*Event) []*Event { return dst }

func (emptySet) AddMember(Requestable) (bool, error) {
	return false, fmt.Errorf("add to empty set: %w", ErrInvalidSetMutation)
}

func (emptySet) IsAtomicEvent() bool { return false }
func (emptySet) All() iter.Seq[*Event] { return func(func(*Event) bool) {} }
func (emptySet) Iterator() Iterator { return &sliceIterator{} }
func (emptySet) String() string { return "{}" }
