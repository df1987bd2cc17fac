package event

import "iter"

// Matcher is the membership-only view of a set of events.
// Wait-for and block positions of a sync statement only need containment.
type Matcher interface {
	// Contains reports whether candidate is a member of the set.
	// A nil candidate is never a member.
	Contains(candidate any) bool
}

// EventSet is an enumerable set of events.
// Both atomic events and composite sets implement it, so synchronization
// code never special-cases the atomic case.
type EventSet interface {
	Matcher

	// Size returns the number of events in the flattened set.
	Size() int

	// ElementAt returns the event at index in the flattened set.
	// Returns an error wrapping ErrOutOfRange for an invalid index.
	ElementAt(index int) (*Event, error)

	// All returns a lazy sequence over the flattened set.
	// Each range over the returned sequence starts from the beginning.
	All() iter.Seq[*Event]

	// Iterator returns a fresh one-shot iterator over the flattened set.
	Iterator() Iterator

	// EventList returns a new slice holding the flattened set.
	EventList() []*Event

	// AppendEvents appends the flattened set to dst and returns the result.
	// Composites call this on their members to flatten recursively.
	AppendEvents(dst []*Event) []*Event

	// AddMember adds r to the set.
	// Atomic events reject this with an error wrapping ErrInvalidSetMutation.
	AddMember(r Requestable) (bool, error)

	// IsAtomicEvent reports whether the set is a single atomic event.
	IsAtomicEvent() bool
}

// Requestable is an EventSet that can be used in a request position.
type Requestable interface {
	EventSet

	// RequestedEvent returns the single event this value requests.
	RequestedEvent() (*Event, error)
}

// Iterator is a one-shot, forward-only iteration over events.
type Iterator interface {
	// Next returns the next event and true, or nil and false when exhausted.
	Next() (*Event, bool)

	// HasNext reports whether Next would return an event.
	HasNext() bool

	// Remove removes the current element. Event views do not support it.
	Remove() error
}
