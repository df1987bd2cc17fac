package event

import (
	"errors"
	"fmt"
)

// Sentinel errors for event-set contract violations.
var (
	// ErrOutOfRange indicates indexed access outside the set.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidSetMutation indicates an AddMember call the set cannot accept:
	// any call on an atomic event or None, or one that would create a cycle.
	ErrInvalidSetMutation = errors.New("invalid set mutation")

	// ErrUnsupportedOperation indicates removal through an event iterator.
	ErrUnsupportedOperation = errors.New("operation not supported")

	// ErrAmbiguousRequest indicates a set that does not request exactly one event.
	ErrAmbiguousRequest = errors.New("set does not request exactly one event")

	// ErrNilMember indicates a nil member passed to a composite set.
	ErrNilMember = errors.New("member cannot be nil")
)

// IndexError provides context for an out-of-range ElementAt call.
type IndexError struct {
	// Index is the requested index.
	Index int
	// Size is the size of the set at the time of the call.
	Size int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for set of size %d", e.Index, e.Size)
}

// Unwrap returns ErrOutOfRange for errors.Is support.
func (e *IndexError) Unwrap() error {
	return ErrOutOfRange
}

// MutationError describes a rejected AddMember call.
type MutationError struct {
	// Target is the event that was treated as a growable set.
	Target *Event
	// Candidate is the value the caller tried to add.
	Candidate Requestable
}

// Error implements the error interface.
func (e *MutationError) Error() string {
	return fmt.Sprintf("add %s to event %s: %v", describe(e.Candidate), e.Target, ErrInvalidSetMutation)
}

// Unwrap returns ErrInvalidSetMutation for errors.Is support.
func (e *MutationError) Unwrap() error {
	return ErrInvalidSetMutation
}

func describe(r Requestable) string {
	if r == nil {
		return "<nil>"
	}
	if s, ok := r.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", r)
}
