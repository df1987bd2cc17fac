package event

// SingleEventIterator views one event as a set of size one.
// It yields the event once and is then permanently exhausted.
type SingleEventIterator struct {
	e *Event // nil once exhausted
}

var _ Iterator = (*SingleEventIterator)(nil)

func newSingleEventIterator(e *Event) *SingleEventIterator {
	return &SingleEventIterator{e: e}
}

// HasNext reports whether the event has not been yielded yet.
func (it *SingleEventIterator) HasNext() bool {
	return it.e != nil
}

// Next returns the wrapped event on the first call and nil, false afterwards.
func (it *SingleEventIterator) Next() (*Event, bool) {
	if it.e == nil {
		return nil, false
	}
	e := it.e
	it.e = nil
	return e, true
}

// Remove always fails with ErrUnsupportedOperation.
func (it *SingleEventIterator) Remove() error {
	return ErrUnsupportedOperation
}

// sliceIterator iterates over a flattened snapshot of a composite set.
type sliceIterator struct {
	events []*Event
	pos    int
}

func (it *sliceIterator) HasNext() bool {
	return it.pos < len(it.events)
}

func (it *sliceIterator) Next() (*Event, bool) {
	if it.pos >= len(it.events) {
		return nil, false
	}
	e := it.events[it.pos]
	it.pos++
	return e, true
}

func (it *sliceIterator) Remove() error {
	return ErrUnsupportedOperation
}
