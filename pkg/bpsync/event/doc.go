// Package event provides the event and event-set primitives that
// behavioral-programming participants use to declare what they request,
// wait for, and block.
//
// # Overview
//
// The central idea is that a single atomic event can be used anywhere a set
// of events is expected:
//
//   - Event is an immutable, named occurrence compared by identity
//   - EventSet is the enumerable set contract (size, containment, index, iteration)
//   - Requestable is an EventSet that can be asked for the one event it requests
//   - Matcher is the membership-only view used for wait-for and block positions
//
// An *Event implements all three as a singleton set of itself. List is the
// composite variant: an ordered, growable collection of requestables that
// flattens through nested members without knowing whether they are atomic.
//
// # Identity
//
// Events are compared by pointer identity, never by name. Two events created
// with the same name are distinct:
//
//	a := event.New("Tick")
//	b := event.New("Tick")
//	a.Contains(a) // true
//	a.Contains(b) // false
//
// Use the catalog package when participants need to share one instance per
// name.
//
// # Singleton View
//
//	e := event.New("Tick")
//	e.Size()          // 1
//	e.ElementAt(0)    // e, nil
//	e.ElementAt(1)    // nil, *IndexError (errors.Is ErrOutOfRange)
//	e.EventList()     // []*Event{e}
//	e.AddMember(f)    // false, *MutationError (errors.Is ErrInvalidSetMutation)
//
//	for ev := range e.All() {
//	    // runs exactly once, and again on every new range
//	}
//
//	it := e.Iterator()
//	it.Next()   // e, true
//	it.Next()   // nil, false
//	it.Remove() // ErrUnsupportedOperation
//
// # Matchers
//
// Wait-for and block positions only need containment, so they accept any
// Matcher, including predicate sets that cannot be enumerated:
//
//	block := event.AnyOf(addDry, event.KindOf("Viscosity"))
//	block.Contains(addDry) // true
//
// # Thread Safety
//
// Event is safe for concurrent reads. SetName must not race with readers;
// names are expected to be set once at construction. List guards its members
// with a RWMutex.
package event
