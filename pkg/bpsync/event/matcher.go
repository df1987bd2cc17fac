package event

// Predicate sets for wait-for and block positions. They answer containment
// only; use List when the set must be enumerated.

var (
	// AllEvents contains every non-nil event.
	AllEvents Matcher = MatchFunc(func(*Event) bool { return true })

	// NoEvents contains nothing.
	NoEvents Matcher = MatchFunc(func(*Event) bool { return false })
)

// MatchFunc adapts a predicate over events to the Matcher interface.
type MatchFunc func(e *Event) bool

// Contains reports whether candidate is a non-nil event accepted by f.
func (f MatchFunc) Contains(candidate any) bool {
	e, ok := candidate.(*Event)
	if !ok || e == nil {
		return false
	}
	return f(e)
}

// KindOf returns the set of all events with the given declared kind.
func KindOf(kind string) Matcher {
	return MatchFunc(func(e *Event) bool {
		return e.Kind() == kind
	})
}

// AnyOf returns the union of the given sets. Nil sets are ignored.
func AnyOf(sets ...Matcher) Matcher {
	sets = compact(sets)
	return MatchFunc(func(e *Event) bool {
		for _, s := range sets {
			if s.Contains(e) {
				return true
			}
		}
		return false
	})
}

// AllOf returns the intersection of the given sets. Nil sets are ignored;
// the intersection of no sets contains every event.
func AllOf(sets ...Matcher) Matcher {
	sets = compact(sets)
	return MatchFunc(func(e *Event) bool {
		for _, s := range sets {
			if !s.Contains(e) {
				return false
			}
		}
		return true
	})
}

// Not returns the complement of s. A nil s is treated as NoEvents.
func Not(s Matcher) Matcher {
	if s == nil {
		return AllEvents
	}
	return MatchFunc(func(e *Event) bool {
		return !s.Contains(e)
	})
}

func compact(sets []Matcher) []Matcher {
	out := make([]Matcher, 0, len(sets))
	for _, s := range sets {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}
