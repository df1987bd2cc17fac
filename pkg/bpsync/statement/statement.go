// Package statement holds the per-round declaration of a behavior thread:
// what it requests, what it waits for, and what it blocks.
//
// A Statement is the data the synchronization engine consumes. It answers
// membership questions about a candidate event; picking the event to fire
// across many statements is the engine's job and is not done here.
//
//	st := statement.New(
//	    statement.WithLabel("ViscosityLimiter"),
//	    statement.WithWaitFor(additions),
//	    statement.WithBlock(addDry),
//	)
//	st.Blocks(addDry)   // true
//	st.WaitsFor(addWet) // true
package statement

import (
	"fmt"
	"strings"

	"github.com/randalmurphal/bpsync/pkg/bpsync/event"
)

// Statement is an immutable request / wait-for / block triple.
type Statement struct {
	label   string
	request event.Requestable
	waitFor event.Matcher
	block   event.Matcher
	waits   bool
	blocks  bool
}

// Option configures a Statement.
type Option func(*Statement)

// WithLabel names the thread that made the statement.
func WithLabel(label string) Option {
	return func(s *Statement) {
		s.label = label
	}
}

// WithRequest sets the requested events.
// A single requestable is used as is; several are combined into a List.
func WithRequest(requests ...event.Requestable) Option {
	return func(s *Statement) {
		switch len(requests) {
		case 0:
			s.request = event.None
		case 1:
			if requests[0] != nil {
				s.request = requests[0]
			}
		default:
			s.request = event.NewList(requests...)
		}
	}
}

// WithWaitFor sets the events the thread waits for without requesting them.
func WithWaitFor(m event.Matcher) Option {
	return func(s *Statement) {
		if m != nil {
			s.waitFor = m
			s.waits = true
		}
	}
}

// WithBlock sets the events the thread forbids this round.
func WithBlock(m event.Matcher) Option {
	return func(s *Statement) {
		if m != nil {
			s.block = m
			s.blocks = true
		}
	}
}

// New creates a statement. Unset positions request nothing, wait for
// nothing and block nothing.
func New(opts ...Option) *Statement {
	s := &Statement{
		request: event.None,
		waitFor: event.NoEvents,
		block:   event.NoEvents,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Label returns the thread label, or "" if unset.
func (s *Statement) Label() string {
	return s.label
}

// Request returns the requested set.
func (s *Statement) Request() event.Requestable {
	return s.request
}

// WaitFor returns the wait-for set.
func (s *Statement) WaitFor() event.Matcher {
	return s.waitFor
}

// Block returns the block set.
func (s *Statement) Block() event.Matcher {
	return s.block
}

// Requests reports whether e is in the request set.
func (s *Statement) Requests(e *event.Event) bool {
	return s.request.Contains(e)
}

// WaitsFor reports whether e is in the wait-for set.
func (s *Statement) WaitsFor(e *event.Event) bool {
	return s.waitFor.Contains(e)
}

// Blocks reports whether e is in the block set.
func (s *Statement) Blocks(e *event.Event) bool {
	return s.block.Contains(e)
}

// Interested reports whether the thread resumes if e fires,
// that is e is requested or waited for.
func (s *Statement) Interested(e *event.Event) bool {
	return s.Requests(e) || s.WaitsFor(e)
}

// Requested returns the flattened request set.
func (s *Statement) Requested() []*event.Event {
	return s.request.EventList()
}

// Enabled returns the requested events that the statement does not block
// itself, in request order. Other threads may still block them.
func (s *Statement) Enabled() []*event.Event {
	var enabled []*event.Event
	for e := range s.request.All() {
		if !s.block.Contains(e) {
			enabled = append(enabled, e)
		}
	}
	return enabled
}

// IsIdle reports whether the statement neither requests nor waits for anything.
// Such a thread can never be resumed.
func (s *Statement) IsIdle() bool {
	return s.request.Size() == 0 && !s.waits
}

// String renders the statement for logs.
func (s *Statement) String() string {
	var b strings.Builder
	if s.label != "" {
		b.WriteString(s.label)
		b.WriteString(": ")
	}
	fmt.Fprintf(&b, "request=%s", formatEvents(s.Requested()))
	if s.waits {
		fmt.Fprintf(&b, " waitFor=%s", formatMatcher(s.waitFor))
	}
	if s.blocks && !isEmpty(s.block) {
		fmt.Fprintf(&b, " block=%s", formatMatcher(s.block))
	}
	return b.String()
}

// formatMatcher renders named sets by name and enumerable sets by their
// events. Predicates have no finite rendering.
func formatMatcher(m event.Matcher) string {
	switch v := m.(type) {
	case fmt.Stringer:
		return v.String()
	case event.EventSet:
		return formatEvents(v.EventList())
	default:
		return "<predicate>"
	}
}

func isEmpty(m event.Matcher) bool {
	set, ok := m.(event.EventSet)
	return ok && set.Size() == 0
}

func formatEvents(events []*event.Event) string {
	names := make([]string, len(events))
	for i, e := range events {
		names[i] = e.String()
	}
	return "[" + strings.Join(names, " ") + "]"
}
