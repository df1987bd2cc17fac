// Package catalog declares the named events and event groups of a
// behavioral program.
//
// Events compare by identity, so threads that refer to "the same" event must
// share one instance. A Catalog hands out exactly one *event.Event per
// declared name:
//
//	cat := catalog.New(catalog.WithLogger(logger))
//	tick := cat.MustDeclare("Tick")
//	again, _ := cat.Lookup("Tick") // again == tick
//
// Groups are named composite sets built from declared names:
//
//	additions, err := cat.Group("additions", "AddHot", "AddCold")
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/randalmurphal/bpsync/pkg/bpsync/event"
	"github.com/randalmurphal/bpsync/pkg/bpsync/observability"
)

// Sentinel errors for catalog operations.
var (
	// ErrEmptyName indicates a group declared without a name.
	ErrEmptyName = errors.New("name is required")

	// ErrDuplicateName indicates a name that is already declared.
	ErrDuplicateName = errors.New("name already declared")

	// ErrUnknownEvent indicates a reference to an undeclared name.
	ErrUnknownEvent = errors.New("unknown event")

	// ErrInvalidDeclaration indicates a malformed declaration in a config document.
	ErrInvalidDeclaration = errors.New("invalid declaration")
)

// Catalog maps names to shared event and group instances.
// It is safe for concurrent use.
type Catalog struct {
	mu     sync.RWMutex
	events map[string]*event.Event
	groups map[string]*event.List

	logger  *slog.Logger
	metrics observability.MetricsRecorder
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger for declarations and violations.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// WithMetrics sets the metrics recorder (default: NoopMetrics).
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(c *Catalog) {
		if m != nil {
			c.metrics = m
		}
	}
}

// New creates an empty catalog.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		events:  make(map[string]*event.Event),
		groups:  make(map[string]*event.List),
		metrics: observability.NoopMetrics{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Declare creates and registers an event.
// The event is keyed by its resulting name, so an unnamed declaration with
// event.WithKind is registered under the kind label.
func (c *Catalog) Declare(name string, opts ...event.Option) (*event.Event, error) {
	e := event.New(name, opts...)
	key := e.Name()

	c.mu.Lock()
	if c.taken(key) {
		c.mu.Unlock()
		return nil, fmt.Errorf("declare event %q: %w", key, ErrDuplicateName)
	}
	c.events[key] = e
	c.mu.Unlock()

	observability.LogEventDeclared(c.logger, key, e.Kind(), e.ID())
	c.metrics.RecordDeclaration(context.Background(), "event")
	return e, nil
}

// MustDeclare is like Declare but panics on error.
func (c *Catalog) MustDeclare(name string, opts ...event.Option) *event.Event {
	e, err := c.Declare(name, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to declare event: %v", err))
	}
	return e
}

// Group registers a named composite set of previously declared events or
// groups, in the given order.
func (c *Catalog) Group(name string, members ...string) (*event.List, error) {
	if name == "" {
		return nil, fmt.Errorf("declare group: %w", ErrEmptyName)
	}

	list := event.NewNamedList(name)
	for _, member := range members {
		r, ok := c.Resolve(member)
		if !ok {
			return nil, fmt.Errorf("group %q member %q: %w", name, member, ErrUnknownEvent)
		}
		if _, err := list.AddMember(r); err != nil {
			c.violation("add_member", err)
			return nil, fmt.Errorf("group %q: %w", name, err)
		}
	}

	c.mu.Lock()
	if c.taken(name) {
		c.mu.Unlock()
		return nil, fmt.Errorf("declare group %q: %w", name, ErrDuplicateName)
	}
	c.groups[name] = list
	c.mu.Unlock()

	observability.LogGroupDeclared(c.logger, name, list.Size())
	c.metrics.RecordDeclaration(context.Background(), "group")
	return list, nil
}

// Extend appends declared events or groups to an existing group.
// Members that would make the group contain itself are rejected and nothing
// after them is added.
func (c *Catalog) Extend(group string, members ...string) error {
	list, ok := c.LookupGroup(group)
	if !ok {
		return fmt.Errorf("extend group %q: %w", group, ErrUnknownEvent)
	}

	for _, member := range members {
		r, ok := c.Resolve(member)
		if !ok {
			return fmt.Errorf("group %q member %q: %w", group, member, ErrUnknownEvent)
		}
		if _, err := list.AddMember(r); err != nil {
			c.violation("add_member", err)
			return fmt.Errorf("extend group %q: %w", group, err)
		}
	}
	return nil
}

func (c *Catalog) violation(op string, err error) {
	observability.LogContractViolation(c.logger, op, err)
	c.metrics.RecordViolation(context.Background(), op, err)
}

// taken reports whether name is used by an event or a group.
// Caller must hold c.mu.
func (c *Catalog) taken(name string) bool {
	_, isEvent := c.events[name]
	_, isGroup := c.groups[name]
	return isEvent || isGroup
}

// Lookup returns the event declared under name.
func (c *Catalog) Lookup(name string) (*event.Event, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.events[name]
	return e, ok
}

// LookupGroup returns the group declared under name.
func (c *Catalog) LookupGroup(name string) (*event.List, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	g, ok := c.groups[name]
	return g, ok
}

// Resolve returns the event or group declared under name.
func (c *Catalog) Resolve(name string) (event.Requestable, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if e, ok := c.events[name]; ok {
		return e, true
	}
	if g, ok := c.groups[name]; ok {
		return g, true
	}
	return nil, false
}

// Has returns true if name is declared as an event or a group.
func (c *Catalog) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.taken(name)
}

// Len returns the number of declared events.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.events)
}

// Names returns the declared event names, sorted.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sortedKeys(c.events)
}

// GroupNames returns the declared group names, sorted.
func (c *Catalog) GroupNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sortedKeys(c.groups)
}

// Range calls fn for each declared event in name order until fn returns false.
func (c *Catalog) Range(fn func(*event.Event) bool) {
	c.mu.RLock()
	names := sortedKeys(c.events)
	snapshot := make([]*event.Event, len(names))
	for i, n := range names {
		snapshot[i] = c.events[n]
	}
	c.mu.RUnlock()

	for _, e := range snapshot {
		if !fn(e) {
			return
		}
	}
}

// All returns every declared event as one composite set, in name order.
func (c *Catalog) All() *event.List {
	list := event.NewList()
	c.Range(func(e *event.Event) bool {
		_, _ = list.AddMember(e)
		return true
	})
	return list
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
