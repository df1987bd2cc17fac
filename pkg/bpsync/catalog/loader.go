package catalog

import (
	"fmt"

	"github.com/randalmurphal/bpsync/pkg/bpsync/config"
	"github.com/randalmurphal/bpsync/pkg/bpsync/event"
)

// LoadConfig declares the events and groups described by cfg.
//
// The document has two optional keys:
//
//	events:
//	  - Tick                  # name only, default kind
//	  - name: AddHot          # explicit kind
//	    kind: Addition
//	  - kind: AddCold         # unnamed, named after its kind
//	groups:
//	  additions: [AddHot, AddCold]
//	  all: [additions, Tick]  # groups may reference groups
//
// Groups are declared once all their members exist, so they may appear in
// any order. Loading stops at the first error; declarations made before it
// are kept.
//
// Two top-level settings control loading:
//
//	strict: false     # reuse names already in the catalog (default true)
//	max_events: 64    # cap on declared events after loading (default 0, no cap)
//
// With strict off, several documents can be loaded into one catalog and an
// event or group they share is declared once.
func (c *Catalog) LoadConfig(cfg config.Config) error {
	strict := cfg.Bool("strict", true)
	maxEvents := cfg.Int("max_events", 0)

	for i, raw := range cfg.List("events") {
		name, opts, err := parseEventEntry(raw)
		if err != nil {
			return fmt.Errorf("events[%d]: %w", i, err)
		}
		if !strict && c.declared(name, opts) {
			continue
		}
		if maxEvents > 0 && c.Len() >= maxEvents {
			return fmt.Errorf("events[%d]: more than max_events=%d: %w", i, maxEvents, ErrInvalidDeclaration)
		}
		if _, err := c.Declare(name, opts...); err != nil {
			return fmt.Errorf("events[%d]: %w", i, err)
		}
	}

	return c.loadGroups(cfg.Section("groups"), strict)
}

// declared reports whether the entry's resulting name is already an event.
func (c *Catalog) declared(name string, opts []event.Option) bool {
	if name == "" {
		name = event.New(name, opts...).Name()
	}
	_, ok := c.Lookup(name)
	return ok
}

// LoadFile reads a YAML or JSON document and declares its contents.
func (c *Catalog) LoadFile(path string) error {
	cfg, err := config.FromFile(path)
	if err != nil {
		return err
	}
	return c.LoadConfig(cfg)
}

func parseEventEntry(raw any) (string, []event.Option, error) {
	switch v := raw.(type) {
	case string:
		return v, nil, nil
	case map[string]any:
		entry := config.New(v)
		name := entry.String("name", "")
		kind := entry.String("kind", "")
		if name == "" && kind == "" {
			return "", nil, fmt.Errorf("entry needs a name or a kind: %w", ErrInvalidDeclaration)
		}
		var opts []event.Option
		if kind != "" {
			opts = append(opts, event.WithKind(kind))
		}
		if id := entry.String("id", ""); id != "" {
			opts = append(opts, event.WithID(id))
		}
		return name, opts, nil
	default:
		return "", nil, fmt.Errorf("unexpected entry type %T: %w", raw, ErrInvalidDeclaration)
	}
}

func (c *Catalog) loadGroups(groups config.Config, strict bool) error {
	pending := make(map[string][]string)
	for _, name := range groups.Keys() {
		if _, ok := c.LookupGroup(name); ok && !strict {
			continue
		}
		members := groups.StringSlice(name, nil)
		if members == nil {
			return fmt.Errorf("groups.%s: members must be a list of names: %w", name, ErrInvalidDeclaration)
		}
		pending[name] = members
	}

	for len(pending) > 0 {
		progressed := false
		for _, name := range sortedKeys(pending) {
			if !c.resolvable(pending[name]) {
				continue
			}
			if _, err := c.Group(name, pending[name]...); err != nil {
				return fmt.Errorf("groups.%s: %w", name, err)
			}
			delete(pending, name)
			progressed = true
		}
		if !progressed {
			return c.unresolved(pending)
		}
	}
	return nil
}

func (c *Catalog) resolvable(members []string) bool {
	for _, m := range members {
		if !c.Has(m) {
			return false
		}
	}
	return true
}

// unresolved reports the first missing member of the remaining groups.
func (c *Catalog) unresolved(pending map[string][]string) error {
	for _, name := range sortedKeys(pending) {
		for _, m := range pending[name] {
			if !c.Has(m) {
				return fmt.Errorf("groups.%s member %q: %w", name, m, ErrUnknownEvent)
			}
		}
	}
	return fmt.Errorf("groups: %w", ErrUnknownEvent)
}
