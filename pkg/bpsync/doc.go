/*
Package bpsync provides the event vocabulary for behavioral programming.

# Overview

In behavioral programming, threads of behavior synchronize by declaring which
events they request, which they wait for, and which they block. bpsync
supplies the pieces those declarations are made of:

  - event: atomic events, composite lists and predicate sets, all behind one
    EventSet contract so an atomic event can stand wherever a set is expected
  - statement: a single synchronization point (request, waitFor, block)
  - catalog: named, declared-once event instances and groups, loadable from
    YAML or JSON
  - eventlog: persistent run logs (in memory or SQLite) that replay back
    into catalog instances
  - observability: slog helpers plus OpenTelemetry metrics and tracing
  - config: typed access to YAML and JSON documents

The selection of the next event and the scheduling of threads are left to the
caller.

# Basic Usage

Declare events once and reuse the same instances everywhere:

	cat := catalog.New()
	addHot := cat.MustDeclare("AddHot", event.WithKind("Addition"))
	addCold := cat.MustDeclare("AddCold", event.WithKind("Addition"))
	additions, _ := cat.Group("additions", "AddHot", "AddCold")

	st := statement.New(
	    statement.WithRequest(addHot),
	    statement.WithWaitFor(additions),
	    statement.WithBlock(addCold),
	)

	st.Requests(addHot)             // true
	st.WaitsFor(addCold)            // true
	st.Blocks(event.New("AddCold")) // false: a different instance

# Identity

Events are equal only to themselves. Two events with the same name and kind
are distinct unless they are the same *event.Event. The catalog exists so
that every thread refers to the one declared instance.

# Recording Runs

	store, _ := eventlog.NewSQLiteStore("./runs.db")
	rec := eventlog.NewRecorder(store, eventlog.WithLogger(logger))
	rec.Record(ctx, addHot)

	events, _ := rec.Replay(ctx, rec.RunID(), cat)
	events[0] == addHot // true
*/
package bpsync
