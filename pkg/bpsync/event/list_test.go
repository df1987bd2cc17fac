package event_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/bpsync/pkg/bpsync/event"
)

func TestList_Flatten(t *testing.T) {
	a, b, c, d := event.New("a"), event.New("b"), event.New("c"), event.New("d")

	inner := event.NewList(b, c)
	outer := event.NewList(a, inner, d)

	assert.Equal(t, 4, outer.Size())
	assert.False(t, outer.IsAtomicEvent())
	assert.Equal(t, []*event.Event{a, b, c, d}, outer.EventList())

	for i, want := range []*event.Event{a, b, c, d} {
		got, err := outer.ElementAt(i)
		require.NoError(t, err)
		assert.Same(t, want, got)
	}

	var ranged []*event.Event
	for e := range outer.All() {
		ranged = append(ranged, e)
	}
	assert.Equal(t, []*event.Event{a, b, c, d}, ranged)
}

func TestList_Contains(t *testing.T) {
	a, b, stranger := event.New("a"), event.New("b"), event.New("a")
	l := event.NewList(a, event.NewList(b))

	assert.True(t, l.Contains(a))
	assert.True(t, l.Contains(b))
	assert.False(t, l.Contains(stranger), "same name is not membership")
	assert.False(t, l.Contains(nil))
	assert.False(t, l.Contains("a"))
}

func TestList_NilMembersSkipped(t *testing.T) {
	a := event.New("a")
	l := event.NewList(nil, a, nil)
	assert.Equal(t, 1, l.Size())
}

func TestList_ElementAtOutOfRange(t *testing.T) {
	l := event.NewList(event.New("a"), event.New("b"))

	for _, index := range []int{-1, 2, 10} {
		_, err := l.ElementAt(index)
		require.Error(t, err)
		assert.True(t, errors.Is(err, event.ErrOutOfRange))

		var idxErr *event.IndexError
		require.True(t, errors.As(err, &idxErr))
		assert.Equal(t, 2, idxErr.Size)
	}
}

func TestList_RequestedEvent(t *testing.T) {
	a, b := event.New("a"), event.New("b")

	t.Run("single event", func(t *testing.T) {
		got, err := event.NewList(event.NewList(a)).RequestedEvent()
		require.NoError(t, err)
		assert.Same(t, a, got)
	})

	t.Run("several events", func(t *testing.T) {
		_, err := event.NewList(a, b).RequestedEvent()
		assert.True(t, errors.Is(err, event.ErrAmbiguousRequest))
	})

	t.Run("empty", func(t *testing.T) {
		_, err := event.NewList().RequestedEvent()
		assert.True(t, errors.Is(err, event.ErrAmbiguousRequest))
	})
}

func TestList_AddMember(t *testing.T) {
	a, b := event.New("a"), event.New("b")
	l := event.NewList(a)

	ok, err := l.AddMember(b)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []*event.Event{a, b}, l.EventList())

	ok, err = l.AddMember(nil)
	assert.False(t, ok)
	assert.True(t, errors.Is(err, event.ErrNilMember))
	assert.Equal(t, 2, l.Size())
}

func TestList_AddMemberRejectsCycles(t *testing.T) {
	outer := event.NewList(event.New("a"))
	inner := event.NewList(event.New("b"))
	_, err := outer.AddMember(inner)
	require.NoError(t, err)

	t.Run("self", func(t *testing.T) {
		ok, err := outer.AddMember(outer)
		assert.False(t, ok)
		assert.True(t, errors.Is(err, event.ErrInvalidSetMutation))
	})

	t.Run("ancestor", func(t *testing.T) {
		ok, err := inner.AddMember(outer)
		assert.False(t, ok)
		assert.True(t, errors.Is(err, event.ErrInvalidSetMutation))
	})

	assert.Equal(t, 2, outer.Size())
}

func TestList_ConcurrentCrossAddNeverCycles(t *testing.T) {
	for range 500 {
		a := event.NewList(event.New("a"))
		b := event.NewList(event.New("b"))

		var wg sync.WaitGroup
		var okA, okB bool
		start := make(chan struct{})
		wg.Add(2)
		go func() {
			defer wg.Done()
			<-start
			okA, _ = a.AddMember(b)
		}()
		go func() {
			defer wg.Done()
			<-start
			okB, _ = b.AddMember(a)
		}()
		close(start)
		wg.Wait()

		require.True(t, okA != okB, "exactly one cross add succeeds")
		if okA {
			assert.Equal(t, 2, a.Size())
			assert.Equal(t, 1, b.Size())
		} else {
			assert.Equal(t, 1, a.Size())
			assert.Equal(t, 2, b.Size())
		}
	}
}

func TestList_SnapshotIsolation(t *testing.T) {
	a := event.New("a")
	l := event.NewList(a)

	members := l.Members()
	members[0] = event.New("z")
	assert.Equal(t, []*event.Event{a}, l.EventList())

	// A range started before AddMember sees the snapshot.
	count := 0
	for range l.All() {
		_, _ = l.AddMember(event.New("late"))
		count++
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, 2, l.Size())
}

func TestList_String(t *testing.T) {
	a, b := event.New("a"), event.New("b")
	assert.Equal(t, "{a, b}", event.NewList(a, b).String())
	assert.Equal(t, "Additions", event.NewNamedList("Additions", a, b).String())
	assert.Equal(t, "Additions", event.NewNamedList("Additions").Name())
}

func TestList_Concurrent(t *testing.T) {
	l := event.NewList()
	marker := event.New("marker")
	_, err := l.AddMember(marker)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range 50 {
				_, _ = l.AddMember(event.New("x"))
			}
		}()
		go func() {
			defer wg.Done()
			for range 50 {
				assert.True(t, l.Contains(marker))
				_ = l.Size()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1+20*50, l.Size())
}

func TestNone(t *testing.T) {
	e := event.New("a")

	assert.Equal(t, 0, event.None.Size())
	assert.False(t, event.None.Contains(e))
	assert.False(t, event.None.IsAtomicEvent())
	assert.Empty(t, event.None.EventList())
	assert.Nil(t, event.None.AppendEvents(nil))

	_, err := event.None.ElementAt(0)
	assert.True(t, errors.Is(err, event.ErrOutOfRange))

	_, err = event.None.RequestedEvent()
	assert.True(t, errors.Is(err, event.ErrAmbiguousRequest))

	ok, err := event.None.AddMember(e)
	assert.False(t, ok)
	assert.True(t, errors.Is(err, event.ErrInvalidSetMutation))
	assert.Equal(t, 0, event.None.Size())

	for range event.None.All() {
		t.Fatal("empty set yielded an event")
	}
	assert.False(t, event.None.Iterator().HasNext())
}
