package rendezvous

import (
	"github.com/llxisdsh/pb"
)

// Group allows rendezvous on arbitrary keys (string, int, struct, etc.).
// A speaker on key k pairs only with a listener on the same key.
//
// Features:
//   - Infinite Keys: No need to pre-allocate channels.
//   - Auto-Cleanup: A key's Rendezvous is removed once no party is inside it.
//
// Usage:
//
//	var g Group[string, int]
//	// G1
//	g.Send("job-7", 42)
//	// G2
//	v := g.Receive("job-7") // 42
//
// Implementation Note:
// Entries are reference counted inside pb.MapOf.ProcessEntry, which runs
// atomically per key, so an entry is only deleted while it is idle.
type Group[K comparable, T any] struct {
	_ noCopy
	m pb.MapOf[K, *groupEntry[T]]
}

type groupEntry[T any] struct {
	r Rendezvous[T]
	// ref is only touched inside ProcessEntry for the entry's key.
	ref int32
}

// Send hands v to a listener waiting on key k.
func (g *Group[K, T]) Send(k K, v T) {
	e := g.acquire(k)
	e.r.Send(v)
	g.release(k, e)
}

// Receive waits for a speaker on key k and returns its value.
func (g *Group[K, T]) Receive(k K) T {
	e := g.acquire(k)
	v := e.r.Receive()
	g.release(k, e)
	return v
}

// Len returns the number of keys that currently have parties inside.
func (g *Group[K, T]) Len() int {
	return g.m.Size()
}

func (g *Group[K, T]) acquire(k K) *groupEntry[T] {
	e, _ := g.m.ProcessEntry(
		k,
		func(l *pb.EntryOf[K, *groupEntry[T]]) (*pb.EntryOf[K, *groupEntry[T]], *groupEntry[T], bool) {
			if l != nil {
				l.Value.ref++
				return l, l.Value, true
			}
			e := &groupEntry[T]{ref: 1}
			return &pb.EntryOf[K, *groupEntry[T]]{Value: e}, e, false
		},
	)
	return e
}

func (g *Group[K, T]) release(k K, e *groupEntry[T]) {
	_, _ = g.m.ProcessEntry(
		k,
		func(l *pb.EntryOf[K, *groupEntry[T]]) (*pb.EntryOf[K, *groupEntry[T]], *groupEntry[T], bool) {
			if l == nil || l.Value != e {
				return l, nil, false
			}
			e.ref--
			if e.ref <= 0 {
				return nil, nil, false
			}
			return l, e, true
		},
	)
}
