// Package rendezvous provides an unbuffered rendezvous channel: speakers and
// listeners pair up one to one to hand over a single value.
package rendezvous

import (
	"github.com/llxisdsh/rendezvous/internal/opt"
)

// Rendezvous is a synchronization point where a speaker hands one value to
// exactly one listener. Nothing is buffered.
//
// Any number of goroutines may be inside Send and Receive at once. Send
// returns only after its value has been deposited for a waiting listener.
// Receive returns only after it has taken the value of exactly one Send.
// A parked speaker and a parked listener are never left waiting on each
// other.
//
// Types:
//   - T: The type of value being handed over.
//
// Usage:
//
//	r := NewRendezvous[string]()
//	// G1
//	r.Send("hello")
//	// G2
//	v := r.Receive() // "hello"
//
// Implementation:
// A monitor: one lock guards the waiting counts and a single-value slot;
// speakers park on one Cond, listeners on another.
//   - A speaker deposits only when a listener is waiting and the slot is
//     free, then wakes a listener.
//   - A listener waiting for the slot nudges a speaker on every pass,
//     since a speaker may have parked before any listener arrived.
//   - A listener that empties the slot wakes the next speaker if both
//     sides still have parties waiting.
//
// Pairing order among same-side waiters is unspecified.
//
// It is zero-value usable.
type Rendezvous[T any] struct {
	_  noCopy
	mu ticketLock

	speak  Cond // speakers waiting for a listener and a free slot
	listen Cond // listeners waiting for a deposit

	speakers  int  // parties inside Send, not yet paired
	listeners int  // parties inside Receive, not yet paired
	full      bool // slot holds a value not yet claimed
	slot      T

	_ [opt.PadSize_]byte
}

// Communicator is a Rendezvous exchanging 32-bit words.
type Communicator = Rendezvous[int32]

// NewRendezvous creates an idle Rendezvous.
func NewRendezvous[T any]() *Rendezvous[T] {
	return &Rendezvous[T]{}
}

// NewCommunicator creates an idle Communicator.
func NewCommunicator() *Communicator {
	return NewRendezvous[int32]()
}

// Send waits for a listener and hands v to it.
// It blocks until a listener is available and the slot is free.
func (r *Rendezvous[T]) Send(v T) {
	r.mu.Lock()
	r.speakers++
	for r.listeners == 0 || r.full {
		r.speak.wait(&r.mu)
	}

	r.slot = v
	r.full = true
	r.listen.Signal()

	r.speakers--
	r.mu.Unlock()
}

// Receive waits for a speaker and returns the value it sent.
func (r *Rendezvous[T]) Receive() T {
	r.mu.Lock()
	r.listeners++
	for !r.full {
		// A speaker may be parked because no listener had arrived yet.
		r.speak.Signal()
		r.listen.wait(&r.mu)
	}

	v := r.slot
	r.slot = *new(T)
	r.full = false
	r.listeners--

	// Speakers that parked on a full slot are not woken by anyone else.
	if r.speakers > 0 && r.listeners > 0 {
		r.speak.Signal()
	}
	r.mu.Unlock()
	return v
}

// Speak is Send under its Communicator name.
func (r *Rendezvous[T]) Speak(word T) {
	r.Send(word)
}

// Listen is Receive under its Communicator name.
func (r *Rendezvous[T]) Listen() T {
	return r.Receive()
}

// Speakers returns the number of goroutines inside Send that have not yet
// deposited their value. The result is a snapshot.
func (r *Rendezvous[T]) Speakers() int {
	r.mu.Lock()
	n := r.speakers
	r.mu.Unlock()
	return n
}

// Listeners returns the number of goroutines inside Receive that have not
// yet taken a value. The result is a snapshot.
func (r *Rendezvous[T]) Listeners() int {
	r.mu.Lock()
	n := r.listeners
	r.mu.Unlock()
	return n
}
