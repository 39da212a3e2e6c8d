package rendezvous

import (
	"sync/atomic"
)

// ticketLock is the monitor lock of a Rendezvous.
//
// Goroutines are admitted in the order they called Lock (the classic
// "ticket" algorithm): Lock takes the next ticket and backs off until
// `serving` reaches it, Unlock advances `serving`. The critical sections
// it guards touch a handful of fields and never block, so a waiting
// goroutine spins briefly and then sleeps (see delay).
//
// Admission order only concerns the lock. Which parked speaker or
// listener pairs next is decided by Cond, and is unspecified.
type ticketLock struct {
	_       noCopy
	next    atomic.Uint32
	serving atomic.Uint32
}

// Lock acquires the lock. Blocks until the lock is available.
func (m *ticketLock) Lock() {
	my := m.next.Add(1) - 1
	var spins int
	for m.serving.Load() != my {
		delay(&spins)
	}
}

// Unlock releases the lock.
func (m *ticketLock) Unlock() {
	m.serving.Add(1)
}
