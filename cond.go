package rendezvous

import (
	"sync"

	"github.com/llxisdsh/rendezvous/internal/opt"
)

// Cond is a monitor condition variable (Mesa semantics) bound to a Locker.
//
// Unlike sync.Cond, Signal and Broadcast must be called with L held: the
// waiter count is part of the state L protects. This is what makes a wake
// issued between Wait's release of L and its park impossible to lose.
//
// Behavior:
//   - Wait(): Registers, releases L, parks, then reacquires L.
//   - Signal(): Wakes one registered waiter. No-op if there are none.
//   - Broadcast(): Wakes every registered waiter.
//
// Which waiter a Signal wakes is unspecified, and a woken waiter may find
// its predicate false again. Always wait in a loop:
//
//	c.L.Lock()
//	for !ready() {
//		c.Wait()
//	}
//	// use the state
//	c.L.Unlock()
//
// It is zero-value usable once L is set.
type Cond struct {
	_ noCopy
	L sync.Locker

	// waiters is the number of goroutines registered in Wait and not yet
	// chosen by Signal or Broadcast. Guarded by L.
	waiters uint32
	sema    opt.Sema
}

// NewCond returns a new Cond with Locker l.
func NewCond(l sync.Locker) *Cond {
	return &Cond{L: l}
}

// Wait atomically unlocks c.L and suspends the calling goroutine.
// After later resuming, Wait locks c.L before returning.
//
// panic if c.L is nil.
func (c *Cond) Wait() {
	if c.L == nil {
		panic("rendezvous: Cond.Wait with nil Locker")
	}
	c.wait(c.L)
}

// wait parks on c with l as the monitor lock. Rendezvous passes its own
// lock here so its conditions stay zero-value usable.
func (c *Cond) wait(l sync.Locker) {
	c.waiters++
	l.Unlock()
	// A Release between Unlock and Acquire is banked by the semaphore.
	c.sema.Acquire()
	l.Lock()
}

// Signal wakes one goroutine waiting on c, if there is any.
// The caller must hold c.L.
func (c *Cond) Signal() {
	if c.waiters == 0 {
		return
	}
	c.waiters--
	c.sema.Release()
}

// Broadcast wakes all goroutines waiting on c.
// The caller must hold c.L.
func (c *Cond) Broadcast() {
	n := c.waiters
	c.waiters = 0
	for range n {
		c.sema.Release()
	}
}
