package rendezvous

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"
)

func TestGroup_Basic(t *testing.T) {
	var g Group[string, int]
	go g.Send("a", 1)
	if v := g.Receive("a"); v != 1 {
		t.Fatalf("Receive(a) = %d, want 1", v)
	}
	waitUntil(t, "entry cleanup", func() bool { return g.Len() == 0 })
}

func TestGroup_KeysAreIsolated(t *testing.T) {
	var g Group[string, int]
	got := make(chan int, 1)
	go func() {
		got <- g.Receive("b")
	}()
	waitUntil(t, "listener on b", func() bool { return g.Len() == 1 })

	sent := make(chan struct{})
	go func() {
		g.Send("a", 1)
		close(sent)
	}()
	waitUntil(t, "speaker on a", func() bool { return g.Len() == 2 })

	select {
	case v := <-got:
		t.Fatalf("listener on b received %d from a speaker on a", v)
	case <-sent:
		t.Fatal("speaker on a paired with a listener on b")
	case <-time.After(50 * time.Millisecond):
	}

	g.Send("b", 2)
	if v := <-got; v != 2 {
		t.Fatalf("Receive(b) = %d, want 2", v)
	}
	if v := g.Receive("a"); v != 1 {
		t.Fatalf("Receive(a) = %d, want 1", v)
	}
	<-sent
	waitUntil(t, "entry cleanup", func() bool { return g.Len() == 0 })
}

func TestGroup_RefCounting(t *testing.T) {
	var g Group[int, int]
	done := make(chan struct{})
	go func() {
		g.Send(1, 9)
		close(done)
	}()
	waitUntil(t, "speaker to register", func() bool {
		e, ok := g.m.Load(1)
		return ok && e.r.Speakers() == 1
	})
	if n := g.Len(); n != 1 {
		t.Fatalf("Len = %d, want 1 while a speaker waits", n)
	}

	_ = g.Receive(1)
	<-done
	if _, ok := g.m.Load(1); ok {
		t.Fatal("entry should be auto-deleted when no party is inside")
	}
}

func TestGroup_ManyKeys(t *testing.T) {
	var g Group[string, int]
	const keys = 32
	perKey := rounds(50)
	var mismatches atomic.Int32

	var eg errgroup.Group
	for k := range keys {
		key := fmt.Sprintf("k_%d", k)
		eg.Go(func() error {
			for i := range perKey {
				g.Send(key, k*perKey+i)
			}
			return nil
		})
		eg.Go(func() error {
			for range perKey {
				if v := g.Receive(key); v/perKey != k {
					mismatches.Add(1)
				}
			}
			return nil
		})
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = eg.Wait()
	}()
	waitDone(t, &wg, 30*time.Second)

	if n := mismatches.Load(); n != 0 {
		t.Fatalf("%d values crossed keys", n)
	}
	if n := g.Len(); n != 0 {
		t.Fatalf("Len = %d after all exchanges, want 0", n)
	}
}
