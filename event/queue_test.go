package event

import (
	"sync"
	"testing"
)

func TestDrainPreservesArrivalOrder(t *testing.T) {
	q := NewQueue(8)
	q.Push(Key{Code: 1, Pressed: true})
	q.Push(Scroll{YOffset: 1})
	q.Push(Key{Code: 2, Pressed: true})

	got := q.Drain()
	if len(got) != 3 {
		t.Fatalf("drained %d events, want 3", len(got))
	}
	if k, ok := got[0].(Key); !ok || k.Code != 1 {
		t.Fatalf("event 0: got %#v, want Key{Code:1}", got[0])
	}
	if _, ok := got[1].(Scroll); !ok {
		t.Fatalf("event 1: got %#v, want Scroll", got[1])
	}
	if k, ok := got[2].(Key); !ok || k.Code != 2 {
		t.Fatalf("event 2: got %#v, want Key{Code:2}", got[2])
	}

	if q.Drain() != nil {
		t.Fatal("drain did not clear the queue")
	}
}

func TestCurrentStateEventsCoalesce(t *testing.T) {
	q := NewQueue(8)
	q.Push(WindowResized{Width: 100, Height: 100})
	q.Push(Key{Code: 1, Pressed: true})
	q.Push(WindowResized{Width: 300, Height: 200})

	got := q.Drain()
	if len(got) != 2 {
		t.Fatalf("drained %d events, want 2 (resize coalesced in place)", len(got))
	}
	r, ok := got[0].(WindowResized)
	if !ok {
		t.Fatalf("event 0: got %#v, want WindowResized", got[0])
	}
	if r.Width != 300 || r.Height != 200 {
		t.Fatalf("resize: got %dx%d, want latest 300x200", r.Width, r.Height)
	}
}

func TestDiscreteEventsAccumulate(t *testing.T) {
	q := NewQueue(8)
	q.Push(Scroll{YOffset: 1})
	q.Push(Scroll{YOffset: 2})
	q.Push(Scroll{YOffset: 3})

	if got := len(q.Drain()); got != 3 {
		t.Fatalf("drained %d scroll events, want all 3", got)
	}
}

func TestOverflowDropsSilently(t *testing.T) {
	q := NewQueue(4)
	for i := 0; i < 10; i++ {
		q.Push(Key{Code: i, Pressed: true})
	}

	got := q.Drain()
	if len(got) != 4 {
		t.Fatalf("drained %d events, want capacity 4", len(got))
	}
	// The oldest events survive; the burst tail is dropped.
	for i, e := range got {
		if k := e.(Key); k.Code != i {
			t.Fatalf("event %d: got code %d, want %d", i, k.Code, i)
		}
	}
}

func TestCoalescingWorksWhenFull(t *testing.T) {
	q := NewQueue(2)
	q.Push(WindowResized{Width: 1, Height: 1})
	q.Push(Key{Code: 9, Pressed: true})
	// Queue is full; the newer size must still replace the pending one.
	q.Push(WindowResized{Width: 2, Height: 2})

	got := q.Drain()
	if len(got) != 2 {
		t.Fatalf("drained %d events, want 2", len(got))
	}
	if r := got[0].(WindowResized); r.Width != 2 {
		t.Fatalf("resize: got width %d, want 2", r.Width)
	}
}

func TestConcurrentProducers(t *testing.T) {
	q := NewQueue(1024)
	var wg sync.WaitGroup
	for p := 0; p < 8; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Push(Key{Code: p*1000 + i, Pressed: true})
			}
		}(p)
	}
	wg.Wait()

	if got := len(q.Drain()); got != 800 {
		t.Fatalf("drained %d events, want 800", got)
	}
}
