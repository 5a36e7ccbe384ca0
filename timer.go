package patchgl

import (
	"container/heap"
	"context"
	"time"
)

// timerEntry is one pending timeout. stamp is the Id the timeout was
// recorded at; msg is the message current when it was recorded.
type timerEntry[Msg any] struct {
	id       uint64
	stamp    Id
	msg      Msg
	deadline time.Time
	index    int
}

// timerFired reports a due timeout back to the window actor.
type timerFired[Msg any] struct {
	id    uint64
	stamp Id
	msg   Msg
}

type timerHeap[Msg any] []*timerEntry[Msg]

func (h timerHeap[Msg]) Len() int { return len(h) }

func (h timerHeap[Msg]) Less(i, j int) bool { return h[i].deadline.Before(h[j].deadline) }

func (h timerHeap[Msg]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap[Msg]) Push(x any) {
	e := x.(*timerEntry[Msg])
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *timerHeap[Msg]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

// timerQueue is the shared deadline facility of one window: a min-heap of
// pending timeouts keyed by timeout id, served by a single goroutine and a
// single time.Timer. Scheduling an id that is already pending replaces it.
//
// The goroutine never blocks on the window: due entries wait in an outbox
// until the actor receives them from fired.
type timerQueue[Msg any] struct {
	add   chan timerEntry[Msg]
	fired chan timerFired[Msg]
}

func newTimerQueue[Msg any]() *timerQueue[Msg] {
	return &timerQueue[Msg]{
		add:   make(chan timerEntry[Msg]),
		fired: make(chan timerFired[Msg]),
	}
}

// schedule queues msg for delivery after d. It blocks only until the timer
// goroutine accepts the entry, or ctx ends.
func (q *timerQueue[Msg]) schedule(ctx context.Context, id uint64, stamp Id, msg Msg, d time.Duration) error {
	e := timerEntry[Msg]{id: id, stamp: stamp, msg: msg, deadline: time.Now().Add(d)}
	select {
	case q.add <- e:
		return nil
	case <-ctx.Done():
		return ErrWindowClosed
	}
}

// run serves the queue until ctx ends.
func (q *timerQueue[Msg]) run(ctx context.Context) {
	var (
		pending timerHeap[Msg]
		byID    = make(map[uint64]*timerEntry[Msg])
		outbox  []timerFired[Msg]
		timer   = time.NewTimer(time.Hour)
	)
	timer.Stop()
	defer timer.Stop()

	for {
		var wake <-chan time.Time
		if len(pending) > 0 {
			timer.Reset(time.Until(pending[0].deadline))
			wake = timer.C
		}
		var (
			out  chan<- timerFired[Msg]
			next timerFired[Msg]
		)
		if len(outbox) > 0 {
			out = q.fired
			next = outbox[0]
		}

		select {
		case <-ctx.Done():
			return
		case e := <-q.add:
			if old, ok := byID[e.id]; ok {
				heap.Remove(&pending, old.index)
			}
			entry := e
			heap.Push(&pending, &entry)
			byID[e.id] = &entry
		case now := <-wake:
			for len(pending) > 0 && !pending[0].deadline.After(now) {
				e := heap.Pop(&pending).(*timerEntry[Msg])
				delete(byID, e.id)
				outbox = append(outbox, timerFired[Msg]{id: e.id, stamp: e.stamp, msg: e.msg})
			}
		case out <- next:
			outbox[0] = timerFired[Msg]{}
			outbox = outbox[1:]
		}
		timer.Stop()
	}
}
