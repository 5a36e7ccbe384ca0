package patchgl

import (
	"context"
	"testing"
	"time"
)

func receiveFired[Msg any](t *testing.T, q *timerQueue[Msg], within time.Duration) timerFired[Msg] {
	t.Helper()
	select {
	case f := <-q.fired:
		return f
	case <-time.After(within):
		t.Fatalf("no timeout fired within %v", within)
		panic("unreachable")
	}
}

func expectNoFire[Msg any](t *testing.T, q *timerQueue[Msg], within time.Duration) {
	t.Helper()
	select {
	case f := <-q.fired:
		t.Fatalf("unexpected fire: id %d", f.id)
	case <-time.After(within):
	}
}

func TestTimerQueueOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	q := newTimerQueue[string]()
	go q.run(ctx)

	if err := q.schedule(ctx, 1, EnabledId(), "slow", 40*time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if err := q.schedule(ctx, 2, EnabledId(), "fast", 5*time.Millisecond); err != nil {
		t.Fatal(err)
	}

	if f := receiveFired(t, q, time.Second); f.msg != "fast" {
		t.Errorf("first fire = %q, want fast", f.msg)
	}
	if f := receiveFired(t, q, time.Second); f.msg != "slow" {
		t.Errorf("second fire = %q, want slow", f.msg)
	}
}

func TestTimerQueueReplace(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	q := newTimerQueue[string]()
	go q.run(ctx)

	first := EnabledId()
	second := first.Bump()
	if err := q.schedule(ctx, 7, first, "old", 10*time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if err := q.schedule(ctx, 7, second, "new", 20*time.Millisecond); err != nil {
		t.Fatal(err)
	}

	f := receiveFired(t, q, time.Second)
	if f.msg != "new" || f.stamp != second {
		t.Errorf("fired %q at %v, want new at %v", f.msg, f.stamp, second)
	}
	expectNoFire(t, q, 40*time.Millisecond)
}

func TestTimerQueueDoesNotBlockOnReader(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	q := newTimerQueue[int]()
	go q.run(ctx)

	// Nobody reads fired while these are scheduled; the queue must keep
	// accepting new entries.
	for i := 0; i < 5; i++ {
		if err := q.schedule(ctx, uint64(i), EnabledId(), i, time.Millisecond); err != nil {
			t.Fatal(err)
		}
		time.Sleep(2 * time.Millisecond)
	}
	seen := map[int]bool{}
	for i := 0; i < 5; i++ {
		seen[receiveFired(t, q, time.Second).msg] = true
	}
	if len(seen) != 5 {
		t.Errorf("fired %d distinct timeouts, want 5", len(seen))
	}
}

func TestTimerQueueScheduleAfterStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	q := newTimerQueue[int]()
	cancel()
	if err := q.schedule(ctx, 1, EnabledId(), 1, time.Millisecond); err != ErrWindowClosed {
		t.Errorf("schedule after cancel = %v, want ErrWindowClosed", err)
	}
}
