package patchgl

import (
	"context"
	"testing"
	"time"
)

func TestScanMessages(t *testing.T) {
	ch := make(chan int, 8)
	for _, v := range []int{1, 2, 3, 100, 4} {
		ch <- v
	}
	got := ScanMessages(context.Background(), ch, 0, func(sum, v int) (int, ScanFlow) {
		if v >= 100 {
			return sum, ScanBreak
		}
		return sum + v, ScanContinue
	})
	if got != 6 {
		t.Errorf("sum = %d, want 6", got)
	}
	if len(ch) != 1 {
		t.Errorf("%d messages left, want 1 after break", len(ch))
	}
}

func TestScanMessagesClosed(t *testing.T) {
	ch := make(chan string, 2)
	ch <- "a"
	ch <- "b"
	close(ch)
	got := ScanMessages(context.Background(), ch, "", func(acc, s string) (string, ScanFlow) {
		return acc + s, ScanContinue
	})
	if got != "ab" {
		t.Errorf("got %q, want ab", got)
	}
}

func TestScanMessagesContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	got := ScanMessages(ctx, make(chan int), 7, func(c, _ int) (int, ScanFlow) { return c + 1, ScanContinue })
	if got != 7 {
		t.Errorf("got %d, want the initial carry", got)
	}
}

func waitScreen(t *testing.T, screen <-chan ScreenMsg, pred func(ScreenMsg) bool) ScreenMsg {
	t.Helper()
	deadline := time.After(time.Second)
	for {
		select {
		case m := <-screen:
			if pred(m) {
				return m
			}
		case <-deadline:
			t.Fatal("expected screen message never arrived")
		}
	}
}

func TestDirectorRoutesNotes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := StartWindow[string](ctx, NewBlockRange(0, 0, 10, 10))
	obs := make(chan string, 8)
	_ = w.Observe(obs)
	_ = w.Flood(ColorFlood[string](ColorRed).Sense(Touch[string](5, TouchPhases[string]{Begin: "down", End: "up"})))

	director, done := StartDirector(ctx, w)
	screen := make(chan ScreenMsg, 256)
	director <- DirectorMsg{Kind: ScreenReady, Screen: screen}
	director <- DirectorMsg{Kind: ScreenResized, Width: 40, Height: 30}

	m := waitScreen(t, screen, func(m ScreenMsg) bool {
		return m.Kind == ScreenAddBlock && m.Block.Sigil.Kind == SigilColor && m.Block.Width == 40
	})
	if m.Block.Height != 30 {
		t.Errorf("resized block height = %v, want 30", m.Block.Height)
	}

	director <- DirectorMsg{Kind: ScreenTouch, Touch: TouchMsg{Phase: TouchBegin, Tag: 5}}
	director <- DirectorMsg{Kind: ScreenTouch, Touch: TouchMsg{Phase: TouchEnd, Tag: 5}}
	for _, want := range []string{"down", "up"} {
		select {
		case got := <-obs:
			if got != want {
				t.Errorf("observed %q, want %q", got, want)
			}
		case <-time.After(time.Second):
			t.Fatalf("touch %q not routed", want)
		}
	}

	director <- DirectorMsg{Kind: ScreenClosed}
	waitScreen(t, screen, func(m ScreenMsg) bool { return m.Kind == ScreenClose })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("director did not stop")
	}
	select {
	case <-w.Done():
	case <-time.After(time.Second):
		t.Fatal("ScreenClosed did not close the window")
	}
}

func TestDirectorStopsWithWindow(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := StartWindow[string](ctx, NewBlockRange(0, 0, 10, 10))
	director, done := StartDirector(ctx, w)
	w.Close()
	<-w.Done()

	director <- DirectorMsg{Kind: ScreenResized, Width: 1, Height: 1}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("director kept running after the window stopped")
	}
}
