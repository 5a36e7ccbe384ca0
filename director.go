package patchgl

import "context"

// DirectorMsgKind identifies a message from the screen to the director.
type DirectorMsgKind uint8

const (
	ScreenReady   DirectorMsgKind = iota // the screen can accept ScreenMsgs on Screen
	ScreenResized                        // the drawable area is now Width x Height
	ScreenClosed                         // the user closed the screen
	ScreenTouch                          // a raw pointer event
)

// DirectorMsg is sent by a screen to the director.
type DirectorMsg struct {
	Kind          DirectorMsgKind
	Screen        chan<- ScreenMsg
	Width, Height float32
	Touch         TouchMsg
}

// ScanFlow tells ScanMessages whether to keep reading.
type ScanFlow uint8

const (
	ScanContinue ScanFlow = iota
	ScanBreak
)

// ScanMessages folds f over msgs starting from carry. It stops when f returns
// ScanBreak, msgs is closed, or ctx ends, and returns the last carry.
func ScanMessages[T, M any](ctx context.Context, msgs <-chan M, carry T, f func(T, M) (T, ScanFlow)) T {
	for {
		select {
		case <-ctx.Done():
			return carry
		case m, ok := <-msgs:
			if !ok {
				return carry
			}
			var flow ScanFlow
			carry, flow = f(carry, m)
			if flow == ScanBreak {
				return carry
			}
		}
	}
}

// directorState is the carry of the director's scan.
type directorState struct {
	bound         bool
	width, height float32
	routed        int
}

// StartDirector starts the goroutine that turns screen messages into window
// notes. The returned channel is the screen's end; the done channel closes
// when the director stops. The director closes w when the screen reports
// ScreenClosed or the window stops accepting notes.
func StartDirector[Msg any](ctx context.Context, w *Window[Msg]) (chan<- DirectorMsg, <-chan struct{}) {
	in := make(chan DirectorMsg, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		final := ScanMessages(ctx, in, directorState{}, func(st directorState, m DirectorMsg) (directorState, ScanFlow) {
			var err error
			switch m.Kind {
			case ScreenReady:
				st.bound = true
				err = w.Note(ScreenNote(m.Screen))
			case ScreenResized:
				st.width, st.height = m.Width, m.Height
				err = w.Note(RangeNote(0, 0, m.Width, m.Height))
			case ScreenTouch:
				err = w.Note(TouchNote(m.Touch))
			case ScreenClosed:
				return st, ScanBreak
			}
			if err != nil {
				return st, ScanBreak
			}
			st.routed++
			return st, ScanContinue
		})
		logger.Printf("%s director stopped after %d notes (%.0fx%.0f)", w.Name(), final.routed, final.width, final.height)
		if ctx.Err() == nil {
			w.Close()
		}
	}()
	return in, done
}
