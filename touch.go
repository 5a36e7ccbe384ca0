package patchgl

import "fmt"

// TouchPhase identifies the stage of a pointer gesture.
type TouchPhase uint8

const (
	TouchBegin  TouchPhase = iota // pointer pressed on a touch block
	TouchMove                     // pointer moved while pressed
	TouchEnd                      // pointer released
	TouchCancel                   // gesture abandoned (e.g. pointer left the window)
)

func (p TouchPhase) String() string {
	switch p {
	case TouchBegin:
		return "Begin"
	case TouchMove:
		return "Move"
	case TouchEnd:
		return "End"
	case TouchCancel:
		return "Cancel"
	default:
		return fmt.Sprintf("TouchPhase(%d)", uint8(p))
	}
}

// TouchMsg is a raw pointer event addressed to the touch sensor with Tag.
// X and Y are screen coordinates; they are zero for Cancel.
type TouchMsg struct {
	Phase TouchPhase
	Tag   uint64
	X, Y  float32
}

// TouchAdapter converts raw touch events into application messages.
type TouchAdapter[Msg any] interface {
	Adapt(TouchMsg) Msg
}

// TouchFunc adapts a plain function to TouchAdapter.
type TouchFunc[Msg any] func(TouchMsg) Msg

func (f TouchFunc[Msg]) Adapt(t TouchMsg) Msg { return f(t) }

// TouchPhases maps each phase to a fixed message. It is the preferred adapter
// for components: it carries no code and compares by value.
type TouchPhases[Msg any] struct {
	Begin, Move, End, Cancel Msg
}

func (p TouchPhases[Msg]) Adapt(t TouchMsg) Msg {
	switch t.Phase {
	case TouchBegin:
		return p.Begin
	case TouchMove:
		return p.Move
	case TouchEnd:
		return p.End
	default:
		return p.Cancel
	}
}

// touchAdapterEntry is one compiled (tag, adapter) registration.
type touchAdapterEntry[Msg any] struct {
	tag     uint64
	adapter TouchAdapter[Msg]
}

// touchTracker holds the single active gesture. Begin arms it for a tag;
// Move, End and Cancel only pass when their tag matches. End and Cancel
// disarm it.
type touchTracker struct {
	active bool
	tag    uint64
}

// accept reports whether t should be routed, updating the tracker.
func (tr *touchTracker) accept(t TouchMsg) bool {
	switch t.Phase {
	case TouchBegin:
		tr.active = true
		tr.tag = t.Tag
		return true
	case TouchMove:
		return tr.active && tr.tag == t.Tag
	case TouchEnd, TouchCancel:
		if !tr.active || tr.tag != t.Tag {
			return false
		}
		tr.active = false
		return true
	}
	return false
}

// findTouchAdapter returns the last adapter registered for tag.
func findTouchAdapter[Msg any](entries []touchAdapterEntry[Msg], tag uint64) (TouchAdapter[Msg], bool) {
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].tag == tag {
			return entries[i].adapter, true
		}
	}
	return nil, false
}
