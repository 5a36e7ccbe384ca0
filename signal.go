package patchgl

import "time"

// Signal requests that its message be delivered once per upgrade of its
// version. ID is chosen by the component and must be stable across frames.
type Signal[Msg any] struct {
	ID      uint64
	Version Version[Msg]
}

// NewSignal returns a signal carrying msg at id.
func NewSignal[Msg any](signalID uint64, msg Msg, id Id) Signal[Msg] {
	return Signal[Msg]{ID: signalID, Version: VersionAt(msg, id)}
}

// Timeout requests that Msg be delivered once Duration has elapsed after an
// upgrade of its version is recorded.
type Timeout[Msg any] struct {
	ID       uint64
	Msg      Msg
	Duration time.Duration
}

// Raft lets a subtree report the range it was compiled into. Adapter is
// called once per compile and its message is delivered to the observer.
type Raft[Msg any] struct {
	ID      uint64
	Adapter func(id uint64, r BlockRange) Msg
}
