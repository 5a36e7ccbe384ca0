package patchgl

// Blocklist is the output of compiling a Flood: the blocks to paint and the
// subscriptions the window must evaluate this cycle.
type Blocklist[Msg any] struct {
	MaxApproach   float32
	Blocks        []Block
	TouchAdapters []touchAdapterEntry[Msg]
	Signals       []Signal[Msg]
	Timeouts      []Version[Timeout[Msg]]
	RaftMsgs      []Msg
}

// newBlocklist returns an empty list whose MaxApproach is r's approach, so a
// subtree never reports a depth behind the range it was given.
func newBlocklist[Msg any](r BlockRange) Blocklist[Msg] {
	return Blocklist[Msg]{MaxApproach: r.Approach}
}

// PushBlock appends b and raises MaxApproach to cover it.
func (l *Blocklist[Msg]) PushBlock(b Block) {
	l.MaxApproach = max(l.MaxApproach, b.Approach)
	l.Blocks = append(l.Blocks, b)
}

// PushTouchAdapter registers adapter for tag.
func (l *Blocklist[Msg]) PushTouchAdapter(tag uint64, adapter TouchAdapter[Msg]) {
	l.TouchAdapters = append(l.TouchAdapters, touchAdapterEntry[Msg]{tag: tag, adapter: adapter})
}

// Append moves everything from other onto the end of l.
func (l *Blocklist[Msg]) Append(other Blocklist[Msg]) {
	l.MaxApproach = max(l.MaxApproach, other.MaxApproach)
	l.Blocks = append(l.Blocks, other.Blocks...)
	l.TouchAdapters = append(l.TouchAdapters, other.TouchAdapters...)
	l.Signals = append(l.Signals, other.Signals...)
	l.Timeouts = append(l.Timeouts, other.Timeouts...)
	l.RaftMsgs = append(l.RaftMsgs, other.RaftMsgs...)
}

// TouchTags returns the registered touch tags in registration order.
func (l *Blocklist[Msg]) TouchTags() []uint64 {
	tags := make([]uint64, len(l.TouchAdapters))
	for i, e := range l.TouchAdapters {
		tags[i] = e.tag
	}
	return tags
}

// TouchAdapter returns the adapter registered last for tag.
func (l *Blocklist[Msg]) TouchAdapter(tag uint64) (TouchAdapter[Msg], bool) {
	return findTouchAdapter(l.TouchAdapters, tag)
}
