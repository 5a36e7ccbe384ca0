package patchgl

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// ErrWindowClosed is returned when a message cannot be delivered because the
// receiving actor has stopped.
var ErrWindowClosed = errors.New("patchgl: window closed")

// errClosing ends the actor loop after an orderly Close.
var errClosing = errors.New("patchgl: window closing")

// --- Protocol ---

// ScreenMsgKind identifies a message sent to the screen.
type ScreenMsgKind uint8

const (
	ScreenAddBlock    ScreenMsgKind = iota // add or replace the block with ID
	ScreenRemoveBlock                      // erase the block with ID
	ScreenClose                            // the window is going away
)

// ScreenMsg is sent from a window to its screen.
type ScreenMsg struct {
	Kind  ScreenMsgKind
	ID    uint64
	Block Block
}

// NoteKind identifies a window-system notification.
type NoteKind uint8

const (
	NoteScreen NoteKind = iota // bind the screen connection
	NoteRange                  // the root viewport changed
	NoteTouch                  // a raw pointer event
)

// WindowNote is a notification from the window system.
type WindowNote struct {
	Kind   NoteKind
	Screen chan<- ScreenMsg
	Range  BlockRange
	Touch  TouchMsg
}

// ScreenNote binds screen as the window's rendering connection.
func ScreenNote(screen chan<- ScreenMsg) WindowNote {
	return WindowNote{Kind: NoteScreen, Screen: screen}
}

// RangeNote sets the root viewport.
func RangeNote(left, top, width, height float32) WindowNote {
	return WindowNote{Kind: NoteRange, Range: NewBlockRange(left, top, width, height)}
}

// TouchNote routes a raw pointer event.
func TouchNote(t TouchMsg) WindowNote {
	return WindowNote{Kind: NoteTouch, Touch: t}
}

// WindowMsgKind identifies a message sent to a window actor.
type WindowMsgKind uint8

const (
	WindowFlood   WindowMsgKind = iota // replace the frame and recompile
	WindowObserve                      // register the application message sink
	WindowNoteMsg                      // window-system notification
	WindowClose                        // close the screen and stop
)

// WindowMsg is the inbound protocol of a window actor.
type WindowMsg[Msg any] struct {
	Kind     WindowMsgKind
	Flood    Flood[Msg]
	Observer chan<- Msg
	Note     WindowNote
}

// --- OpenWindow ---

// WindowState is the lifecycle stage of a window.
type WindowState uint8

const (
	WindowUnseeded WindowState = iota // no screen bound yet
	WindowLive                        // compiling and dispatching every cycle
	WindowClosing                     // close received; the actor is exiting
)

func (s WindowState) String() string {
	switch s {
	case WindowUnseeded:
		return "Unseeded"
	case WindowLive:
		return "Live"
	case WindowClosing:
		return "Closing"
	default:
		return fmt.Sprintf("WindowState(%d)", uint8(s))
	}
}

// seedStride separates the block id spaces of successive screen bindings.
const seedStride = 1 << 32

var seedCounter atomic.Uint64

func nextSeed() uint64 {
	return seedCounter.Add(1) * seedStride
}

// OpenWindow is the reactive state of one window. It is owned by exactly one
// actor goroutine and never touched from anywhere else.
//
// flood is replaced wholesale on every redraw. signals and timeouts persist
// across redraws: they hold the last Version recorded for each id, which is
// what makes a redraw that did not bump a version a no-op. scheduled holds the
// Id of the last deadline started for each timeout id; only an upgrade
// writes it, so a disarmed or older redraw never cancels a pending deadline.
type OpenWindow[Msg any] struct {
	Name string

	seed          uint64
	state         WindowState
	rng           BlockRange
	screen        chan<- ScreenMsg
	flood         Flood[Msg]
	touchAdapters []touchAdapterEntry[Msg]
	tracker       touchTracker
	blockIDs      []uint64
	observer      chan<- Msg
	signals       map[uint64]Signal[Msg]
	timeouts      map[uint64]Version[Timeout[Msg]]
	scheduled     map[uint64]Id

	compiler Compiler
	timers   *timerQueue[Msg]
	stats    debugStats
}

func newOpenWindow[Msg any](r BlockRange, cfg windowConfig) *OpenWindow[Msg] {
	name := cfg.name
	if name == "" {
		name = "window-" + uuid.NewString()[:8]
	}
	return &OpenWindow[Msg]{
		Name:      name,
		rng:       r,
		flood:     ColorFlood[Msg](Color{}),
		signals:   make(map[uint64]Signal[Msg]),
		timeouts:  make(map[uint64]Version[Timeout[Msg]]),
		scheduled: make(map[uint64]Id),
		compiler:  Compiler{Measurer: cfg.measurer},
		timers:    newTimerQueue[Msg](),
	}
}

// State returns the lifecycle stage.
func (w *OpenWindow[Msg]) State() WindowState { return w.state }

// handle applies one inbound message. It returns errClosing after Close and
// ErrWindowClosed when a peer channel is gone.
func (w *OpenWindow[Msg]) handle(ctx context.Context, msg WindowMsg[Msg]) error {
	switch msg.Kind {
	case WindowFlood:
		w.flood = msg.Flood
		return w.cycle(ctx)
	case WindowObserve:
		w.observer = msg.Observer
		return nil
	case WindowNoteMsg:
		return w.note(ctx, msg.Note)
	case WindowClose:
		w.state = WindowClosing
		if w.screen != nil {
			if err := send(ctx, w.screen, ScreenMsg{Kind: ScreenClose}); err != nil {
				return err
			}
		}
		return errClosing
	}
	return nil
}

func (w *OpenWindow[Msg]) note(ctx context.Context, n WindowNote) error {
	switch n.Kind {
	case NoteScreen:
		w.screen = n.Screen
		if w.screen == nil {
			// Nothing to draw on until the next bind.
			if w.state == WindowLive {
				w.state = WindowUnseeded
			}
			w.touchAdapters = nil
			return nil
		}
		w.seed = nextSeed()
		w.blockIDs = w.blockIDs[:0]
		if w.state == WindowUnseeded {
			w.state = WindowLive
		}
		return w.cycle(ctx)
	case NoteRange:
		w.rng = n.Range
		return w.cycle(ctx)
	case NoteTouch:
		return w.touch(ctx, n.Touch)
	}
	return nil
}

// touch routes a raw event through the active tracker and the adapter
// compiled for its tag. Unmatched or unregistered tags are dropped.
func (w *OpenWindow[Msg]) touch(ctx context.Context, t TouchMsg) error {
	m, ok := w.routeTouch(t)
	if !ok || w.observer == nil {
		return nil
	}
	return send(ctx, w.observer, m)
}

func (w *OpenWindow[Msg]) routeTouch(t TouchMsg) (Msg, bool) {
	var zero Msg
	if !w.tracker.accept(t) {
		return zero, false
	}
	adapter, ok := findTouchAdapter(w.touchAdapters, t.Tag)
	if !ok {
		return zero, false
	}
	return adapter.Adapt(t), true
}

// cycle compiles the current frame and dispatches its output. Nothing is
// compiled until a screen is bound.
func (w *OpenWindow[Msg]) cycle(ctx context.Context) error {
	w.touchAdapters = nil
	if w.state != WindowLive || w.screen == nil {
		return nil
	}
	w.stats = debugStats{}

	start := time.Now()
	list := CompileWith(w.compiler, w.rng, w.flood)
	w.stats.compileTime = time.Since(start)
	w.touchAdapters = list.TouchAdapters
	w.stats.touchCount = len(list.TouchAdapters)

	start = time.Now()
	if err := w.cycleSignals(ctx, list.Signals); err != nil {
		return err
	}
	if err := w.cycleTimeouts(ctx, list.Timeouts); err != nil {
		return err
	}
	if err := w.deliverAll(ctx, list.RaftMsgs); err != nil {
		return err
	}
	w.stats.raftCount = len(list.RaftMsgs)
	if err := w.sendBlocks(ctx, list.Blocks); err != nil {
		return err
	}
	w.stats.dispatchTime = time.Since(start)

	debugLog(w.Name, w.stats)
	return nil
}

// sendBlocks forwards the compiled blocks as seed+index and erases ids the
// previous cycle used beyond the new count.
func (w *OpenWindow[Msg]) sendBlocks(ctx context.Context, blocks []Block) error {
	previous := len(w.blockIDs)
	ids := w.blockIDs[:0]
	for i, b := range blocks {
		id := w.seed + uint64(i)
		if err := send(ctx, w.screen, ScreenMsg{Kind: ScreenAddBlock, ID: id, Block: b}); err != nil {
			return err
		}
		ids = append(ids, id)
	}
	for i := len(blocks); i < previous; i++ {
		if err := send(ctx, w.screen, ScreenMsg{Kind: ScreenRemoveBlock, ID: w.seed + uint64(i)}); err != nil {
			return err
		}
		w.stats.erasedCount++
	}
	w.blockIDs = ids
	w.stats.blockCount = len(blocks)
	return nil
}

// cycleSignals delivers every signal whose version upgrades the one stored
// for its id, then stores the new version whether or not it fired.
func (w *OpenWindow[Msg]) cycleSignals(ctx context.Context, signals []Signal[Msg]) error {
	var fire []Msg
	for _, s := range lastByID(signals, func(s Signal[Msg]) uint64 { return s.ID }) {
		var stored *Version[Msg]
		if old, ok := w.signals[s.ID]; ok {
			stored = &old.Version
		}
		if s.Version.UpgradesOption(stored) {
			fire = append(fire, s.Version.Value)
		}
		w.signals[s.ID] = s
	}
	w.stats.signalFires = len(fire)
	return w.deliverAll(ctx, fire)
}

// cycleTimeouts starts a deadline for every timeout whose version upgrades
// the one stored for its id, then stores the new version unconditionally.
func (w *OpenWindow[Msg]) cycleTimeouts(ctx context.Context, timeouts []Version[Timeout[Msg]]) error {
	for _, t := range lastByID(timeouts, func(t Version[Timeout[Msg]]) uint64 { return t.Value.ID }) {
		id := t.Value.ID
		var stored *Version[Timeout[Msg]]
		if old, ok := w.timeouts[id]; ok {
			stored = &old
		}
		if t.UpgradesOption(stored) {
			if err := w.timers.schedule(ctx, id, t.Id, t.Value.Msg, t.Value.Duration); err != nil {
				return err
			}
			w.scheduled[id] = t.Id
			w.stats.timerStarts++
		}
		w.timeouts[id] = t
	}
	return nil
}

// timeoutFired delivers a due timeout unless a later upgrade has started a
// newer deadline for its id.
func (w *OpenWindow[Msg]) timeoutFired(ctx context.Context, f timerFired[Msg]) error {
	m, ok := w.dueTimeout(f)
	if !ok {
		return nil
	}
	return w.deliver(ctx, m)
}

func (w *OpenWindow[Msg]) dueTimeout(f timerFired[Msg]) (Msg, bool) {
	stamp, ok := w.scheduled[f.id]
	if !ok || stamp != f.stamp {
		var zero Msg
		return zero, false
	}
	delete(w.scheduled, f.id)
	return f.msg, true
}

func (w *OpenWindow[Msg]) deliverAll(ctx context.Context, msgs []Msg) error {
	for _, m := range msgs {
		if err := w.deliver(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

// drainClosing empties the inbox and the due timers after Close without
// blocking. Touches and timeouts that were already queued still reach the
// observer if it has room; frames and range changes have no screen left to
// go to and are dropped.
func (w *OpenWindow[Msg]) drainClosing(inbox <-chan WindowMsg[Msg]) {
	var delivered, dropped int
	offer := func(m Msg, ok bool) {
		if !ok || w.observer == nil {
			return
		}
		select {
		case w.observer <- m:
			delivered++
		default:
			dropped++
		}
	}
	for {
		select {
		case msg := <-inbox:
			switch {
			case msg.Kind == WindowObserve:
				w.observer = msg.Observer
			case msg.Kind == WindowNoteMsg && msg.Note.Kind == NoteTouch:
				offer(w.routeTouch(msg.Note.Touch))
			default:
				dropped++
			}
		case f := <-w.timers.fired:
			offer(w.dueTimeout(f))
		default:
			if delivered+dropped > 0 {
				logger.Printf("%s drained on close: %d delivered, %d dropped", w.Name, delivered, dropped)
			}
			return
		}
	}
}

// deliver sends m to the observer, dropping it when none is registered.
func (w *OpenWindow[Msg]) deliver(ctx context.Context, m Msg) error {
	if w.observer == nil {
		return nil
	}
	return send(ctx, w.observer, m)
}

// lastByID keeps, in order, only the last item for each id.
func lastByID[T any](items []T, id func(T) uint64) []T {
	if len(items) < 2 {
		return items
	}
	last := make(map[uint64]int, len(items))
	for i, it := range items {
		last[id(it)] = i
	}
	if len(last) == len(items) {
		return items
	}
	out := make([]T, 0, len(last))
	for i, it := range items {
		if last[id(it)] == i {
			out = append(out, it)
		}
	}
	return out
}

func send[T any](ctx context.Context, ch chan<- T, v T) error {
	select {
	case ch <- v:
		return nil
	case <-ctx.Done():
		return ErrWindowClosed
	}
}

// --- Window handle ---

type windowConfig struct {
	name     string
	measurer TextMeasurer
	inboxCap int
}

// WindowOption configures StartWindow.
type WindowOption func(*windowConfig)

// WithMeasurer sets the text measurer used by the window's compiler.
func WithMeasurer(m TextMeasurer) WindowOption {
	return func(c *windowConfig) { c.measurer = m }
}

// WithName sets the name used in debug output.
func WithName(name string) WindowOption {
	return func(c *windowConfig) { c.name = name }
}

// WithInboxSize sets the capacity of the window's inbound channel.
func WithInboxSize(n int) WindowOption {
	return func(c *windowConfig) { c.inboxCap = n }
}

// Window is the handle to a running window actor. All methods are safe for
// concurrent use; the actor processes messages strictly in arrival order.
type Window[Msg any] struct {
	inbox chan WindowMsg[Msg]
	done  chan struct{}
	name  string
	err   error
}

// StartWindow starts a window actor covering r. The actor runs until Close is
// processed, ctx ends, or a peer channel breaks.
func StartWindow[Msg any](ctx context.Context, r BlockRange, opts ...WindowOption) *Window[Msg] {
	cfg := windowConfig{inboxCap: 64}
	for _, o := range opts {
		o(&cfg)
	}
	ow := newOpenWindow[Msg](r, cfg)
	w := &Window[Msg]{
		inbox: make(chan WindowMsg[Msg], cfg.inboxCap),
		done:  make(chan struct{}),
		name:  ow.Name,
	}
	go w.run(ctx, ow)
	return w
}

func (w *Window[Msg]) run(ctx context.Context, ow *OpenWindow[Msg]) {
	defer close(w.done)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go ow.timers.run(ctx)

	for {
		var err error
		select {
		case <-ctx.Done():
			w.err = ctx.Err()
			return
		case msg := <-w.inbox:
			err = ow.handle(ctx, msg)
		case f := <-ow.timers.fired:
			err = ow.timeoutFired(ctx, f)
		}
		if err != nil {
			if errors.Is(err, errClosing) {
				ow.drainClosing(w.inbox)
				return
			}
			w.err = err
			logger.Printf("%s stopped: %v", ow.Name, err)
			return
		}
	}
}

// Name returns the window's debug name.
func (w *Window[Msg]) Name() string { return w.name }

// Done is closed when the actor has exited.
func (w *Window[Msg]) Done() <-chan struct{} { return w.done }

// Err returns why the actor exited; nil after an orderly Close. Only valid
// once Done is closed.
func (w *Window[Msg]) Err() error {
	select {
	case <-w.done:
		return w.err
	default:
		return nil
	}
}

// Send queues msg for the actor.
func (w *Window[Msg]) Send(msg WindowMsg[Msg]) error {
	select {
	case <-w.done:
		return ErrWindowClosed
	default:
	}
	select {
	case w.inbox <- msg:
		return nil
	case <-w.done:
		return ErrWindowClosed
	}
}

// Flood replaces the current frame.
func (w *Window[Msg]) Flood(f Flood[Msg]) error {
	return w.Send(WindowMsg[Msg]{Kind: WindowFlood, Flood: f})
}

// Observe registers the application message sink.
func (w *Window[Msg]) Observe(observer chan<- Msg) error {
	return w.Send(WindowMsg[Msg]{Kind: WindowObserve, Observer: observer})
}

// Note forwards a window-system notification.
func (w *Window[Msg]) Note(n WindowNote) error {
	return w.Send(WindowMsg[Msg]{Kind: WindowNoteMsg, Note: n})
}

// Close asks the actor to close its screen and stop. Closing a stopped
// window is a no-op.
func (w *Window[Msg]) Close() {
	_ = w.Send(WindowMsg[Msg]{Kind: WindowClose})
}
