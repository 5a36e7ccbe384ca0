package patchgl

import (
	"context"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// screenEntry is one block the screen currently holds.
type screenEntry struct {
	id    uint64
	block Block
}

// pointerState tracks the single pointer the screen routes. tag is only
// meaningful while hasTag is set.
type pointerState struct {
	down   bool
	hasTag bool
	tag    uint64
	x, y   float32
}

// EbitenScreen is the window-system collaborator: an ebiten.Game that holds
// the blocks a window sends, paints them in approach order, and reports
// readiness, resizes, closes and pointer events to a director.
//
// Sends to the director never block the game loop. They are queued and
// flushed opportunistically at the end of every Update.
type EbitenScreen struct {
	inbox    chan ScreenMsg
	director chan<- DirectorMsg
	outbox   []DirectorMsg

	blocks  map[uint64]Block
	order   []screenEntry
	sortBuf []screenEntry
	dirty   bool

	background Color
	font       *TTFFont
	fallback   text.Face

	width, height int
	ready         bool
	closed        bool
	closeSent     bool

	pointer     pointerState
	touching    bool
	touchID     ebiten.TouchID
	touchIDs    []ebiten.TouchID
	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner
	fps         *fpsWidget
}

// ScreenOption configures NewEbitenScreen.
type ScreenOption func(*EbitenScreen)

// WithBackground sets the color painted behind every frame.
func WithBackground(c Color) ScreenOption {
	return func(s *EbitenScreen) { s.background = c }
}

// WithFont sets the TrueType font used for paragraphs. Without one the
// screen falls back to the 7x13 bitmap face.
func WithFont(f *TTFFont) ScreenOption {
	return func(s *EbitenScreen) { s.font = f }
}

// WithScreenInboxSize sets the capacity of the channel windows send ScreenMsgs on.
func WithScreenInboxSize(n int) ScreenOption {
	return func(s *EbitenScreen) { s.inbox = make(chan ScreenMsg, n) }
}

// NewEbitenScreen returns a screen reporting to director.
func NewEbitenScreen(director chan<- DirectorMsg, opts ...ScreenOption) *EbitenScreen {
	s := &EbitenScreen{
		inbox:      make(chan ScreenMsg, 1024),
		director:   director,
		blocks:     make(map[uint64]Block),
		background: ColorWhite,
		fallback:   text.NewGoXFace(basicfont.Face7x13),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Inbox returns the channel windows send ScreenMsgs on.
func (s *EbitenScreen) Inbox() chan<- ScreenMsg { return s.inbox }

// Closed reports whether a window has told the screen to close.
func (s *EbitenScreen) Closed() bool { return s.closed }

// BlockCount returns the number of blocks currently held.
func (s *EbitenScreen) BlockCount() int { return len(s.blocks) }

// SetTestRunner attaches a scripted input runner. Its step is called from
// Update before live input is read.
func (s *EbitenScreen) SetTestRunner(r *TestRunner) {
	s.testRunner = r
}

// Update implements ebiten.Game.
func (s *EbitenScreen) Update() error {
	if !s.ready {
		s.ready = true
		s.post(DirectorMsg{Kind: ScreenReady, Screen: s.inbox})
	}
	s.drain()
	if s.closed {
		s.flush()
		return ebiten.Termination
	}
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	if s.fps != nil {
		s.fps.update(1 / float64(ebiten.TPS()))
	}
	if ebiten.IsWindowBeingClosed() {
		s.requestClose()
	}
	s.flush()
	return nil
}

// Draw implements ebiten.Game.
func (s *EbitenScreen) Draw(screen *ebiten.Image) {
	screen.Fill(s.background.RGBA())
	for _, e := range s.sorted() {
		s.paint(screen, e.block)
	}
	if s.fps != nil {
		s.fps.draw(screen)
	}
}

// Layout implements ebiten.Game. A change of outside size is reported to the
// director as ScreenResized.
func (s *EbitenScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != s.width || outsideHeight != s.height {
		s.width, s.height = outsideWidth, outsideHeight
		s.post(DirectorMsg{Kind: ScreenResized, Width: float32(outsideWidth), Height: float32(outsideHeight)})
	}
	return outsideWidth, outsideHeight
}

// requestClose reports ScreenClosed once.
func (s *EbitenScreen) requestClose() {
	if s.closeSent {
		return
	}
	s.closeSent = true
	s.post(DirectorMsg{Kind: ScreenClosed})
}

// --- Director outbox ---

func (s *EbitenScreen) post(m DirectorMsg) {
	s.outbox = append(s.outbox, m)
}

// flush sends queued messages until the director stops accepting.
func (s *EbitenScreen) flush() {
	for len(s.outbox) > 0 {
		select {
		case s.director <- s.outbox[0]:
			s.outbox[0] = DirectorMsg{}
			s.outbox = s.outbox[1:]
		default:
			return
		}
	}
}

// flushWait sends every queued message, blocking until the director takes
// it, stops, or ctx ends.
func (s *EbitenScreen) flushWait(ctx context.Context, directorDone <-chan struct{}) {
	for _, m := range s.outbox {
		select {
		case s.director <- m:
		case <-directorDone:
			return
		case <-ctx.Done():
			return
		}
	}
	s.outbox = s.outbox[:0]
}

// --- Block store ---

// drain applies every ScreenMsg already queued without waiting for more.
func (s *EbitenScreen) drain() {
	for {
		select {
		case m := <-s.inbox:
			s.apply(m)
		default:
			s.cancelOrphanedTouch()
			return
		}
	}
}

func (s *EbitenScreen) apply(m ScreenMsg) {
	switch m.Kind {
	case ScreenAddBlock:
		s.blocks[m.ID] = m.Block
		s.dirty = true
	case ScreenRemoveBlock:
		if _, ok := s.blocks[m.ID]; ok {
			delete(s.blocks, m.ID)
			s.dirty = true
		}
	case ScreenClose:
		s.closed = true
	}
}

// sorted returns the blocks in paint order: ascending approach, then id.
func (s *EbitenScreen) sorted() []screenEntry {
	if !s.dirty {
		return s.order
	}
	s.order = s.order[:0]
	for id, b := range s.blocks {
		s.order = append(s.order, screenEntry{id: id, block: b})
	}
	s.mergeSort()
	s.dirty = false
	return s.order
}

func entryLessOrEqual(a, b screenEntry) bool {
	if a.block.Approach != b.block.Approach {
		return a.block.Approach < b.block.Approach
	}
	return a.id <= b.id
}

// mergeSort sorts s.order in-place using s.sortBuf as scratch space.
// Bottom-up merge sort: zero allocations after the sort buffer reaches
// high-water mark.
func (s *EbitenScreen) mergeSort() {
	n := len(s.order)
	if n <= 1 {
		return
	}
	if cap(s.sortBuf) < n {
		s.sortBuf = make([]screenEntry, n)
	}
	s.sortBuf = s.sortBuf[:n]

	a, b := s.order, s.sortBuf
	swapped := false
	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}
	if swapped {
		copy(s.order, s.sortBuf)
	}
}

// mergeRun merges the sorted runs [lo, mid) and [mid, hi) of src into dst.
func mergeRun(src, dst []screenEntry, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if entryLessOrEqual(src[i], src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], src[i:mid])
	copy(dst[k:], src[j:hi])
}

// hitTest returns the tag of the nearest touch block containing (x, y).
func (s *EbitenScreen) hitTest(x, y float32) (uint64, bool) {
	order := s.sorted()
	for i := len(order) - 1; i >= 0; i-- {
		b := order[i].block
		if b.Sigil.Kind == SigilTouch && b.IsHit(x, y) {
			return b.Sigil.Tag, true
		}
	}
	return 0, false
}

func (s *EbitenScreen) hasTouchTag(tag uint64) bool {
	for _, b := range s.blocks {
		if b.Sigil.Kind == SigilTouch && b.Sigil.Tag == tag {
			return true
		}
	}
	return false
}

// cancelOrphanedTouch cancels the active gesture when its touch block has
// gone from the screen.
func (s *EbitenScreen) cancelOrphanedTouch() {
	p := &s.pointer
	if !p.hasTag || s.hasTouchTag(p.tag) {
		return
	}
	s.post(DirectorMsg{Kind: ScreenTouch, Touch: TouchMsg{Phase: TouchCancel, Tag: p.tag}})
	p.hasTag = false
}

// --- Painting ---

func (s *EbitenScreen) paint(dst *ebiten.Image, b Block) {
	switch b.Sigil.Kind {
	case SigilColor, SigilPlaceholder:
		if b.Width <= 0 || b.Height <= 0 {
			return
		}
		vector.DrawFilledRect(dst, b.Anchor.X, b.Anchor.Y, b.Width, b.Height, b.Sigil.Color.RGBA(), false)
	case SigilParagraph:
		s.paintParagraph(dst, b)
	}
}

func (s *EbitenScreen) paintParagraph(dst *ebiten.Image, b Block) {
	if b.Sigil.Text == "" || b.Width <= 0 || b.Height <= 0 {
		return
	}
	clip := image.Rect(
		int(b.Anchor.X), int(b.Anchor.Y),
		int(b.Anchor.X+b.Width+0.5), int(b.Anchor.Y+b.Height+0.5),
	)
	target, ok := dst.SubImage(clip).(*ebiten.Image)
	if !ok {
		return
	}

	op := &text.DrawOptions{}
	switch b.Sigil.Placement {
	case PlacementStart:
		op.PrimaryAlign = text.AlignStart
	case PlacementEnd:
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignCenter
	}
	op.SecondaryAlign = text.AlignCenter
	x := b.Anchor.X + b.Sigil.Placement.Fraction()*b.Width
	y := b.Anchor.Y + b.Height/2
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(b.Sigil.Color.RGBA())
	text.Draw(target, b.Sigil.Text, s.face(b.Sigil.LineHeight), op)
}

func (s *EbitenScreen) face(size float32) text.Face {
	if s.font == nil || size <= 0 {
		return s.fallback
	}
	return s.font.Face(float64(size))
}

// --- Input ---

// processInput routes one injected event if any are queued, otherwise the
// live pointer. Touch input takes priority over the mouse.
func (s *EbitenScreen) processInput() {
	if s.processInjectedInput() {
		return
	}
	x, y, pressed := s.readPointer()
	s.processPointer(x, y, pressed)
}

func (s *EbitenScreen) readPointer() (x, y float32, pressed bool) {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	if s.touching && !containsTouch(s.touchIDs, s.touchID) {
		s.touching = false
		return s.pointer.x, s.pointer.y, false
	}
	if !s.touching {
		if fresh := inpututil.AppendJustPressedTouchIDs(nil); len(fresh) > 0 {
			s.touching = true
			s.touchID = fresh[0]
		}
	}
	if s.touching {
		tx, ty := ebiten.TouchPosition(s.touchID)
		return float32(tx), float32(ty), true
	}
	mx, my := ebiten.CursorPosition()
	return float32(mx), float32(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func containsTouch(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, t := range ids {
		if t == id {
			return true
		}
	}
	return false
}

// processPointer runs the pointer state machine. A press starts a gesture on
// the touch block under the pointer; the gesture keeps that tag until release
// even if the pointer leaves the block.
func (s *EbitenScreen) processPointer(x, y float32, pressed bool) {
	p := &s.pointer
	switch {
	case pressed && !p.down:
		p.down = true
		p.tag, p.hasTag = s.hitTest(x, y)
		if p.hasTag {
			s.postTouch(TouchBegin, p.tag, x, y)
		}
	case pressed && p.down:
		if p.hasTag && (x != p.x || y != p.y) {
			s.postTouch(TouchMove, p.tag, x, y)
		}
	case !pressed && p.down:
		p.down = false
		if p.hasTag {
			s.postTouch(TouchEnd, p.tag, x, y)
			p.hasTag = false
		}
	}
	p.x, p.y = x, y
}

func (s *EbitenScreen) postTouch(phase TouchPhase, tag uint64, x, y float32) {
	s.post(DirectorMsg{Kind: ScreenTouch, Touch: TouchMsg{Phase: phase, Tag: tag, X: x, Y: y}})
}
