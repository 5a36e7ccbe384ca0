package patchgl

import "fmt"

// FloodKind distinguishes the node types of a Flood tree.
type FloodKind uint8

const (
	FloodColor    FloodKind = iota // solid fill leaf
	FloodText                      // text leaf
	FloodBarrier                   // split into two side-by-side subtrees
	FloodVessel                    // padded subtree
	FloodSediment                  // near subtree stacked in front of far subtree
	FloodRipple                    // subtree with a sensor attached
	FloodEscape                    // raft reporting its range as a message
)

func (k FloodKind) String() string {
	switch k {
	case FloodColor:
		return "Color"
	case FloodText:
		return "Text"
	case FloodBarrier:
		return "Barrier"
	case FloodVessel:
		return "Vessel"
	case FloodSediment:
		return "Sediment"
	case FloodRipple:
		return "Ripple"
	case FloodEscape:
		return "Escape"
	default:
		return fmt.Sprintf("FloodKind(%d)", uint8(k))
	}
}

// Flood is an immutable description of one frame of user interface.
//
// A single flat struct is used for all node kinds; only the fields relevant
// to Kind are set. Trees are built fresh every frame with the constructors
// below and never mutated. No node identity persists between frames: state
// that must survive a redraw is carried by the stable ids inside sensors and
// rafts.
type Flood[Msg any] struct {
	Kind FloodKind

	// Color and Text
	Color     Color
	Text      string
	Placement Placement

	Position Position    // Barrier
	Padding  Padding     // Vessel
	Silt     Silt        // Sediment
	Sensor   Sensor[Msg] // Ripple
	Raft     Raft[Msg]   // Escape

	// Barrier: A fills the remainder, B takes Position's edge.
	// Vessel, Ripple: A is the inner subtree.
	// Sediment: A is far, B is near.
	A, B *Flood[Msg]
}

// ColorFlood returns a solid fill.
func ColorFlood[Msg any](c Color) Flood[Msg] {
	return Flood[Msg]{Kind: FloodColor, Color: c}
}

// TextFlood returns a line of text filling its range's height.
func TextFlood[Msg any](s string, c Color, p Placement) Flood[Msg] {
	return Flood[Msg]{Kind: FloodText, Text: s, Color: c, Placement: p}
}

// Barrier splits the range: b takes the edge named by pos, a the rest.
func Barrier[Msg any](pos Position, a, b Flood[Msg]) Flood[Msg] {
	return Flood[Msg]{Kind: FloodBarrier, Position: pos, A: &a, B: &b}
}

// Vessel insets inner by p.
func Vessel[Msg any](p Padding, inner Flood[Msg]) Flood[Msg] {
	return Flood[Msg]{Kind: FloodVessel, Padding: p, A: &inner}
}

// Sediment stacks near in front of far using silt's depth step.
func Sediment[Msg any](silt Silt, far, near Flood[Msg]) Flood[Msg] {
	return Flood[Msg]{Kind: FloodSediment, Silt: silt, A: &far, B: &near}
}

// Ripple attaches s to inner.
func Ripple[Msg any](s Sensor[Msg], inner Flood[Msg]) Flood[Msg] {
	return Flood[Msg]{Kind: FloodRipple, Sensor: s, A: &inner}
}

// Escape returns a placeholder whose range is reported through r.
func Escape[Msg any](r Raft[Msg]) Flood[Msg] {
	return Flood[Msg]{Kind: FloodEscape, Raft: r}
}

// Pad returns f inside a Vessel.
func (f Flood[Msg]) Pad(p Padding) Flood[Msg] { return Vessel(p, f) }

// Sense returns f with s attached.
func (f Flood[Msg]) Sense(s Sensor[Msg]) Flood[Msg] { return Ripple(s, f) }

// Over returns f stacked one minimum step in front of far.
func (f Flood[Msg]) Over(far Flood[Msg]) Flood[Msg] { return Sediment(SiltMinimum, far, f) }

// Beside returns f with other placed on the edge named by pos.
func (f Flood[Msg]) Beside(pos Position, other Flood[Msg]) Flood[Msg] {
	return Barrier(pos, f, other)
}

// --- Position ---

// Edge names the side of a range a Barrier carves out.
type Edge uint8

const (
	EdgeRight Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeTop
)

// Position is the edge and extent of a Barrier split.
type Position struct {
	Edge   Edge
	Length Length
}

// Right, Bottom, Left and Top build Positions.
func Right(l Length) Position  { return Position{Edge: EdgeRight, Length: l} }
func Bottom(l Length) Position { return Position{Edge: EdgeBottom, Length: l} }
func Left(l Length) Position   { return Position{Edge: EdgeLeft, Length: l} }
func Top(l Length) Position    { return Position{Edge: EdgeTop, Length: l} }

// --- Padding ---

// PaddingKind selects which axes a Padding insets.
type PaddingKind uint8

const (
	PadUniform    PaddingKind = iota // same inset on all sides, sized against the longer side
	PadDual                          // horizontal inset H and vertical inset V
	PadHorizontal                    // left and right only
	PadVertical                      // top and bottom only
	PadBehind                        // no inset; pushes the subtree nearer by H
)

// Padding describes a Vessel inset.
type Padding struct {
	Kind PaddingKind
	H, V Length
}

// Uniform, Dual, Horizontal, Vertical and Behind build Paddings.
func Uniform(l Length) Padding    { return Padding{Kind: PadUniform, H: l, V: l} }
func Dual(h, v Length) Padding    { return Padding{Kind: PadDual, H: h, V: v} }
func Horizontal(l Length) Padding { return Padding{Kind: PadHorizontal, H: l} }
func Vertical(l Length) Padding   { return Padding{Kind: PadVertical, V: l} }
func Behind(depth Length) Padding { return Padding{Kind: PadBehind, H: depth} }

// --- Silt ---

// MinimumStep is the smallest depth separation a Silt will apply.
const MinimumStep = 0.001

// Silt is the stacking policy of a Sediment: it gives the approach the near
// subtree starts at, given the far subtree's maximum approach. The step is
// always at least MinimumStep so near paints strictly in front of far.
type Silt struct {
	Step float32
}

var (
	SiltMinimum   = Silt{Step: 1}
	SiltJustBelow = Silt{Step: MinimumStep}
)

// AddTo returns the approach the near subtree starts at.
func (s Silt) AddTo(farApproach float32) float32 {
	return farApproach + max(s.Step, MinimumStep)
}

// --- Sensor ---

// SensorKind distinguishes the subscriptions a Ripple can carry.
type SensorKind uint8

const (
	SensorTouch SensorKind = iota
	SensorSignal
	SensorTimeout
)

// Sensor is an event subscription attached to a subtree.
type Sensor[Msg any] struct {
	Kind SensorKind

	// Touch
	Tag     uint64
	Adapter TouchAdapter[Msg]

	Signal  Signal[Msg]
	Timeout Version[Timeout[Msg]]
}

// Touch subscribes to pointer events inside the subtree, addressed by tag.
func Touch[Msg any](tag uint64, a TouchAdapter[Msg]) Sensor[Msg] {
	return Sensor[Msg]{Kind: SensorTouch, Tag: tag, Adapter: a}
}

// SignalSensor requests s be evaluated for delivery this cycle.
func SignalSensor[Msg any](s Signal[Msg]) Sensor[Msg] {
	return Sensor[Msg]{Kind: SensorSignal, Signal: s}
}

// TimeoutSensor requests t be evaluated for scheduling this cycle.
func TimeoutSensor[Msg any](t Version[Timeout[Msg]]) Sensor[Msg] {
	return Sensor[Msg]{Kind: SensorTimeout, Timeout: t}
}
