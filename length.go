package patchgl

// Length is a symbolic size resolved to pixels during compilation.
//
// Resolve evaluates the expression against the extent of the axis being
// sized (context) and the extent of the orthogonal axis (cross). Text-based
// lengths consult m; a nil measurer falls back to DefaultMeasurer. Resolve is
// pure: the same inputs always give the same result, and it never panics.
// Negative results are legal; geometry built from them clamps to zero.
type Length interface {
	Resolve(context, cross float32, m TextMeasurer) float32
}

// Unit is a length that needs no operands.
type Unit uint8

const (
	Zero         Unit = iota // 0
	Spacing                  // standard gap between elements
	FingerTip                // minimum comfortable touch target
	Full                     // the whole context
	Half                     // half the context
	Third                    // a third of the context
	Cross                    // the orthogonal-axis context
	CardApproach             // depth a raised card sits behind its content
)

// Fixed sizes, in pixels, of the named units.
const (
	SpacingPixels      = 16
	FingerTipPixels    = 44
	CardApproachPixels = 2
)

func (u Unit) Resolve(context, cross float32, _ TextMeasurer) float32 {
	switch u {
	case Spacing:
		return SpacingPixels
	case FingerTip:
		return FingerTipPixels
	case Full:
		return context
	case Half:
		return context / 2
	case Third:
		return context / 3
	case Cross:
		return cross
	case CardApproach:
		return CardApproachPixels
	default:
		return 0
	}
}

// Pixels is an absolute length.
type Pixels float32

func (p Pixels) Resolve(_, _ float32, _ TextMeasurer) float32 { return float32(p) }

// Sum adds two lengths.
type Sum struct{ A, B Length }

func (s Sum) Resolve(context, cross float32, m TextMeasurer) float32 {
	return resolve(s.A, context, cross, m) + resolve(s.B, context, cross, m)
}

// Scale multiplies a length by a constant factor.
type Scale struct {
	Factor float32
	Of     Length
}

func (s Scale) Resolve(context, cross float32, m TextMeasurer) float32 {
	return s.Factor * resolve(s.Of, context, cross, m)
}

// Product multiplies two lengths.
type Product struct{ A, B Length }

func (p Product) Resolve(context, cross float32, m TextMeasurer) float32 {
	return resolve(p.A, context, cross, m) * resolve(p.B, context, cross, m)
}

// Min is the smaller of two lengths.
type Min struct{ A, B Length }

func (n Min) Resolve(context, cross float32, m TextMeasurer) float32 {
	a, b := resolve(n.A, context, cross, m), resolve(n.B, context, cross, m)
	if b < a {
		return b
	}
	return a
}

// Negative flips the sign of a length.
type Negative struct{ Of Length }

func (n Negative) Resolve(context, cross float32, m TextMeasurer) float32 {
	return -resolve(n.Of, context, cross, m)
}

// Inverse is the reciprocal of a length. The inverse of zero is zero.
type Inverse struct{ Of Length }

func (i Inverse) Resolve(context, cross float32, m TextMeasurer) float32 {
	v := resolve(i.Of, context, cross, m)
	if v == 0 {
		return 0
	}
	return 1 / v
}

// TextWidth is the rendered width of a string set at the cross extent, which
// is the line height when sizing a width.
type TextWidth string

func (t TextWidth) Resolve(_, cross float32, m TextMeasurer) float32 {
	return measurerOrDefault(m).MeasureText(string(t), cross)
}

// TextUnitWidth is the width of a string in em units, i.e. set at size 1.
type TextUnitWidth string

func (t TextUnitWidth) Resolve(_, _ float32, m TextMeasurer) float32 {
	return measurerOrDefault(m).MeasureText(string(t), 1)
}

func resolve(l Length, context, cross float32, m TextMeasurer) float32 {
	if l == nil {
		return 0
	}
	return l.Resolve(context, cross, m)
}

// Plus returns a + b.
func Plus(a, b Length) Length { return Sum{A: a, B: b} }

// Times returns l scaled by factor.
func Times(l Length, factor float32) Length { return Scale{Factor: factor, Of: l} }

// Over returns l divided by divisor. Dividing by zero yields Zero.
func Over(l Length, divisor float32) Length {
	if divisor == 0 {
		return Zero
	}
	return Scale{Factor: 1 / divisor, Of: l}
}

// Neg returns -l.
func Neg(l Length) Length { return Negative{Of: l} }
