package patchgl

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at paint time.
type Color struct {
	R, G, B, A float64
}

// Common colors used by placeholders and the examples.
var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
	ColorGrey  = Color{0.5, 0.5, 0.5, 1}
	ColorRed   = Color{0.9, 0.2, 0.2, 1}
	ColorGreen = Color{0.2, 0.8, 0.3, 1}
	ColorBlue  = Color{0.2, 0.4, 0.9, 1}
)

// RGB builds an opaque color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Anchor is the top-left corner of a block in screen coordinates. The
// coordinate system has its origin at the top-left, with Y increasing downward.
type Anchor struct {
	X, Y float32
}

// Placement positions text horizontally inside its block.
type Placement uint8

const (
	PlacementCenter Placement = iota // default
	PlacementStart
	PlacementEnd
)

// Fraction returns the horizontal alignment as a fraction of the free space:
// 0 for start, 0.5 for center, 1 for end.
func (p Placement) Fraction() float32 {
	switch p {
	case PlacementStart:
		return 0
	case PlacementEnd:
		return 1
	default:
		return 0.5
	}
}
