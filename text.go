package patchgl

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rivo/uniseg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// TextMeasurer reports the advance width of a single line of text set at the
// given font size. The compiler only ever needs widths; shaping, kerning and
// line breaking belong to the measurer.
type TextMeasurer interface {
	MeasureText(s string, size float32) float32
}

// DefaultMeasurer is used when a Length is resolved without a measurer.
var DefaultMeasurer TextMeasurer = MonoMeasurer{Advance: 0.6}

func measurerOrDefault(m TextMeasurer) TextMeasurer {
	if m == nil {
		return DefaultMeasurer
	}
	return m
}

// --- MonoMeasurer ---

// MonoMeasurer is a deterministic measurer that gives every grapheme cluster
// the same advance, expressed as a fraction of the font size. It needs no
// font data and is the measurer used by tests.
type MonoMeasurer struct {
	Advance float32
}

// MeasureText returns graphemes * Advance * size.
func (m MonoMeasurer) MeasureText(s string, size float32) float32 {
	return float32(uniseg.GraphemeClusterCount(s)) * m.Advance * size
}

// --- BasicMeasurer ---

// BasicMeasurer measures with the fixed 7x13 bitmap face from x/image, scaled
// linearly to the requested size.
type BasicMeasurer struct{}

// MeasureText returns the basicfont advance scaled from 13px to size.
func (BasicMeasurer) MeasureText(s string, size float32) float32 {
	face := basicfont.Face7x13
	adv := font.MeasureString(face, s)
	return float32(adv) / 64 * size / float32(face.Metrics().Height.Ceil())
}

// --- FallbackMeasurer ---

// FallbackMeasurer measures text exactly as EbitenScreen paints it when no
// TrueType font is set: the 7x13 bitmap face at its native size. The
// requested size is ignored because the fallback face does not scale.
type FallbackMeasurer struct{}

// MeasureText returns the basicfont advance of s.
func (FallbackMeasurer) MeasureText(s string, _ float32) float32 {
	return float32(font.MeasureString(basicfont.Face7x13, s)) / 64
}

// measurerFor returns the measurer matching what a screen with f paints.
func measurerFor(f *TTFFont) TextMeasurer {
	if f == nil {
		return FallbackMeasurer{}
	}
	return f
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType measurement and painting.
type TTFFont struct {
	source *text.GoTextFaceSource
	size   float64
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data. size is the
// reference size used for measurement; widths scale linearly from it.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	if size <= 0 {
		return nil, fmt.Errorf("patchgl: invalid font size %v", size)
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("patchgl: failed to parse TTF data: %w", err)
	}
	return &TTFFont{source: source, size: size}, nil
}

// LoadDefaultFont loads the Go Regular font bundled with x/image.
func LoadDefaultFont(size float64) (*TTFFont, error) {
	return LoadTTFFont(goregular.TTF, size)
}

// MeasureText returns the shaped advance of s at size.
func (f *TTFFont) MeasureText(s string, size float32) float32 {
	if s == "" || size <= 0 {
		return 0
	}
	adv := text.Advance(s, f.Face(f.size))
	return float32(adv * float64(size) / f.size)
}

// Face returns a GoTextFace at the given size for direct text/v2 drawing.
func (f *TTFFont) Face(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: f.source, Size: size}
}
