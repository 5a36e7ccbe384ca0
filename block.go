package patchgl

// SigilKind distinguishes the paint primitive carried by a Block.
type SigilKind uint8

const (
	SigilColor       SigilKind = iota // solid fill
	SigilParagraph                    // a line of text
	SigilTouch                        // invisible hit-test area for a touch sensor
	SigilPlaceholder                  // stand-in painted where a raft escapes
)

// Sigil is the paint primitive of a Block. A single flat struct is used for
// every kind; fields not relevant to Kind are zero.
type Sigil struct {
	Kind SigilKind

	Color Color

	// Paragraph
	Text       string
	LineHeight float32
	Placement  Placement

	// Touch
	Tag uint64
}

// Visible reports whether the sigil paints anything.
func (s Sigil) Visible() bool {
	return s.Kind != SigilTouch
}

// Block is one compiled, absolutely positioned paint instruction handed to
// the screen.
type Block struct {
	Sigil    Sigil
	Width    float32
	Height   float32
	Anchor   Anchor
	Approach float32
}

// blockAt returns a block covering r with the given sigil.
func blockAt(r BlockRange, sigil Sigil) Block {
	return Block{
		Sigil:    sigil,
		Width:    r.Width,
		Height:   r.Height,
		Anchor:   Anchor{X: r.Left, Y: r.Top},
		Approach: r.Approach,
	}
}

// IsHit reports whether (x, y) lies inside the block. The right and bottom
// edges are exclusive.
func (b Block) IsHit(x, y float32) bool {
	left, top := b.Anchor.X, b.Anchor.Y
	return left <= x && x < left+b.Width && top <= y && y < top+b.Height
}
