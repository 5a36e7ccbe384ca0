package patchgl

// BlockRange is the rectangle and depth a subtree is compiled into. It is
// recreated and narrowed at every step of compilation and never retained.
type BlockRange struct {
	Left, Top     float32
	Width, Height float32
	Approach      float32
}

// NewBlockRange returns a range at approach 0.
func NewBlockRange(left, top, width, height float32) BlockRange {
	return BlockRange{Left: left, Top: top, Width: width, Height: height}
}

// WithApproach returns r at the given depth.
func (r BlockRange) WithApproach(approach float32) BlockRange {
	r.Approach = approach
	return r
}

// WithMoreApproach returns r moved nearer by more.
func (r BlockRange) WithMoreApproach(more float32) BlockRange {
	return r.WithApproach(r.Approach + more)
}

// WithPadding insets r by hPad on the left and right and vPad on the top and
// bottom. Negative pads are treated as zero and the resulting extents never go
// below zero.
func (r BlockRange) WithPadding(hPad, vPad float32) BlockRange {
	hPad, vPad = max(hPad, 0), max(vPad, 0)
	return BlockRange{
		Left:     r.Left + hPad,
		Top:      r.Top + vPad,
		Width:    max(r.Width-2*hPad, 0),
		Height:   max(r.Height-2*vPad, 0),
		Approach: r.Approach,
	}
}

// SplitWidth partitions r into a left part and a right part of width right.
// right is clamped to [0, Width], and the two widths sum exactly to Width.
func (r BlockRange) SplitWidth(right float32) (left, rightRange BlockRange) {
	leftWidth, rightWidth := partition(r.Width, right)
	left, rightRange = r, r
	left.Width = leftWidth
	rightRange.Left = r.Left + leftWidth
	rightRange.Width = rightWidth
	return left, rightRange
}

// SplitHeight partitions r into a top part and a bottom part of height bottom.
func (r BlockRange) SplitHeight(bottom float32) (top, bottomRange BlockRange) {
	topHeight, bottomHeight := partition(r.Height, bottom)
	top, bottomRange = r, r
	top.Height = topHeight
	bottomRange.Top = r.Top + topHeight
	bottomRange.Height = bottomHeight
	return top, bottomRange
}

// partition splits extent into (extent-far, far) with far clamped to
// [0, extent]. The larger part is fixed first and kept in [extent/2, extent];
// the smaller is extent minus the larger, which float32 computes exactly, so
// the two parts add back to extent without rounding.
func partition(extent, far float32) (near, farPart float32) {
	far = clampExtent(far, extent)
	farIsSmall := far <= extent-far
	big := max(extent-min(far, extent-far), extent/2)
	small := extent - big
	if farIsSmall {
		return big, small
	}
	return small, big
}

// SplitLeft partitions r into a left part of width left and the rest.
func (r BlockRange) SplitLeft(left float32) (leftRange, rest BlockRange) {
	leftRange, rest = r.SplitWidth(r.Width - clampExtent(left, r.Width))
	return leftRange, rest
}

// SplitTop partitions r into a top part of height top and the rest.
func (r BlockRange) SplitTop(top float32) (topRange, rest BlockRange) {
	topRange, rest = r.SplitHeight(r.Height - clampExtent(top, r.Height))
	return topRange, rest
}

// Contains reports whether (x, y) lies inside r. The right and bottom edges
// are exclusive so that adjacent ranges never both contain a point.
func (r BlockRange) Contains(x, y float32) bool {
	return x >= r.Left && x < r.Left+r.Width &&
		y >= r.Top && y < r.Top+r.Height
}

func clampExtent(v, limit float32) float32 {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}
