package patchgl

import (
	"math/rand"
	"testing"
)

func TestSplitWidth(t *testing.T) {
	r := NewBlockRange(10, 20, 100, 50)
	tests := []struct {
		name      string
		right     float32
		wantLeft  float32
		wantRight float32
	}{
		{"inside", 30, 70, 30},
		{"zero", 0, 100, 0},
		{"negative clamps", -5, 100, 0},
		{"too wide clamps", 150, 0, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := r.SplitWidth(tt.right)
			if left.Width != tt.wantLeft || right.Width != tt.wantRight {
				t.Fatalf("widths = %v,%v want %v,%v", left.Width, right.Width, tt.wantLeft, tt.wantRight)
			}
			if left.Left != 10 || right.Left != 10+tt.wantLeft {
				t.Errorf("lefts = %v,%v", left.Left, right.Left)
			}
			if left.Width+right.Width != r.Width {
				t.Errorf("widths do not sum to %v", r.Width)
			}
			if left.Top != r.Top || right.Height != r.Height {
				t.Error("vertical extent changed")
			}
		})
	}
}

func TestSplitPartitionsExactly(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100000; i++ {
		extent := rng.Float32() * 1000
		far := rng.Float32()*1100 - 10
		r := NewBlockRange(rng.Float32()*50, rng.Float32()*50, extent, extent)

		left, right := r.SplitWidth(far)
		if left.Width+right.Width != extent || left.Width < 0 || right.Width < 0 {
			t.Fatalf("SplitWidth(%v) of %v = %v + %v", far, extent, left.Width, right.Width)
		}
		if right.Left != r.Left+left.Width {
			t.Fatalf("SplitWidth(%v) of %v left a gap: %v vs %v", far, extent, right.Left, r.Left+left.Width)
		}

		top, bottom := r.SplitHeight(far)
		if top.Height+bottom.Height != extent || top.Height < 0 || bottom.Height < 0 {
			t.Fatalf("SplitHeight(%v) of %v = %v + %v", far, extent, top.Height, bottom.Height)
		}
	}
}

func TestSplitHeight(t *testing.T) {
	r := NewBlockRange(0, 10, 100, 60).WithApproach(3)
	top, bottom := r.SplitHeight(20)
	if top.Height != 40 || bottom.Height != 20 {
		t.Fatalf("heights = %v,%v want 40,20", top.Height, bottom.Height)
	}
	if bottom.Top != 50 {
		t.Errorf("bottom.Top = %v, want 50", bottom.Top)
	}
	if top.Approach != 3 || bottom.Approach != 3 {
		t.Error("approach not preserved")
	}
}

func TestSplitLeftTop(t *testing.T) {
	r := NewBlockRange(0, 0, 100, 60)
	left, rest := r.SplitLeft(25)
	if left.Left != 0 || left.Width != 25 {
		t.Errorf("left = %+v", left)
	}
	if rest.Left != 25 || rest.Width != 75 {
		t.Errorf("rest = %+v", rest)
	}

	top, below := r.SplitTop(10)
	if top.Top != 0 || top.Height != 10 {
		t.Errorf("top = %+v", top)
	}
	if below.Top != 10 || below.Height != 50 {
		t.Errorf("below = %+v", below)
	}
}

func TestWithPadding(t *testing.T) {
	r := NewBlockRange(0, 0, 100, 40)

	p := r.WithPadding(10, 5)
	if p != (BlockRange{Left: 10, Top: 5, Width: 80, Height: 30}) {
		t.Errorf("padded = %+v", p)
	}

	p = r.WithPadding(-10, -5)
	if p != r {
		t.Errorf("negative padding changed range: %+v", p)
	}

	p = r.WithPadding(60, 30)
	if p.Width != 0 || p.Height != 0 {
		t.Errorf("over-padding should clamp to zero, got %vx%v", p.Width, p.Height)
	}
}

func TestWithApproach(t *testing.T) {
	r := NewBlockRange(0, 0, 1, 1).WithApproach(2).WithMoreApproach(0.5)
	if r.Approach != 2.5 {
		t.Errorf("Approach = %v, want 2.5", r.Approach)
	}
}

func TestBlockRangeContains(t *testing.T) {
	r := NewBlockRange(10, 10, 20, 20)
	if !r.Contains(10, 10) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(30, 15) || r.Contains(15, 30) {
		t.Error("right and bottom edges should be outside")
	}
}
