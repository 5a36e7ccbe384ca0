package patchgl

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func colorBlock(c Color, left, top, width, height, approach float32) Block {
	return Block{
		Sigil:    Sigil{Kind: SigilColor, Color: c},
		Width:    width,
		Height:   height,
		Anchor:   Anchor{X: left, Y: top},
		Approach: approach,
	}
}

func touchBlock(tag uint64, left, top, width, height, approach float32) Block {
	return Block{
		Sigil:    Sigil{Kind: SigilTouch, Tag: tag},
		Width:    width,
		Height:   height,
		Anchor:   Anchor{X: left, Y: top},
		Approach: approach,
	}
}

func TestCompileBlocks(t *testing.T) {
	red := ColorFlood[int](ColorRed)
	blue := ColorFlood[int](ColorBlue)
	r := NewBlockRange(0, 0, 100, 50)

	tests := []struct {
		name     string
		flood    Flood[int]
		measurer TextMeasurer
		want     []Block
	}{
		{
			name:  "color",
			flood: red,
			want:  []Block{colorBlock(ColorRed, 0, 0, 100, 50, 0)},
		},
		{
			name:  "text",
			flood: TextFlood[int]("hi", ColorBlack, PlacementStart),
			want: []Block{{
				Sigil:  Sigil{Kind: SigilParagraph, Color: ColorBlack, Text: "hi", LineHeight: 50, Placement: PlacementStart},
				Width:  100,
				Height: 50,
			}},
		},
		{
			name:  "barrier right",
			flood: red.Beside(Right(Pixels(30)), blue),
			want: []Block{
				colorBlock(ColorRed, 0, 0, 70, 50, 0),
				colorBlock(ColorBlue, 70, 0, 30, 50, 0),
			},
		},
		{
			name:  "barrier left",
			flood: red.Beside(Left(Pixels(30)), blue),
			want: []Block{
				colorBlock(ColorRed, 30, 0, 70, 50, 0),
				colorBlock(ColorBlue, 0, 0, 30, 50, 0),
			},
		},
		{
			name:  "barrier top",
			flood: red.Beside(Top(Pixels(10)), blue),
			want: []Block{
				colorBlock(ColorRed, 0, 10, 100, 40, 0),
				colorBlock(ColorBlue, 0, 0, 100, 10, 0),
			},
		},
		{
			name:  "barrier bottom resolves against height",
			flood: red.Beside(Bottom(Half), blue),
			want: []Block{
				colorBlock(ColorRed, 0, 0, 100, 25, 0),
				colorBlock(ColorBlue, 0, 25, 100, 25, 0),
			},
		},
		{
			name:  "barrier wider than range",
			flood: red.Beside(Right(Pixels(500)), blue),
			want: []Block{
				colorBlock(ColorRed, 0, 0, 0, 50, 0),
				colorBlock(ColorBlue, 0, 0, 100, 50, 0),
			},
		},
		{
			name:     "barrier by text width",
			flood:    red.Beside(Right(TextWidth("abc")), blue),
			measurer: MonoMeasurer{Advance: 0.5},
			want: []Block{
				colorBlock(ColorRed, 0, 0, 25, 50, 0),
				colorBlock(ColorBlue, 25, 0, 75, 50, 0),
			},
		},
		{
			name:  "uniform padding",
			flood: red.Pad(Uniform(Pixels(5))),
			want:  []Block{colorBlock(ColorRed, 5, 5, 90, 40, 0)},
		},
		{
			name:  "uniform padding resolves against the long side",
			flood: red.Pad(Uniform(Times(Full, 0.1))),
			want:  []Block{colorBlock(ColorRed, 10, 10, 80, 30, 0)},
		},
		{
			name:  "dual padding",
			flood: red.Pad(Dual(Pixels(10), Pixels(5))),
			want:  []Block{colorBlock(ColorRed, 10, 5, 80, 40, 0)},
		},
		{
			name:  "horizontal padding",
			flood: red.Pad(Horizontal(Pixels(10))),
			want:  []Block{colorBlock(ColorRed, 10, 0, 80, 50, 0)},
		},
		{
			name:  "vertical padding",
			flood: red.Pad(Vertical(Pixels(10))),
			want:  []Block{colorBlock(ColorRed, 0, 10, 100, 30, 0)},
		},
		{
			name:  "padding larger than range",
			flood: red.Pad(Uniform(Pixels(80))),
			want:  []Block{colorBlock(ColorRed, 80, 80, 0, 0, 0)},
		},
		{
			name:  "behind",
			flood: red.Pad(Behind(CardApproach)),
			want:  []Block{colorBlock(ColorRed, 0, 0, 100, 50, CardApproachPixels)},
		},
		{
			name:  "sediment",
			flood: red.Over(blue),
			want: []Block{
				colorBlock(ColorBlue, 0, 0, 100, 50, 0),
				colorBlock(ColorRed, 0, 0, 100, 50, 1),
			},
		},
		{
			name:  "sediment just below",
			flood: Sediment(SiltJustBelow, blue, red),
			want: []Block{
				colorBlock(ColorBlue, 0, 0, 100, 50, 0),
				colorBlock(ColorRed, 0, 0, 100, 50, MinimumStep),
			},
		},
		{
			name:  "nested sediment",
			flood: red.Over(blue).Over(ColorFlood[int](ColorGreen)),
			want: []Block{
				colorBlock(ColorGreen, 0, 0, 100, 50, 0),
				colorBlock(ColorBlue, 0, 0, 100, 50, 1),
				colorBlock(ColorRed, 0, 0, 100, 50, 2),
			},
		},
		{
			name:  "touch sits at subtree depth",
			flood: red.Over(blue).Sense(Touch[int](7, TouchPhases[int]{})),
			want: []Block{
				colorBlock(ColorBlue, 0, 0, 100, 50, 0),
				colorBlock(ColorRed, 0, 0, 100, 50, 1),
				touchBlock(7, 0, 0, 100, 50, 1),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompileWith(Compiler{Measurer: tt.measurer}, r, tt.flood)
			if diff := cmp.Diff(tt.want, got.Blocks); diff != "" {
				t.Errorf("blocks mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompileMaxApproach(t *testing.T) {
	r := NewBlockRange(0, 0, 10, 10).WithApproach(5)
	list := Compile(r, Barrier(Right(Half), ColorFlood[int](ColorRed), ColorFlood[int](ColorBlue)))
	if list.MaxApproach != 5 {
		t.Errorf("MaxApproach = %v, want 5", list.MaxApproach)
	}
	for _, b := range list.Blocks {
		if b.Approach < r.Approach {
			t.Errorf("block %+v is behind its range", b)
		}
	}

	list = Compile(NewBlockRange(0, 0, 10, 10), ColorFlood[int](ColorRed).Over(ColorFlood[int](ColorBlue)).Pad(Behind(Pixels(3))))
	if list.MaxApproach != 4 {
		t.Errorf("MaxApproach = %v, want 4", list.MaxApproach)
	}
}

func TestCompileSensors(t *testing.T) {
	sig := NewSignal(3, "clicked", EnabledId())
	tmo := VersionAt(Timeout[string]{ID: 4, Msg: "late", Duration: time.Second}, EnabledId())
	flood := ColorFlood[string](ColorRed).
		Sense(Touch[string](1, TouchPhases[string]{Begin: "a"})).
		Sense(SignalSensor(sig)).
		Beside(Right(Half), ColorFlood[string](ColorBlue).
			Sense(Touch[string](2, TouchPhases[string]{Begin: "b"})).
			Sense(TimeoutSensor(tmo)))

	list := Compile(NewBlockRange(0, 0, 100, 100), flood)

	if diff := cmp.Diff([]uint64{1, 2}, list.TouchTags()); diff != "" {
		t.Errorf("touch tags (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Signal[string]{sig}, list.Signals); diff != "" {
		t.Errorf("signals (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Version[Timeout[string]]{tmo}, list.Timeouts); diff != "" {
		t.Errorf("timeouts (-want +got):\n%s", diff)
	}
	a, ok := list.TouchAdapter(2)
	if !ok || a.Adapt(TouchMsg{Phase: TouchBegin}) != "b" {
		t.Error("adapter for tag 2 not registered")
	}
}

func TestCompileEscape(t *testing.T) {
	var seen BlockRange
	raft := Raft[string]{ID: 9, Adapter: func(id uint64, r BlockRange) string {
		seen = r
		if id != 9 {
			t.Errorf("adapter got id %d", id)
		}
		return "raft"
	}}
	list := Compile(NewBlockRange(0, 0, 100, 40), ColorFlood[string](ColorRed).Beside(Right(Pixels(25)), Escape(raft)))

	want := NewBlockRange(75, 0, 25, 40)
	if seen != want {
		t.Errorf("raft range = %+v, want %+v", seen, want)
	}
	if diff := cmp.Diff([]string{"raft"}, list.RaftMsgs); diff != "" {
		t.Errorf("raft msgs (-want +got):\n%s", diff)
	}
	last := list.Blocks[len(list.Blocks)-1]
	if last.Sigil.Kind != SigilPlaceholder || last.Sigil.Color != placeholderColor {
		t.Errorf("escape block = %+v", last.Sigil)
	}
}

func TestCompileWithMeasurer(t *testing.T) {
	c := Compiler{Measurer: MonoMeasurer{Advance: 1}}
	list := CompileWith(c, NewBlockRange(0, 0, 100, 10),
		ColorFlood[int](ColorRed).Beside(Right(TextWidth("abc")), ColorFlood[int](ColorBlue)))
	if got := list.Blocks[1].Width; got != 30 {
		t.Errorf("text width split = %v, want 30", got)
	}
}

func TestCompileDeterministic(t *testing.T) {
	flood := TextFlood[int]("x", ColorBlack, PlacementEnd).
		Pad(Uniform(Spacing)).
		Over(ColorFlood[int](ColorWhite)).
		Beside(Bottom(FingerTip), ColorFlood[int](ColorGrey))
	r := NewBlockRange(0, 0, 320, 400)
	if diff := cmp.Diff(Compile(r, flood).Blocks, Compile(r, flood).Blocks); diff != "" {
		t.Errorf("compile is not deterministic:\n%s", diff)
	}
}
