package patchgl

// placeholderColor fills the range of an escaped raft.
var placeholderColor = ColorGrey

// Compiler turns Flood trees into Blocklists. The zero value measures text
// with DefaultMeasurer.
type Compiler struct {
	Measurer TextMeasurer
}

// Compile compiles f into r with the default measurer.
func Compile[Msg any](r BlockRange, f Flood[Msg]) Blocklist[Msg] {
	return CompileWith(Compiler{}, r, f)
}

// CompileWith walks f depth-first against r and returns the absolute blocks
// and subscriptions it produces. It is a pure function of its arguments
// except for calling raft adapters.
func CompileWith[Msg any](c Compiler, r BlockRange, f Flood[Msg]) Blocklist[Msg] {
	m := measurerOrDefault(c.Measurer)
	return compile(m, r, &f)
}

func compile[Msg any](m TextMeasurer, r BlockRange, f *Flood[Msg]) Blocklist[Msg] {
	switch f.Kind {
	case FloodColor:
		list := newBlocklist[Msg](r)
		list.PushBlock(blockAt(r, Sigil{Kind: SigilColor, Color: f.Color}))
		return list

	case FloodText:
		list := newBlocklist[Msg](r)
		list.PushBlock(blockAt(r, Sigil{
			Kind:       SigilParagraph,
			Color:      f.Color,
			Text:       f.Text,
			LineHeight: r.Height,
			Placement:  f.Placement,
		}))
		return list

	case FloodBarrier:
		aRange, bRange := splitRange(m, r, f.Position)
		list := compileChild(m, aRange, f.A)
		list.Append(compileChild(m, bRange, f.B))
		return list

	case FloodVessel:
		return compileChild(m, padRange(m, r, f.Padding), f.A)

	case FloodSediment:
		list := compileChild(m, r, f.A)
		near := compileChild(m, r.WithApproach(f.Silt.AddTo(list.MaxApproach)), f.B)
		list.Append(near)
		return list

	case FloodRipple:
		return compileRipple(m, r, f)

	case FloodEscape:
		list := newBlocklist[Msg](r)
		list.PushBlock(blockAt(r, Sigil{Kind: SigilPlaceholder, Color: placeholderColor}))
		if f.Raft.Adapter != nil {
			list.RaftMsgs = append(list.RaftMsgs, f.Raft.Adapter(f.Raft.ID, r))
		}
		return list
	}
	return newBlocklist[Msg](r)
}

// compileChild compiles a possibly missing subtree; a nil child compiles to
// nothing.
func compileChild[Msg any](m TextMeasurer, r BlockRange, f *Flood[Msg]) Blocklist[Msg] {
	if f == nil {
		return newBlocklist[Msg](r)
	}
	return compile(m, r, f)
}

func compileRipple[Msg any](m TextMeasurer, r BlockRange, f *Flood[Msg]) Blocklist[Msg] {
	list := compileChild(m, r, f.A)
	s := f.Sensor
	switch s.Kind {
	case SensorTouch:
		// The hit area sits at the subtree's nearest depth so it is found
		// ahead of anything the subtree paints.
		list.PushBlock(blockAt(r.WithApproach(list.MaxApproach), Sigil{Kind: SigilTouch, Tag: s.Tag}))
		if s.Adapter != nil {
			list.PushTouchAdapter(s.Tag, s.Adapter)
		}
	case SensorSignal:
		list.Signals = append(list.Signals, s.Signal)
	case SensorTimeout:
		list.Timeouts = append(list.Timeouts, s.Timeout)
	}
	return list
}

// splitRange resolves a Barrier position and returns the ranges for the
// remainder (a) and the carved edge (b).
func splitRange(m TextMeasurer, r BlockRange, pos Position) (a, b BlockRange) {
	switch pos.Edge {
	case EdgeRight:
		return r.SplitWidth(resolve(pos.Length, r.Width, r.Height, m))
	case EdgeLeft:
		b, a = r.SplitLeft(resolve(pos.Length, r.Width, r.Height, m))
		return a, b
	case EdgeTop:
		b, a = r.SplitTop(resolve(pos.Length, r.Height, r.Width, m))
		return a, b
	default:
		return r.SplitHeight(resolve(pos.Length, r.Height, r.Width, m))
	}
}

// padRange resolves p against r.
func padRange(m TextMeasurer, r BlockRange, p Padding) BlockRange {
	switch p.Kind {
	case PadUniform:
		long, short := max(r.Width, r.Height), min(r.Width, r.Height)
		pad := resolve(p.H, long, short, m)
		return r.WithPadding(pad, pad)
	case PadDual:
		return r.WithPadding(resolve(p.H, r.Width, r.Height, m), resolve(p.V, r.Height, r.Width, m))
	case PadHorizontal:
		return r.WithPadding(resolve(p.H, r.Width, r.Height, m), 0)
	case PadVertical:
		return r.WithPadding(0, resolve(p.V, r.Height, r.Width, m))
	case PadBehind:
		return r.WithMoreApproach(max(resolve(p.H, r.Width, r.Height, m), 0))
	}
	return r
}
