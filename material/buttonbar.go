package material

import "github.com/phanxgames/patchgl"

// ButtonIntent selects how prominently a bar button is drawn.
type ButtonIntent uint8

const (
	Call    ButtonIntent = iota // the action the bar exists for
	Provide                     // an alternative action
	Inform                      // disabled-looking; still touchable
)

// BarButton is one entry of a ButtonBar.
type BarButton[Msg any] struct {
	ID     uint64
	Label  string
	Intent ButtonIntent
	Click  Msg
}

// ButtonBar lays buttons out right-aligned in a row, each sized to its
// label, separated by half a spacing.
type ButtonBar[Msg any] struct {
	Palette Palette
	Buttons []BarButton[Msg]
	// Models holds one ButtonModel per entry of Buttons. Missing entries
	// draw as never-touched buttons.
	Models []ButtonModel
	// Wrap lifts a touch-level message for the button at index i.
	Wrap func(i int, msg ButtonMsg) Msg
}

// barPadding is the inset between a bar button's edge and its label.
var barPadding = patchgl.Over(patchgl.Spacing, 2)

// Flood renders the bar.
func (bar ButtonBar[Msg]) Flood() patchgl.Flood[Msg] {
	row := patchgl.ColorFlood[Msg](bar.Palette.Transparent)
	for i, btn := range bar.Buttons {
		var model ButtonModel
		if i < len(bar.Models) {
			model = bar.Models[i]
		}
		label := Label(btn.Label)
		width := patchgl.Plus(patchgl.TextWidth(label), patchgl.Times(barPadding, 2))
		spacer := patchgl.ColorFlood[Msg](bar.Palette.Transparent)
		row = row.
			Beside(patchgl.Right(width), bar.button(i, btn, model, label)).
			Beside(patchgl.Right(barPadding), spacer)
	}
	return row
}

func (bar ButtonBar[Msg]) button(i int, btn BarButton[Msg], model ButtonModel, label string) patchgl.Flood[Msg] {
	var textColor patchgl.Color
	switch btn.Intent {
	case Call:
		textColor = bar.Palette.Secondary
	case Provide:
		textColor = bar.Palette.LightBackgroundTextPrimary
	default:
		textColor = bar.Palette.LightBackgroundTextDisabled
	}
	surface := patchgl.TextFlood[Msg](label, textColor, patchgl.PlacementCenter).Pad(patchgl.Uniform(barPadding))

	feedback := bar.Palette.Transparent
	if model.Press == Down {
		feedback = bar.Palette.LightBackgroundDivider
	}
	surface = surface.Over(patchgl.ColorFlood[Msg](feedback))

	wrap := func(m ButtonMsg) Msg {
		if bar.Wrap == nil {
			var zero Msg
			return zero
		}
		return bar.Wrap(i, m)
	}
	touch := patchgl.Touch[Msg](btn.ID, patchgl.TouchPhases[Msg]{
		Begin:  wrap(ButtonPress),
		Move:   wrap(ButtonNone),
		End:    wrap(ButtonRelease),
		Cancel: wrap(ButtonUnpress),
	})
	click := patchgl.SignalSensor(patchgl.NewSignal(btn.ID, btn.Click, model.ClickID))
	return surface.Sense(touch).Sense(click)
}
