package material

import (
	"github.com/phanxgames/patchgl"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upper = cases.Upper(language.Und)

// Label returns s the way buttons display it.
func Label(s string) string {
	return upper.String(s)
}

// ButtonMsg is the touch-level message of a button.
type ButtonMsg uint8

const (
	ButtonNone    ButtonMsg = iota // ignored; sent for moves
	ButtonPress                    // touch began on the button
	ButtonUnpress                  // the gesture was cancelled
	ButtonRelease                  // touch ended
)

// PressState is whether a button is held.
type PressState uint8

const (
	Up PressState = iota
	Down
)

// ButtonModel is the state a button keeps in the application model. The zero
// value is an unpressed button that has never been clicked.
type ButtonModel struct {
	Press   PressState
	ClickID patchgl.Id
}

// Update applies msg. A release bumps ClickID only when it ends a press, so
// the click signal fires once per completed press.
func (m *ButtonModel) Update(msg ButtonMsg) {
	switch msg {
	case ButtonPress:
		m.Press = Down
	case ButtonUnpress:
		m.Press = Up
	case ButtonRelease:
		if m.Press == Down {
			m.Press = Up
			m.ClickID = m.ClickID.Bump()
		}
	}
}

// ButtonKind selects the button style.
type ButtonKind uint8

const (
	PlainFlat   ButtonKind = iota // text in the primary text color
	ColoredFlat                   // text in the secondary color
)

// Button describes one flat button. ID addresses both its touch sensor and
// its click signal.
type Button[Msg any] struct {
	ID        uint64
	Label     string
	Kind      ButtonKind
	Placement patchgl.Placement
	Palette   Palette
	Model     ButtonModel
	// Wrap lifts touch-level messages into the application's message type.
	Wrap func(ButtonMsg) Msg
	// Click is delivered once each time Model.ClickID is bumped.
	Click Msg
}

// Flood renders the button with its touch sensor and click signal attached.
func (b Button[Msg]) Flood() patchgl.Flood[Msg] {
	textColor := b.Palette.LightBackgroundTextPrimary
	if b.Kind == ColoredFlat {
		textColor = b.Palette.Secondary
	}
	surface := patchgl.TextFlood[Msg](Label(b.Label), textColor, b.Placement).
		Pad(patchgl.Dual(patchgl.Spacing, patchgl.Over(patchgl.Full, 4)))
	if b.Model.Press == Down {
		surface = surface.Over(patchgl.ColorFlood[Msg](b.Palette.LightBackgroundDivider))
	}

	wrap := b.Wrap
	if wrap == nil {
		wrap = func(ButtonMsg) Msg {
			var zero Msg
			return zero
		}
	}
	touch := patchgl.Touch[Msg](b.ID, patchgl.TouchPhases[Msg]{
		Begin:  wrap(ButtonPress),
		Move:   wrap(ButtonNone),
		End:    wrap(ButtonRelease),
		Cancel: wrap(ButtonUnpress),
	})
	click := patchgl.SignalSensor(patchgl.NewSignal(b.ID, b.Click, b.Model.ClickID))
	return surface.Sense(touch).Sense(click)
}
