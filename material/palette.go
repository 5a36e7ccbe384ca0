// Package material provides Material Design colors, metrics and components
// built from patchgl floods.
package material

import "github.com/phanxgames/patchgl"

// Material colors.
var (
	LightBackground              = patchgl.RGB(0xfa, 0xfa, 0xfa)
	LightBackgroundCard          = patchgl.ColorWhite
	LightBackgroundTextPrimary   = patchgl.ColorBlack.WithAlpha(0.87)
	LightBackgroundTextSecondary = patchgl.ColorBlack.WithAlpha(0.54)
	LightBackgroundTextDisabled  = patchgl.ColorBlack.WithAlpha(0.38)
	LightBackgroundDivider       = patchgl.ColorBlack.WithAlpha(0.12)
	DarkBackground               = patchgl.RGB(0x30, 0x30, 0x30)
	DarkBackgroundCard           = patchgl.RGB(0x42, 0x42, 0x42)
	DarkBackgroundTextPrimary    = patchgl.ColorWhite
	DarkBackgroundTextSecondary  = patchgl.ColorWhite.WithAlpha(0.70)
	DarkBackgroundDivider        = patchgl.ColorWhite.WithAlpha(0.12)
	Pink500                      = patchgl.RGB(0xe9, 0x1e, 0x64)
	PinkA200                     = patchgl.RGB(0xff, 0x40, 0x81)
	PurpleA200                   = patchgl.RGB(0xe0, 0x40, 0xfb)
	PurpleA400                   = patchgl.RGB(0xd5, 0x00, 0xf9)
	Transparent                  = patchgl.Color{}
)

// Palette is the set of colors components draw with.
type Palette struct {
	Primary                     patchgl.Color
	Secondary                   patchgl.Color
	LightBackground             patchgl.Color
	LightBackgroundRaised       patchgl.Color
	LightBackgroundTextPrimary  patchgl.Color
	LightBackgroundTextDisabled patchgl.Color
	LightBackgroundDivider      patchgl.Color
	Transparent                 patchgl.Color
}

// DefaultPalette is pink primary over a light background.
func DefaultPalette() Palette {
	return Palette{
		Primary:                     Pink500,
		Secondary:                   PurpleA400,
		LightBackground:             LightBackground,
		LightBackgroundRaised:       LightBackgroundCard,
		LightBackgroundTextPrimary:  LightBackgroundTextPrimary,
		LightBackgroundTextDisabled: LightBackgroundTextDisabled,
		LightBackgroundDivider:      LightBackgroundDivider,
		Transparent:                 Transparent,
	}
}
