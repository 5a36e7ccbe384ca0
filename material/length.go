package material

import "github.com/phanxgames/patchgl"

// Type scale and component metrics, in pixels.
const (
	Display4Text           patchgl.Pixels = 112
	Display3Text           patchgl.Pixels = 56
	Display2Text           patchgl.Pixels = 45
	Display1Text           patchgl.Pixels = 34
	HeadlineText           patchgl.Pixels = 24
	TitleText              patchgl.Pixels = 20
	SubheadingText         patchgl.Pixels = 16
	Body2Text              patchgl.Pixels = 14
	Body1Text              patchgl.Pixels = 14
	CaptionText            patchgl.Pixels = 12
	ButtonText             patchgl.Pixels = 14
	NavApproach            patchgl.Pixels = 8
	ListItemHeight         patchgl.Pixels = 48
	ListGroupPadding       patchgl.Pixels = 8
	ButtonHeight           patchgl.Pixels = 36
	ButtonTopBottomPadding patchgl.Pixels = 11
)

// ListItemPadding is the horizontal inset of list rows.
const ListItemPadding = patchgl.Spacing

// ButtonWidth is the width of a button labelled text: the label at 16px
// plus three spacings.
func ButtonWidth(text string) patchgl.Length {
	return patchgl.Plus(
		patchgl.Product{A: patchgl.TextUnitWidth(text), B: patchgl.Pixels(16)},
		patchgl.Times(patchgl.Spacing, 3),
	)
}
