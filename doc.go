// Package patchgl is a declarative, reactive 2D UI layer for [Ebitengine].
//
// An application describes each frame as an immutable [Flood] tree. A window
// actor compiles the tree against the current viewport into a [Blocklist] of
// absolutely positioned paint blocks, sends the blocks to a screen, and
// turns touches, signals and timeouts back into application messages.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window and wires
// the window actor, the director and an [App] update/draw loop for you:
//
//	type Msg int
//	app := patchgl.App[Msg, int]{
//		Update: func(n *int, m Msg) { *n += int(m) },
//		Draw: func(n int) patchgl.Flood[Msg] {
//			label := patchgl.TextFlood[Msg](strconv.Itoa(n), patchgl.ColorBlack, patchgl.PlacementCenter)
//			return label.Sense(patchgl.Touch[Msg](1, patchgl.TouchPhases[Msg]{End: 1}))
//		},
//	}
//	patchgl.Run(patchgl.RunConfig{Title: "Counter"}, app, 0)
//
// # Floods
//
// Leaves are [ColorFlood] and [TextFlood]. Composites split a range with
// [Barrier], inset it with [Vessel], stack one flood in front of another with
// [Sediment], attach a sensor with [Ripple], or hand a region to another
// renderer with [Escape]. Sizes are [Length] expressions resolved against
// the range being split, so layouts stay proportional:
//
//	header := patchgl.ColorFlood[Msg](patchgl.ColorBlue)
//	body := patchgl.ColorFlood[Msg](patchgl.ColorWhite)
//	page := body.Beside(patchgl.Top(patchgl.FingerTip), header)
//
// # Versions
//
// Signals and timeouts carry a [Version]. Each redraw re-declares them; the
// window fires one only when its version upgrades the version recorded for
// the same id, so an unchanged redraw is a no-op. Bump the [Id] in the model
// to fire again.
//
// # Debug
//
// [SetDebugMode] logs per-cycle compile and dispatch timing to stderr.
//
// [Ebitengine]: https://ebitengine.org
package patchgl
