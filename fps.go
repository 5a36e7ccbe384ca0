package patchgl

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsWidget is an overlay showing the current FPS and TPS in the top-left
// corner of the screen. The text is refreshed every ~0.5 seconds.
type fpsWidget struct {
	img     *ebiten.Image
	elapsed float64
}

// WithFPS enables the FPS overlay.
func WithFPS() ScreenOption {
	return func(s *EbitenScreen) { s.fps = &fpsWidget{} }
}

func (w *fpsWidget) update(dt float64) {
	w.elapsed += dt
	if w.img != nil && w.elapsed < 0.5 {
		return
	}
	w.elapsed = 0
	if w.img == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		w.img = ebiten.NewImage(100, 32)
	}
	w.img.Clear()
	w.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (w *fpsWidget) draw(dst *ebiten.Image) {
	if w.img == nil {
		return
	}
	dst.DrawImage(w.img, nil)
}
