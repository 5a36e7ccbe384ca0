package patchgl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"
)

// closeGrace bounds how long Run waits for the window actor after the game
// loop has ended.
const closeGrace = time.Second

// Run opens an Ebitengine window and drives app against it until the window
// is closed. It starts the window actor, the director and the app loop, runs
// the game loop on the calling goroutine, and returns the final model.
//
// opts are applied to the screen after those derived from cfg.
//
// Run must be called from the main goroutine.
func Run[Msg any, Mdl comparable](cfg RunConfig, app App[Msg, Mdl], model Mdl, opts ...ScreenOption) (Mdl, error) {
	cfg = cfg.WithDefaults()
	SetDebugMode(cfg.Debug)

	bg, err := cfg.BackgroundColor()
	if err != nil {
		return model, fmt.Errorf("patchgl: %w", err)
	}
	var font *TTFFont
	if cfg.FontSize > 0 {
		font, err = LoadDefaultFont(cfg.FontSize)
		if err != nil {
			return model, err
		}
	}
	measurer := measurerFor(font)

	var runner *TestRunner
	if cfg.TestScript != "" {
		runner, err = LoadTestScriptFile(cfg.TestScript)
		if err != nil {
			return model, fmt.Errorf("patchgl: %w", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	root := NewBlockRange(0, 0, float32(cfg.Width), float32(cfg.Height))
	w := StartWindow[Msg](ctx, root, WithName(cfg.Title), WithMeasurer(measurer))
	director, directorDone := StartDirector(ctx, w)

	screenOpts := []ScreenOption{WithBackground(bg), WithFont(font)}
	if cfg.ShowFPS {
		screenOpts = append(screenOpts, WithFPS())
	}
	if runner != nil {
		screenOpts = append(screenOpts, WithTestRunner(runner))
	}
	screen := NewEbitenScreen(director, append(screenOpts, opts...)...)

	g, gctx := errgroup.WithContext(ctx)
	final := model
	g.Go(func() error {
		m, err := app.Run(gctx, w, model)
		final = m
		return err
	})

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	runErr := ebiten.RunGame(screen)

	// The game loop can end without the window having asked for it; make
	// sure the director hears about it and the actor gets to close.
	if !screen.Closed() {
		screen.requestClose()
		screen.flushWait(ctx, directorDone)
	}
	select {
	case <-w.Done():
	case <-time.After(closeGrace):
		logger.Printf("%s did not close within %v", w.Name(), closeGrace)
	}
	cancel()

	waitErr := g.Wait()
	if runErr != nil {
		return final, fmt.Errorf("patchgl: run game: %w", runErr)
	}
	if waitErr != nil && !errors.Is(waitErr, context.Canceled) {
		return final, waitErr
	}
	return final, nil
}
