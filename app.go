package patchgl

import (
	"context"
	"errors"
)

// App is an update/draw pair over a comparable model. Update applies one
// message to the model in place; Draw renders the model as a frame.
type App[Msg any, Mdl comparable] struct {
	Update func(*Mdl, Msg)
	Draw   func(Mdl) Flood[Msg]

	// ObserverSize is the capacity of the message channel registered with
	// the window. Zero means 64.
	ObserverSize int
}

// Run registers as w's observer, sends the first frame, then applies every
// message the window delivers and redraws whenever the model changes. It
// returns the final model when the window stops or ctx ends; the error is
// nil after an orderly close.
func (a App[Msg, Mdl]) Run(ctx context.Context, w *Window[Msg], model Mdl) (Mdl, error) {
	size := a.ObserverSize
	if size <= 0 {
		size = 64
	}
	observer := make(chan Msg, size)
	if err := w.Observe(observer); err != nil {
		return model, err
	}

	// settle applies whatever the window delivered before it stopped.
	var pending []Msg
	settle := func(err error) (Mdl, error) {
		for _, m := range pending {
			a.Update(&model, m)
		}
		drainInto(observer, func(m Msg) { a.Update(&model, m) })
		return model, stopErr(w, err)
	}

	if err := floodDraining(ctx, w, a.Draw(model), observer, &pending); err != nil {
		return settle(err)
	}
	for {
		var m Msg
		if len(pending) > 0 {
			m = pending[0]
			pending = pending[1:]
		} else {
			select {
			case m = <-observer:
			case <-w.Done():
				return settle(ErrWindowClosed)
			case <-ctx.Done():
				return model, ctx.Err()
			}
		}

		before := model
		a.Update(&model, m)
		if model == before {
			continue
		}
		if err := floodDraining(ctx, w, a.Draw(model), observer, &pending); err != nil {
			return settle(err)
		}
	}
}

// floodDraining sends f to w while continuing to receive from observer, so
// a window blocked on delivering a message to this app cannot deadlock
// against it. Messages received meanwhile are queued on pending.
func floodDraining[Msg any](ctx context.Context, w *Window[Msg], f Flood[Msg], observer <-chan Msg, pending *[]Msg) error {
	msg := WindowMsg[Msg]{Kind: WindowFlood, Flood: f}
	for {
		select {
		case w.inbox <- msg:
			return nil
		case m := <-observer:
			*pending = append(*pending, m)
		case <-w.done:
			return ErrWindowClosed
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// stopErr maps a failed send to the reason the window stopped.
func stopErr[Msg any](w *Window[Msg], err error) error {
	if errors.Is(err, ErrWindowClosed) {
		return w.Err()
	}
	return err
}

// drainInto applies f to every message already buffered on ch.
func drainInto[Msg any](ch <-chan Msg, f func(Msg)) {
	for {
		select {
		case m := <-ch:
			f(m)
		default:
			return
		}
	}
}
