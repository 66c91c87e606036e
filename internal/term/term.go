// Package term drives a life world in a character terminal via tcell.
package term

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"tgol/internal/app"
)

// Glyphs used for cells.
const (
	CellAlive = '#'
	CellDead  = ' '
)

// Terminal renders a controller's world on a tcell screen and feeds key and
// resize events back to it.
type Terminal struct {
	screen tcell.Screen
	ctrl   *app.Controller
	speed  time.Duration
	style  tcell.Style
}

// New returns a Terminal drawing on an initialised screen.
func New(screen tcell.Screen, ctrl *app.Controller, speed time.Duration) *Terminal {
	return &Terminal{
		screen: screen,
		ctrl:   ctrl,
		speed:  speed,
		style:  tcell.StyleDefault,
	}
}

// Run loops until the user quits or ctx is cancelled. Events are read on a
// separate goroutine and handed to the loop, so only Run touches the world.
// The caller finalises the screen afterwards.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(t.speed)
	defer ticker.Stop()

	t.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			quit, err := t.Handle(ev)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
			t.Draw()
		case <-ticker.C:
			t.ctrl.Tick()
			t.Draw()
		}
	}
}

// Handle applies one screen event and reports whether the loop should stop.
func (t *Terminal) Handle(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true, nil
		}
		if ev.Key() == tcell.KeyRune {
			return t.ctrl.Apply(app.CommandForKey(ev.Rune())), nil
		}
	case *tcell.EventResize:
		t.screen.Sync()
		w, h := ev.Size()
		changed, err := t.ctrl.Fit(w, h)
		if err != nil {
			return false, err
		}
		if changed {
			world := t.ctrl.World()
			log.Printf("resized world to %dx%d", world.Rows(), world.Cols())
		}
	}
	return false, nil
}

// Draw paints the visible part of the board and the status bar.
func (t *Terminal) Draw() {
	t.screen.Clear()
	w, h := t.screen.Size()
	world := t.ctrl.World()

	rows := min(world.Rows(), h-2)
	cols := min(world.Cols(), w)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			glyph := CellDead
			if world.Alive(r, c) {
				glyph = CellAlive
			}
			t.screen.SetContent(c, r, glyph, nil, t.style)
		}
	}

	if h > 0 {
		t.drawStatus(h-1, w)
	}
	t.screen.Show()
}

// drawStatus writes the status text on row y, padded with spaces to width w.
func (t *Terminal) drawStatus(y, w int) {
	status := []rune(t.ctrl.Status())
	for x := 0; x < w; x++ {
		ch := ' '
		if x < len(status) {
			ch = status[x]
		}
		t.screen.SetContent(x, y, ch, nil, t.style)
	}
}
