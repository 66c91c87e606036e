package app

import (
	"fmt"

	"tgol/pkg/sims/life"
)

// Command is a front-end independent user action.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandPause
	CommandStep
	CommandReseed
)

// Key bindings shared by every front-end.
const (
	KeyQuit   = 'q'
	KeyPause  = ' '
	KeyStep   = 's'
	KeyReseed = 'r'
)

// CommandForKey maps a typed character to its command.
func CommandForKey(r rune) Command {
	switch r {
	case KeyQuit:
		return CommandQuit
	case KeyPause:
		return CommandPause
	case KeyStep:
		return CommandStep
	case KeyReseed:
		return CommandReseed
	}
	return CommandNone
}

// Controller owns a World on behalf of a front-end and applies user commands,
// ticks and geometry changes to it. All calls must come from one goroutine.
type Controller struct {
	world   *life.World
	minRows int
	minCols int
}

// NewController wraps w. Grid sizes derived from the screen never drop below
// minRows x minCols.
func NewController(w *life.World, minRows, minCols int) *Controller {
	return &Controller{world: w, minRows: max(minRows, 1), minCols: max(minCols, 1)}
}

// World returns the controlled world for rendering.
func (c *Controller) World() *life.World { return c.world }

// Apply executes cmd and reports whether the front-end should quit.
func (c *Controller) Apply(cmd Command) bool {
	switch cmd {
	case CommandQuit:
		return true
	case CommandPause:
		c.world.SetRunning(!c.world.Running())
	case CommandStep:
		if !c.world.Running() {
			c.world.Step()
		}
	case CommandReseed:
		c.world.Reseed()
	}
	return false
}

// Tick advances the world when it is running.
func (c *Controller) Tick() {
	if c.world.Running() {
		c.world.Step()
	}
}

// GridSize returns the board size for a screen of w x h character cells,
// reserving two lines for the status bar.
func (c *Controller) GridSize(w, h int) (rows, cols int) {
	return max(c.minRows, h-2), max(c.minCols, w)
}

// Fit resizes the world to match a screen of w x h cells. It reports whether
// the board changed size.
func (c *Controller) Fit(w, h int) (bool, error) {
	rows, cols := c.GridSize(w, h)
	if rows == c.world.Rows() && cols == c.world.Cols() {
		return false, nil
	}
	if err := c.world.Resize(rows, cols); err != nil {
		return false, fmt.Errorf("resize to %dx%d: %w", rows, cols, err)
	}
	return true, nil
}

// Status renders the one-line status bar text.
func (c *Controller) Status() string {
	state := "PAUSED"
	if c.world.Running() {
		state = "RUNNING"
	}
	return fmt.Sprintf(" G: %-10d | %-8s | %s | Q: %c, P: space, S: %c, R: %c ",
		c.world.Generation(), state, c.world.Rule().Label(), KeyQuit, KeyStep, KeyReseed)
}
