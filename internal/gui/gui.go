//go:build ebiten

// Package gui drives a life world in an ebiten window.
package gui

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tgol/internal/app"
	"tgol/internal/render"
	"tgol/pkg/core"
)

// Game adapts a controller to the ebiten.Game interface.
type Game struct {
	ctrl    *app.Controller
	painter *render.GridPainter
	scale   int
}

// New constructs a Game for the provided controller.
func New(ctrl *app.Controller, scale int) *Game {
	return &Game{
		ctrl:    ctrl,
		painter: render.NewGridPainter(render.DefaultPalette),
		scale:   scale,
	}
}

var keyCommands = []struct {
	key ebiten.Key
	cmd app.Command
}{
	{ebiten.KeyQ, app.CommandQuit},
	{ebiten.KeyEscape, app.CommandQuit},
	{ebiten.KeySpace, app.CommandPause},
	{ebiten.KeyS, app.CommandStep},
	{ebiten.KeyR, app.CommandReseed},
}

// Update handles key presses and advances the simulation one tick.
func (g *Game) Update() error {
	for _, kc := range keyCommands {
		if inpututil.IsKeyJustPressed(kc.key) && g.ctrl.Apply(kc.cmd) {
			return ebiten.Termination
		}
	}
	g.ctrl.Tick()
	return nil
}

// Draw renders the board and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.ctrl.World(), g.scale)
	ebitenutil.DebugPrint(screen, g.ctrl.Status())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.ctrl.World().Size()
	return s.W * g.scale, s.H * g.scale
}

// Run opens a window and blocks until it is closed.
func Run(ctrl *app.Controller, scale int, speed time.Duration) error {
	var sim core.Sim = ctrl.World()
	s := sim.Size()
	ebiten.SetWindowTitle(sim.Name() + " — " + ctrl.World().Rule().Label())
	ebiten.SetWindowSize(s.W*scale, s.H*scale)
	ebiten.SetTPS(max(1, int(time.Second/speed)))

	if err := ebiten.RunGame(New(ctrl, scale)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
