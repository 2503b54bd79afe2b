package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/cbodonnell/tilerunner/client/input"
	"github.com/cbodonnell/tilerunner/client/objects"
	"github.com/cbodonnell/tilerunner/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// backgroundColor is the classic platformer sky blue.
var backgroundColor = color.RGBA{110, 132, 174, 255}

// Game implements ebiten.Game, which has Update, Draw and Layout methods.
// Each frame it polls input once, runs however many fixed physics ticks
// are due, then renders once.
type Game struct {
	manager   *game.GameManager
	scheduler *game.Scheduler
	camera    *Camera
	objects   []objects.GameObject
	width     int
	height    int
	debug     bool
}

// NewGameOptions contains options for creating a new Game.
type NewGameOptions struct {
	// Manager drives the simulation. Required.
	Manager *game.GameManager
	// Width and Height are the logical screen dimensions.
	Width  int
	Height int
	// Debug enables the FPS/TPS overlay.
	Debug bool
}

func NewGame(opts NewGameOptions) ebiten.Game {
	camera := NewCamera(opts.Width, opts.Height)
	camera.Jump(opts.Manager.Player().Position, opts.Manager.Level())

	return &Game{
		manager:   opts.Manager,
		scheduler: game.NewScheduler(time.Now()),
		camera:    camera,
		objects: []objects.GameObject{
			objects.NewLevel(opts.Manager.Level()),
			objects.NewPlayer(opts.Manager.Player()),
			objects.NewHUD(opts.Manager),
		},
		width:  opts.Width,
		height: opts.Height,
		debug:  opts.Debug,
	}
}

func (g *Game) Update() error {
	in := input.ReadState()
	if in.Quit {
		return ebiten.Termination
	}

	// Run every physics tick owed since the last frame with the same
	// polled input, catching up after slow frames.
	for n := g.scheduler.Due(time.Now()); n > 0; n-- {
		g.manager.Tick(in)
	}

	g.camera.Follow(g.manager.Player().Position, g.manager.Level())

	for _, o := range g.objects {
		if err := o.Update(); err != nil {
			return fmt.Errorf("failed to update object: %v", err)
		}
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for _, o := range g.objects {
		o.Draw(screen, g.camera.Position())
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f\nTPS: %0.2f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}
