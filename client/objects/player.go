package objects

import (
	"image/color"

	gametypes "github.com/cbodonnell/tilerunner/pkg/game/types"
	"github.com/cbodonnell/tilerunner/pkg/kinematic"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// bodyPart is one filled circle of the player, offset from its center.
// Parts are drawn in order, so later parts overlay earlier ones.
type bodyPart struct {
	dx, dy float32
	radius float32
	clr    color.Color
}

var (
	bodyColor = color.RGBA{247, 182, 67, 255}
	feetColor = color.RGBA{150, 96, 24, 255}
	eyeColor  = color.RGBA{255, 255, 255, 255}
	irisColor = color.RGBA{30, 30, 30, 255}
)

// playerParts approximates the classic tee: feet behind the body, body,
// then the eyes. Eye offsets are mirrored when the player faces left.
var playerParts = []bodyPart{
	{dx: -18, dy: 26, radius: 12, clr: feetColor},
	{dx: 18, dy: 26, radius: 12, clr: feetColor},
	{dx: 0, dy: 0, radius: 30, clr: bodyColor},
	{dx: 6, dy: -10, radius: 7, clr: eyeColor},
	{dx: 18, dy: -10, radius: 7, clr: eyeColor},
	{dx: 8, dy: -10, radius: 3, clr: irisColor},
	{dx: 20, dy: -10, radius: 3, clr: irisColor},
}

type Player struct {
	state *gametypes.PlayerState
}

func NewPlayer(state *gametypes.PlayerState) *Player {
	return &Player{
		state: state,
	}
}

func (o *Player) Update() error {
	return nil
}

func (o *Player) Draw(screen *ebiten.Image, camera kinematic.Vector) {
	x := float32(o.state.Position.X - camera.X)
	y := float32(o.state.Position.Y - camera.Y)

	for _, part := range playerParts {
		dx := part.dx
		if o.state.FlipH {
			dx = -dx
		}
		vector.DrawFilledCircle(screen, x+dx, y+part.dy, part.radius, part.clr, true)
	}
}
