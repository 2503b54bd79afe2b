package objects

import (
	"github.com/cbodonnell/tilerunner/pkg/kinematic"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameObject is the highest level interface for drawable game types.
// Draw receives the camera position so world-space objects can offset
// themselves; screen-space objects ignore it.
type GameObject interface {
	Update() error
	Draw(screen *ebiten.Image, camera kinematic.Vector)
}
