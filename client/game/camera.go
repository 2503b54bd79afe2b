package game

import (
	"github.com/cbodonnell/tilerunner/pkg/kinematic"
	"github.com/cbodonnell/tilerunner/pkg/tilemap"
)

const (
	// cameraSmoothing is the fraction of the remaining distance the
	// camera covers per frame while gliding toward its target.
	cameraSmoothing = 0.1
)

// Camera tracks the top-left corner of the viewport in world units. It
// glides toward the player and never shows past the level edges.
type Camera struct {
	pos   kinematic.Vector
	viewW float64
	viewH float64
}

func NewCamera(viewW, viewH int) *Camera {
	return &Camera{
		viewW: float64(viewW),
		viewH: float64(viewH),
	}
}

// Position returns the camera's top-left corner in world units.
func (c *Camera) Position() kinematic.Vector {
	return c.pos
}

// Jump centers the viewport on the target immediately.
func (c *Camera) Jump(target kinematic.Vector, level *tilemap.Map) {
	c.pos = c.clampTarget(target, level)
}

// Follow glides the viewport toward the target.
func (c *Camera) Follow(target kinematic.Vector, level *tilemap.Map) {
	dest := c.clampTarget(target, level)
	c.pos = c.pos.Add(dest.Sub(c.pos).Scale(cameraSmoothing))
}

func (c *Camera) clampTarget(target kinematic.Vector, level *tilemap.Map) kinematic.Vector {
	return kinematic.NewVector(
		clampAxis(target.X-c.viewW/2, float64(level.PixelWidth())-c.viewW),
		clampAxis(target.Y-c.viewH/2, float64(level.PixelHeight())-c.viewH),
	)
}

// clampAxis bounds one camera axis to [0, max]. A level smaller than the
// viewport pins the camera to the level origin.
func clampAxis(v, max float64) float64 {
	if max < 0 {
		max = 0
	}
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
