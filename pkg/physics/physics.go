// Package physics implements swept box-vs-tilemap collision resolution.
//
// Movement is subdivided into sub-steps of at most about one world unit so
// that a fast box cannot tunnel through a thin wall, and collisions are
// resolved per axis so the box slides along surfaces instead of sticking.
package physics

import (
	"github.com/cbodonnell/tilerunner/pkg/kinematic"
)

// World answers point solidity queries for collision testing.
type World interface {
	IsSolidPoint(x, y float64) bool
}

// Hit is a set of collision results from a single MoveBox call.
type Hit uint8

const (
	// HitX means movement was blocked along the X axis
	HitX Hit = 1 << iota
	// HitY means movement was blocked along the Y axis
	HitY
	// HitCorner means movement was blocked diagonally without either
	// single axis being blocked on its own
	HitCorner
)

// Has reports whether the set contains all of the given hits.
func (h Hit) Has(hit Hit) bool {
	return h&hit == hit
}

// TestBox reports whether any corner of a box of the given size centered at
// pos overlaps a solid tile.
func TestBox(world World, pos, size kinematic.Vector) bool {
	half := size.Scale(0.5)
	return world.IsSolidPoint(pos.X-half.X, pos.Y-half.Y) ||
		world.IsSolidPoint(pos.X+half.X, pos.Y-half.Y) ||
		world.IsSolidPoint(pos.X-half.X, pos.Y+half.Y) ||
		world.IsSolidPoint(pos.X+half.X, pos.Y+half.Y)
}

// MoveBox moves a box of the given size from pos by vel, stopping movement
// on any axis that runs into a solid tile. It returns the set of collisions
// along with the corrected position and velocity. MoveBox never fails; with
// no obstructions the returned position is pos+vel and vel is unchanged.
func MoveBox(world World, pos, vel, size kinematic.Vector) (Hit, kinematic.Vector, kinematic.Vector) {
	distance := vel.Length()
	maximum := int(distance)

	var result Hit
	if distance < 0 {
		// A Euclidean length is never negative, so this branch is
		// unreachable. It is kept as a documented no-op rather than
		// repurposed for zero-length moves.
		return result, pos, vel
	}

	// Split the move into equal sub-steps of at most ~1 unit each.
	fraction := 1.0 / float64(maximum+1)

	for i := 0; i <= maximum; i++ {
		newPos := pos.Add(vel.Scale(fraction))
		if TestBox(world, newPos, size) {
			hit := false
			if TestBox(world, kinematic.NewVector(pos.X, newPos.Y), size) {
				result |= HitY
				newPos.Y = pos.Y
				vel.Y = 0
				hit = true
			}

			if TestBox(world, kinematic.NewVector(newPos.X, pos.Y), size) {
				result |= HitX
				newPos.X = pos.X
				vel.X = 0
				hit = true
			}

			if !hit {
				// Only the combined diagonal move collides: the
				// box clipped a corner. Discard the sub-move and
				// stop entirely.
				result |= HitCorner
				newPos = pos
				vel = kinematic.Vector{}
			}
		}

		pos = newPos
	}

	return result, pos, vel
}
