package kinematic

// This package includes the vector math used by the physics core.

import (
	"math"
)

// Vector is a 2D vector used for both positions and velocities.
// It is a value type: every operation returns a new Vector, so callers
// never end up sharing mutable state through it.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewVector returns a vector with the given components.
func NewVector(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the component-wise sum of v and other.
func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the component-wise difference of v and other.
func (v Vector) Sub(other Vector) Vector {
	return Vector{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns v scaled by the given factor.
func (v Vector) Scale(factor float64) Vector {
	return Vector{X: v.X * factor, Y: v.Y * factor}
}

// Length returns the Euclidean magnitude of v.
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}
