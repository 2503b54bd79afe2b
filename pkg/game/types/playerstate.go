package types

import "github.com/cbodonnell/tilerunner/pkg/kinematic"

type PlayerState struct {
	Position   kinematic.Vector `json:"position"`
	Velocity   kinematic.Vector `json:"velocity"`
	IsOnGround bool             `json:"isOnGround"`
	FlipH      bool             `json:"flipH"`
}

// Equal returns true if the player state is equal to the other player state
func (p *PlayerState) Equal(other *PlayerState) bool {
	return p.Position == other.Position &&
		p.Velocity == other.Velocity &&
		p.IsOnGround == other.IsOnGround &&
		p.FlipH == other.FlipH
}

// Copy returns a copy of the player state
func (p *PlayerState) Copy() *PlayerState {
	return &PlayerState{
		Position:   p.Position,
		Velocity:   p.Velocity,
		IsOnGround: p.IsOnGround,
		FlipH:      p.FlipH,
	}
}
