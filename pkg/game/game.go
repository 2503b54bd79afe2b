package game

import (
	"fmt"

	"github.com/cbodonnell/tilerunner/pkg/game/constants"
	"github.com/cbodonnell/tilerunner/pkg/game/types"
	"github.com/cbodonnell/tilerunner/pkg/kinematic"
	"github.com/cbodonnell/tilerunner/pkg/log"
	"github.com/cbodonnell/tilerunner/pkg/physics"
	"github.com/cbodonnell/tilerunner/pkg/tilemap"
)

// playerSize is the player's collision box, centered on its position.
var playerSize = kinematic.NewVector(constants.PlayerWidth, constants.PlayerHeight)

// GameManager advances the game state one physics tick at a time. It owns
// the player state and borrows the level read-only; it does no rendering
// and no input polling.
type GameManager struct {
	level  *tilemap.Map
	player *types.PlayerState
	spawn  kinematic.Vector

	// ticks counts physics ticks since the last (re)spawn
	ticks     int64
	bestTicks int64
	finished  bool
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	// Level is the level to play. Required.
	Level *tilemap.Map
	// Spawn overrides the spawn point. Defaults to the level's start
	// tile, falling back to the classic spawn position.
	Spawn *kinematic.Vector
}

func NewGameManager(opts NewGameManagerOptions) *GameManager {
	spawn := kinematic.NewVector(constants.PlayerStartingX, constants.PlayerStartingY)
	if start, ok := opts.Level.StartPosition(); ok {
		spawn = start
	}
	if opts.Spawn != nil {
		spawn = *opts.Spawn
	}

	gm := &GameManager{
		level:  opts.Level,
		player: &types.PlayerState{},
		spawn:  spawn,
	}
	gm.respawn()
	return gm
}

// Tick advances the game by one fixed physics step and returns the set of
// collisions resolved during the player's movement.
func (gm *GameManager) Tick(input types.InputState) physics.Hit {
	if input.Restart {
		gm.respawn()
		return 0
	}

	player := gm.player
	ground := gm.level.OnGround(player.Position, playerSize)

	if input.Jump && ground {
		player.Velocity.Y = constants.PlayerJumpSpeed
	}

	direction := input.Direction()
	if direction > 0 {
		player.FlipH = false
	} else if direction < 0 {
		player.FlipH = true
	}

	player.Velocity.Y += constants.Gravity
	if ground {
		player.Velocity.X = constants.GroundDamping*player.Velocity.X + constants.GroundAcceleration*direction
	} else {
		player.Velocity.X = constants.AirDamping*player.Velocity.X + constants.AirAcceleration*direction
	}
	player.Velocity.X = clamp(player.Velocity.X, -constants.PlayerMaxSpeed, constants.PlayerMaxSpeed)

	hit, pos, vel := physics.MoveBox(gm.level, player.Position, player.Velocity, playerSize)
	player.Position = pos
	player.Velocity = vel
	player.IsOnGround = gm.level.OnGround(pos, playerSize)

	if !gm.finished {
		gm.ticks++
		if gm.level.TileAtPoint(player.Position) == tilemap.TileFinish {
			gm.finished = true
			if gm.bestTicks == 0 || gm.ticks < gm.bestTicks {
				gm.bestTicks = gm.ticks
			}
			log.Info("Finished in %s", FormatTicks(gm.ticks))
		}
	}

	return hit
}

// respawn resets the player to the spawn point and restarts the stopwatch.
func (gm *GameManager) respawn() {
	gm.player.Position = gm.spawn
	gm.player.Velocity = kinematic.Vector{}
	gm.player.IsOnGround = false
	gm.ticks = 0
	gm.finished = false
}

// Player returns the player state for rendering and inspection.
func (gm *GameManager) Player() *types.PlayerState {
	return gm.player
}

// Level returns the level being played.
func (gm *GameManager) Level() *tilemap.Map {
	return gm.level
}

// Spawn returns the resolved spawn point.
func (gm *GameManager) Spawn() kinematic.Vector {
	return gm.spawn
}

// Ticks returns the number of physics ticks since the last respawn. The
// count freezes once the player reaches a finish tile.
func (gm *GameManager) Ticks() int64 {
	return gm.ticks
}

// BestTicks returns the fastest finish of the session, or 0 if the player
// has not finished yet.
func (gm *GameManager) BestTicks() int64 {
	return gm.bestTicks
}

// Finished returns true if the player has reached a finish tile since the
// last respawn.
func (gm *GameManager) Finished() bool {
	return gm.finished
}

// FormatTicks renders a tick count as m:ss.cc at the fixed tick rate.
func FormatTicks(ticks int64) string {
	seconds := ticks / constants.TickRate
	cents := (ticks % constants.TickRate) * (100 / constants.TickRate)
	return fmt.Sprintf("%d:%02d.%02d", seconds/60, seconds%60, cents)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
