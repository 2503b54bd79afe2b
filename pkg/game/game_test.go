package game

import (
	"strings"
	"testing"

	"github.com/cbodonnell/tilerunner/pkg/game/constants"
	"github.com/cbodonnell/tilerunner/pkg/game/types"
	"github.com/cbodonnell/tilerunner/pkg/kinematic"
	"github.com/cbodonnell/tilerunner/pkg/tilemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMap(t *testing.T, data string) *tilemap.Map {
	t.Helper()
	m, err := tilemap.New(strings.NewReader(data))
	require.NoError(t, err)
	return m
}

// airMap returns a 10x10 all-air level, large enough to contain the
// default spawn position.
func airMap(t *testing.T) *tilemap.Map {
	t.Helper()
	row := strings.TrimSpace(strings.Repeat("0 ", 10)) + "\n"
	return mustMap(t, strings.Repeat(row, 10))
}

// floorMap returns a 10x10 level with a solid floor in the ninth row
// (y 512..576).
func floorMap(t *testing.T) *tilemap.Map {
	t.Helper()
	air := strings.TrimSpace(strings.Repeat("0 ", 10)) + "\n"
	solid := strings.TrimSpace(strings.Repeat("9 ", 10)) + "\n"
	return mustMap(t, strings.Repeat(air, 8)+solid+air)
}

// onFloorSpawn is a spawn position standing on floorMap's floor: the
// ground probe reaches 479+32+1 = 512, the floor's top edge.
var onFloorSpawn = kinematic.NewVector(170, 479)

func newTestManager(t *testing.T, level *tilemap.Map, spawn *kinematic.Vector) *GameManager {
	t.Helper()
	return NewGameManager(NewGameManagerOptions{Level: level, Spawn: spawn})
}

func TestGameManager_SpawnResolution(t *testing.T) {
	// A start tile wins over the fallback spawn.
	gm := newTestManager(t, mustMap(t, "0 0 0\n0 78 0\n0 0 0\n"), nil)
	assert.Equal(t, kinematic.NewVector(96, 95), gm.Spawn())
	assert.Equal(t, gm.Spawn(), gm.Player().Position)

	// Without a start tile the classic spawn position is used.
	gm = newTestManager(t, airMap(t), nil)
	assert.Equal(t, kinematic.NewVector(constants.PlayerStartingX, constants.PlayerStartingY), gm.Spawn())

	// An explicit spawn overrides both.
	spawn := kinematic.NewVector(32, 32)
	gm = newTestManager(t, mustMap(t, "0 78 0\n"), &spawn)
	assert.Equal(t, spawn, gm.Spawn())
}

func TestGameManager_GravityInFreeFall(t *testing.T) {
	gm := newTestManager(t, airMap(t), nil)

	gm.Tick(types.InputState{})

	player := gm.Player()
	assert.Equal(t, constants.Gravity, player.Velocity.Y)
	assert.Equal(t, 0.0, player.Velocity.X)
	assert.InDelta(t, constants.PlayerStartingY+constants.Gravity, player.Position.Y, 1e-9)
	assert.False(t, player.IsOnGround)
}

func TestGameManager_StandsOnFloor(t *testing.T) {
	gm := newTestManager(t, floorMap(t), &onFloorSpawn)

	gm.Tick(types.InputState{})

	player := gm.Player()
	assert.Equal(t, onFloorSpawn, player.Position)
	assert.Equal(t, kinematic.Vector{}, player.Velocity)
	assert.True(t, player.IsOnGround)
}

func TestGameManager_JumpOnlyOnGround(t *testing.T) {
	// Grounded: jump applies the impulse, then gravity bleeds into it.
	gm := newTestManager(t, floorMap(t), &onFloorSpawn)
	gm.Tick(types.InputState{Jump: true})

	wantVelY := constants.PlayerJumpSpeed + constants.Gravity
	player := gm.Player()
	assert.Equal(t, wantVelY, player.Velocity.Y)
	assert.InDelta(t, onFloorSpawn.Y+wantVelY, player.Position.Y, 1e-9)
	assert.False(t, player.IsOnGround)

	// Airborne: jump is ignored.
	gm = newTestManager(t, airMap(t), nil)
	gm.Tick(types.InputState{Jump: true})
	assert.Equal(t, constants.Gravity, gm.Player().Velocity.Y)
}

func TestGameManager_HorizontalBlending(t *testing.T) {
	// Grounded response from rest: 0.5*0 + 4.0*1.
	gm := newTestManager(t, floorMap(t), &onFloorSpawn)
	gm.Tick(types.InputState{Right: true})
	assert.Equal(t, constants.GroundAcceleration, gm.Player().Velocity.X)
	assert.False(t, gm.Player().FlipH)

	// Airborne response from rest: 0.95*0 + 2.0*(-1).
	gm = newTestManager(t, airMap(t), nil)
	gm.Tick(types.InputState{Left: true})
	assert.Equal(t, -constants.AirAcceleration, gm.Player().Velocity.X)
	assert.True(t, gm.Player().FlipH)

	// Opposing intents cancel.
	gm = newTestManager(t, airMap(t), nil)
	gm.Tick(types.InputState{Left: true, Right: true})
	assert.Equal(t, 0.0, gm.Player().Velocity.X)
}

func TestGameManager_SpeedClamp(t *testing.T) {
	gm := newTestManager(t, airMap(t), nil)

	gm.Player().Velocity.X = 100
	gm.Tick(types.InputState{Right: true})
	assert.Equal(t, constants.PlayerMaxSpeed, gm.Player().Velocity.X)

	gm.Player().Velocity.X = -100
	gm.Tick(types.InputState{Left: true})
	assert.Equal(t, -constants.PlayerMaxSpeed, gm.Player().Velocity.X)
}

func TestGameManager_RestartResetsState(t *testing.T) {
	gm := newTestManager(t, airMap(t), nil)

	gm.Tick(types.InputState{})
	gm.Tick(types.InputState{})
	require.Equal(t, int64(2), gm.Ticks())
	require.NotEqual(t, gm.Spawn(), gm.Player().Position)

	hit := gm.Tick(types.InputState{Restart: true})

	assert.Zero(t, hit)
	assert.Equal(t, gm.Spawn(), gm.Player().Position)
	assert.Equal(t, kinematic.Vector{}, gm.Player().Velocity)
	assert.Equal(t, int64(0), gm.Ticks())
}

func TestGameManager_FinishStopsTheClock(t *testing.T) {
	// A finish tile in the cell the default spawn falls into.
	air := strings.TrimSpace(strings.Repeat("0 ", 10)) + "\n"
	finishRow := "0 0 110 0 0 0 0 0 0 0\n"
	gm := newTestManager(t, mustMap(t, strings.Repeat(air, 7)+finishRow+air+air), nil)

	gm.Tick(types.InputState{})
	assert.True(t, gm.Finished())
	assert.Equal(t, int64(1), gm.Ticks())
	assert.Equal(t, int64(1), gm.BestTicks())

	// The stopwatch freezes once finished, physics keeps running.
	gm.Tick(types.InputState{})
	assert.Equal(t, int64(1), gm.Ticks())

	// Restart clears the run but keeps the best time.
	gm.Tick(types.InputState{Restart: true})
	assert.False(t, gm.Finished())
	assert.Equal(t, int64(0), gm.Ticks())
	assert.Equal(t, int64(1), gm.BestTicks())
}

func TestFormatTicks(t *testing.T) {
	tests := []struct {
		ticks int64
		want  string
	}{
		{0, "0:00.00"},
		{1, "0:00.02"},
		{75, "0:01.50"},
		{50 * 60, "1:00.00"},
		{50*61 + 25, "1:01.50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTicks(tt.ticks), "ticks %d", tt.ticks)
	}
}
