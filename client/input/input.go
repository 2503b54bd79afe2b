package input

import (
	"github.com/cbodonnell/tilerunner/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
)

func IsLeftPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
}

func IsRightPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD)
}

func IsJumpPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeySpace) ||
		ebiten.IsKeyPressed(ebiten.KeyUp) ||
		ebiten.IsKeyPressed(ebiten.KeyW)
}

func IsRestartPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyR)
}

func IsQuitPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape)
}

// ReadState polls the keyboard into the input intents applied to the next
// physics ticks. Intents are level-triggered, matching the key state.
func ReadState() types.InputState {
	return types.InputState{
		Left:    IsLeftPressed(),
		Right:   IsRightPressed(),
		Jump:    IsJumpPressed(),
		Restart: IsRestartPressed(),
		Quit:    IsQuitPressed(),
	}
}
