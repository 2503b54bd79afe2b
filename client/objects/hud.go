package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/tilerunner/client/fonts"
	"github.com/cbodonnell/tilerunner/pkg/game"
	"github.com/cbodonnell/tilerunner/pkg/kinematic"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// HUD draws the stopwatch, the session's best time and the finish banner.
// It is a screen-space object and ignores the camera.
type HUD struct {
	manager *game.GameManager
}

func NewHUD(manager *game.GameManager) *HUD {
	return &HUD{
		manager: manager,
	}
}

func (o *HUD) Update() error {
	return nil
}

func (o *HUD) Draw(screen *ebiten.Image, _ kinematic.Vector) {
	text.Draw(screen, fmt.Sprintf("TIME %s", game.FormatTicks(o.manager.Ticks())), fonts.TTFSmallFont, 8, 48, color.White)
	if best := o.manager.BestTicks(); best > 0 {
		text.Draw(screen, fmt.Sprintf("BEST %s", game.FormatTicks(best)), fonts.TTFSmallFont, 8, 68, color.White)
	}

	if o.manager.Finished() {
		o.drawBanner(screen, "FINISHED! PRESS R TO RESTART")
	}
}

func (o *HUD) drawBanner(screen *ebiten.Image, t string) {
	bounds, _ := font.BoundString(fonts.MPlusNormalFont, t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(
		float64(screen.Bounds().Dx())/2-float64(bounds.Max.X>>6)/2,
		float64(screen.Bounds().Dy())/2-float64(bounds.Max.Y>>6)/2,
	)
	op.ColorScale.ScaleWithColor(color.White)
	text.DrawWithOptions(screen, t, fonts.MPlusNormalFont, op)
}
