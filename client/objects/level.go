package objects

import (
	"image/color"

	"github.com/cbodonnell/tilerunner/pkg/kinematic"
	"github.com/cbodonnell/tilerunner/pkg/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type Level struct {
	level *tilemap.Map
}

func NewLevel(level *tilemap.Map) *Level {
	return &Level{
		level: level,
	}
}

func (o *Level) Update() error {
	return nil
}

func (o *Level) Draw(screen *ebiten.Image, camera kinematic.Vector) {
	screenW := float64(screen.Bounds().Dx())
	screenH := float64(screen.Bounds().Dy())
	width := o.level.Width()

	for i, tile := range o.level.Tiles() {
		if tile == tilemap.TileAir {
			continue
		}

		x := float64((i%width)*tilemap.TileWidth) - camera.X
		y := float64((i/width)*tilemap.TileHeight) - camera.Y

		// Cull tiles outside the viewport.
		if x+tilemap.TileWidth < 0 || x > screenW || y+tilemap.TileHeight < 0 || y > screenH {
			continue
		}

		vector.DrawFilledRect(screen, float32(x), float32(y), tilemap.TileWidth, tilemap.TileHeight, tileColor(tile), false)
	}
}

func tileColor(tile int) color.Color {
	switch tile {
	case tilemap.TileStart:
		return color.RGBA{80, 200, 120, 96}
	case tilemap.TileFinish:
		return color.RGBA{255, 200, 40, 255}
	case 1:
		return color.RGBA{88, 120, 52, 255} // grass
	case 2:
		return color.RGBA{112, 112, 124, 255} // stone
	default:
		return color.RGBA{92, 92, 104, 255}
	}
}
