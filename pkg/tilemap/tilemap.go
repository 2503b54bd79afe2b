package tilemap

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cbodonnell/tilerunner/pkg/kinematic"
)

const (
	// TileWidth is the width of a tile in world units
	TileWidth = 64
	// TileHeight is the height of a tile in world units
	TileHeight = 64
	// TilesPerRow is the number of tiles per row in the tile atlas
	TilesPerRow = 16
)

// Tile values with special meaning. Any other value is a solid tile.
const (
	TileAir    = 0
	TileStart  = 78
	TileFinish = 110
)

// Map is an immutable grid of tile values stored row-major.
type Map struct {
	width  int
	height int
	tiles  []int
}

// New parses a map from whitespace-separated tile values, one row per line.
// All rows must have the same number of values.
func New(r io.Reader) (*Map, error) {
	m := &Map{}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		width := 0
		for _, word := range strings.Fields(scanner.Text()) {
			value, err := strconv.Atoi(word)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid tile value %q", line, word)
			}
			m.tiles = append(m.tiles, value)
			width++
		}

		if m.width > 0 && m.width != width {
			return nil, fmt.Errorf("line %d: incompatible line length", line)
		}
		m.width = width
		m.height++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read map: %v", err)
	}

	if m.width == 0 || m.height == 0 {
		return nil, fmt.Errorf("map is empty")
	}
	if len(m.tiles) != m.width*m.height {
		// Possible when early rows are blank.
		return nil, fmt.Errorf("incompatible line lengths")
	}

	return m, nil
}

// Load reads and parses a map file.
func Load(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open map %s: %v", path, err)
	}
	defer f.Close()

	m, err := New(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse map %s: %v", path, err)
	}
	return m, nil
}

// Width returns the map width in tiles.
func (m *Map) Width() int {
	return m.width
}

// Height returns the map height in tiles.
func (m *Map) Height() int {
	return m.height
}

// Tiles returns the row-major tile values. The slice is shared with the
// map and must not be modified.
func (m *Map) Tiles() []int {
	return m.tiles
}

// PixelWidth returns the map width in world units.
func (m *Map) PixelWidth() int {
	return m.width * TileWidth
}

// PixelHeight returns the map height in world units.
func (m *Map) PixelHeight() int {
	return m.height * TileHeight
}

// TileAt returns the tile value at the given world coordinates. Coordinates
// outside the map clamp to the nearest edge tile, so the lookup never fails.
func (m *Map) TileAt(x, y int) int {
	nx := clamp(x/TileWidth, 0, m.width-1)
	ny := clamp(y/TileHeight, 0, m.height-1)
	return m.tiles[ny*m.width+nx]
}

// TileAtPoint returns the tile value under the given point, rounded to the
// nearest world coordinate.
func (m *Map) TileAtPoint(p kinematic.Vector) int {
	return m.TileAt(round(p.X), round(p.Y))
}

// IsSolidPoint reports whether the tile under the given point is solid.
// Air, start and finish tiles are passable; everything else is solid.
func (m *Map) IsSolidPoint(x, y float64) bool {
	switch m.TileAt(round(x), round(y)) {
	case TileAir, TileStart, TileFinish:
		return false
	}
	return true
}

// OnGround reports whether a box of the given size centered at pos is
// standing on solid ground. Both bottom corners are probed one unit below
// the box, so a body straddling a gap is still grounded on either edge.
func (m *Map) OnGround(pos, size kinematic.Vector) bool {
	half := size.Scale(0.5)
	return m.IsSolidPoint(pos.X-half.X, pos.Y+half.Y+1) ||
		m.IsSolidPoint(pos.X+half.X, pos.Y+half.Y+1)
}

// StartPosition returns the center of the first start tile, if the map has
// one. The position sits one unit above the exact center: a box spawned at
// the center of a tile resting on a surface would have its bottom edge on
// the tile boundary, which rounds into the surface and leaves the box
// embedded.
func (m *Map) StartPosition() (kinematic.Vector, bool) {
	for i, value := range m.tiles {
		if value != TileStart {
			continue
		}
		x := float64((i%m.width)*TileWidth + TileWidth/2)
		y := float64((i/m.width)*TileHeight + TileHeight/2 - 1)
		return kinematic.NewVector(x, y), true
	}
	return kinematic.Vector{}, false
}

// round rounds to the nearest integer, ties away from zero.
func round(v float64) int {
	return int(math.Round(v))
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
