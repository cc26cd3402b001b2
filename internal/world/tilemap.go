package world

// TileKind is the decorative terrain drawn under the rover.
// The rover drives over every kind; tiles carry no collision.
type TileKind uint8

const (
	TileGround TileKind = iota // bare regolith plain
	TileDust                   // loose fines, lighter shade
	TilePebble                 // scattered small rocks
	TileBoulder                // large rock
	TileCrater                 // impact rim
	TileKindCount
)

// Tile is one backdrop cell.
type Tile struct {
	Kind TileKind
}

// TileGrid is a 2D grid of tiles.
type TileGrid struct {
	Width  int
	Height int
	Tiles  []Tile
}

// NewTileGrid creates a grid filled with ground.
func NewTileGrid(w, h int) *TileGrid {
	return &TileGrid{
		Width:  w,
		Height: h,
		Tiles:  make([]Tile, w*h),
	}
}

// Get returns the tile at (x, y). Out-of-bounds returns ground.
func (g *TileGrid) Get(x, y int) Tile {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return Tile{Kind: TileGround}
	}
	return g.Tiles[y*g.Width+x]
}

// Set writes a tile at (x, y). Out-of-bounds writes are ignored.
func (g *TileGrid) Set(x, y int, t Tile) {
	if x >= 0 && x < g.Width && y >= 0 && y < g.Height {
		g.Tiles[y*g.Width+x] = t
	}
}

// Count returns how many tiles of the given kind the grid holds.
func (g *TileGrid) Count(kind TileKind) int {
	n := 0
	for _, t := range g.Tiles {
		if t.Kind == kind {
			n++
		}
	}
	return n
}

// Describe returns a human-readable description of a tile.
func (t Tile) Describe() string {
	if t.Kind < TileKindCount {
		return tileDescriptions[t.Kind]
	}
	return "Unknown terrain"
}

var tileDescriptions = [TileKindCount]string{
	TileGround:  "Regolith plain",
	TileDust:    "Loose dust",
	TilePebble:  "Pebble field",
	TileBoulder: "Boulder",
	TileCrater:  "Crater rim",
}
