package world

import "math/rand/v2"

// GenerateSurface builds the backdrop for a cols x rows cell view.
// The same seed always yields the same surface.
func GenerateSurface(seed int64, cols, rows int) *TileGrid {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed>>16|3)))
	grid := NewTileGrid(cols, rows)

	// Dust patches (10-15%)
	dustDensity := 0.10 + rng.Float64()*0.05
	scatter(grid, rng, TileDust, dustDensity)

	// Pebbles (4-7%)
	pebbleDensity := 0.04 + rng.Float64()*0.03
	scatter(grid, rng, TilePebble, pebbleDensity)

	// A few boulders (~1%)
	scatter(grid, rng, TileBoulder, 0.01)

	// Craters: 1-3 rings
	if cols >= 8 && rows >= 8 {
		craters := 1 + rng.IntN(3)
		for i := 0; i < craters; i++ {
			r := 2 + rng.IntN(2)
			cx := r + rng.IntN(cols-2*r)
			cy := r + rng.IntN(rows-2*r)
			placeCrater(grid, cx, cy, r)
		}
	}
	return grid
}

func scatter(grid *TileGrid, rng *rand.Rand, kind TileKind, density float64) {
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if grid.Get(x, y).Kind == TileGround && rng.Float64() < density {
				grid.Set(x, y, Tile{Kind: kind})
			}
		}
	}
}

// placeCrater draws a ring of radius r around (cx, cy) and clears the bowl.
func placeCrater(grid *TileGrid, cx, cy, r int) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			d2 := dx*dx + dy*dy
			switch {
			case d2 <= (r-1)*(r-1):
				grid.Set(cx+dx, cy+dy, Tile{Kind: TileDust})
			case d2 <= r*r:
				grid.Set(cx+dx, cy+dy, Tile{Kind: TileCrater})
			}
		}
	}
}
