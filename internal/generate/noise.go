package generate

import (
	"math/rand"

	"cavegen/internal/gamemap"
)

// FillRandom turns each cell into wall with probability wallChance, leaving
// the others untouched. Every cell consumes exactly one rng.Float64 draw in
// row-major order, so a seeded rng always produces the same noise.
func FillRandom(g *gamemap.Grid, wallChance float64, rng *rand.Rand) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if rng.Float64() < wallChance {
				g.Set(x, y, gamemap.Wall)
			}
		}
	}
}
