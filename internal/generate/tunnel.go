package generate

import (
	"math/rand"

	"cavegen/internal/gamemap"
)

// Tunnel joins pockets to the start region instead of leaving them to be
// walled in. Every region of at least minCells cells that is not yet
// reachable from start gets an L-shaped corridor dug from its anchor to
// start; rng picks which leg comes first. regions is a survey taken
// before tunnelling. The joined regions are returned.
func Tunnel(g *gamemap.Grid, start gamemap.Point, regions []Region, minCells int, rng *rand.Rand) []Region {
	var joined []Region
	reach := FloodMark(g, start)
	for _, r := range regions {
		if r.Cells < minCells || reach[g.Index(r.Anchor.X, r.Anchor.Y)] {
			continue
		}
		carveCorridor(g, r.Anchor, start, rng)
		joined = append(joined, r)
		reach = FloodMark(g, start)
	}
	return joined
}

// carveCorridor digs an L-shaped corridor between a and b.
func carveCorridor(g *gamemap.Grid, a, b gamemap.Point, rng *rand.Rand) {
	if rng.Intn(2) == 0 {
		carveH(g, a.X, b.X, a.Y)
		carveV(g, a.Y, b.Y, b.X)
	} else {
		carveV(g, a.Y, b.Y, a.X)
		carveH(g, a.X, b.X, b.Y)
	}
}

func carveH(g *gamemap.Grid, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		g.Set(x, y, gamemap.Floor)
	}
}

func carveV(g *gamemap.Grid, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		g.Set(x, y, gamemap.Floor)
	}
}
