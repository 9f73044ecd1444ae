package generate

import "cavegen/internal/gamemap"

// CountNeighbours returns how many of the 8 cells around (x, y) are walls.
// Cells beyond the edge count as walls, as Grid.Get reports them.
func CountNeighbours(g *gamemap.Grid, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Get(x+dx, y+dy) == gamemap.Wall {
				count++
			}
		}
	}
	return count
}

// Simulate computes one generation of the cave automaton into a new grid,
// leaving g untouched. A wall with fewer than deathLimit wall neighbours
// becomes floor; a floor with more than birthLimit becomes wall.
func Simulate(g *gamemap.Grid, deathLimit, birthLimit int) *gamemap.Grid {
	next := g.Clone()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			walls := CountNeighbours(g, x, y)
			switch g.Get(x, y) {
			case gamemap.Wall:
				if walls < deathLimit {
					next.Set(x, y, gamemap.Floor)
				}
			default:
				if walls > birthLimit {
					next.Set(x, y, gamemap.Wall)
				}
			}
		}
	}
	return next
}

// Smooth runs Simulate steps times and returns the last generation. Each
// intermediate grid is released once its successor exists; g itself is
// never modified.
func Smooth(g *gamemap.Grid, steps, deathLimit, birthLimit int) *gamemap.Grid {
	cur := g
	for i := 0; i < steps; i++ {
		next := Simulate(cur, deathLimit, birthLimit)
		if cur != g {
			cur.Release()
		}
		cur = next
	}
	return cur
}
