package generate

import (
	"fmt"

	"github.com/zyedidia/generic/stack"

	"cavegen/internal/gamemap"
)

// dirs4 are the orthogonal moves used for reachability.
var dirs4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// FindStart picks the cell the connectivity repair floods from. It prefers
// the grid center, then walks diagonally towards the bottom-right corner,
// then scans square rings around the center until the whole grid has been
// covered. ErrNoFloor is returned when the grid has no floor at all.
func FindStart(g *gamemap.Grid) (gamemap.Point, error) {
	cx, cy := g.Width/2, g.Height/2
	for x, y := cx, cy; g.InBounds(x, y); x, y = x+1, y+1 {
		if g.Get(x, y) == gamemap.Floor {
			return gamemap.Point{X: x, Y: y}, nil
		}
	}

	maxRadius := max(cx, g.Width-1-cx, cy, g.Height-1-cy)
	for r := 1; r <= maxRadius; r++ {
		for y := cy - r; y <= cy+r; y++ {
			step := 1
			if y != cy-r && y != cy+r {
				// Only the left and right edges of the ring.
				step = 2 * r
			}
			for x := cx - r; x <= cx+r; x += step {
				if g.Get(x, y) == gamemap.Floor {
					return gamemap.Point{X: x, Y: y}, nil
				}
			}
		}
	}
	return gamemap.Point{}, fmt.Errorf("find start in %dx%d grid: %w", g.Width, g.Height, ErrNoFloor)
}

// FloodMark returns the set of floor cells reachable from start through
// orthogonal floor-to-floor moves, indexed by g.Index. A start cell that
// is not floor yields an empty set. The traversal keeps its own work-list,
// so its depth does not depend on the call stack.
func FloodMark(g *gamemap.Grid, start gamemap.Point) []bool {
	visited := make([]bool, g.Width*g.Height)
	if g.Get(start.X, start.Y) != gamemap.Floor {
		return visited
	}

	work := stack.New[int]()
	i0 := g.Index(start.X, start.Y)
	visited[i0] = true
	work.Push(i0)
	for work.Size() > 0 {
		p := g.Point(work.Pop())
		for _, d := range dirs4 {
			nx, ny := p.X+d[0], p.Y+d[1]
			if g.Get(nx, ny) != gamemap.Floor {
				continue
			}
			ni := g.Index(nx, ny)
			if visited[ni] {
				continue
			}
			visited[ni] = true
			work.Push(ni)
		}
	}
	return visited
}

// Connect keeps only the floor region that contains the start cell and
// walls in every other pocket. The start cell is returned so consumers can
// place or track something there. On error g is left unchanged.
func Connect(g *gamemap.Grid) (gamemap.Point, error) {
	start, err := FindStart(g)
	if err != nil {
		return gamemap.Point{}, fmt.Errorf("connect: %w", err)
	}
	visited := FloodMark(g, start)
	for i, seen := range visited {
		if seen {
			continue
		}
		p := g.Point(i)
		if g.Get(p.X, p.Y) == gamemap.Floor {
			g.Set(p.X, p.Y, gamemap.Wall)
		}
	}
	return start, nil
}
