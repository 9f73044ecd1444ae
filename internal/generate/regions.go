package generate

import (
	"sort"

	"cavegen/internal/gamemap"
)

// Region is one orthogonally connected group of floor cells.
type Region struct {
	Cells  int
	Bounds gamemap.Rect
	Anchor gamemap.Point // first cell of the region in row-major order
}

// Regions finds every connected floor region of g, largest first. Ties keep
// row-major order of their anchors.
func Regions(g *gamemap.Grid) []Region {
	seen := make([]bool, g.Width*g.Height)
	var regions []Region
	var queue []int

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i0 := g.Index(x, y)
			if seen[i0] || g.Get(x, y) != gamemap.Floor {
				continue
			}
			anchor := gamemap.Point{X: x, Y: y}
			region := Region{Anchor: anchor, Bounds: gamemap.Rect{X1: x, Y1: y, X2: x, Y2: y}}

			seen[i0] = true
			queue = append(queue[:0], i0)
			for qi := 0; qi < len(queue); qi++ {
				p := g.Point(queue[qi])
				region.Cells++
				region.Bounds = region.Bounds.Grow(p)
				for _, d := range dirs4 {
					nx, ny := p.X+d[0], p.Y+d[1]
					if g.Get(nx, ny) != gamemap.Floor {
						continue
					}
					ni := g.Index(nx, ny)
					if !seen[ni] {
						seen[ni] = true
						queue = append(queue, ni)
					}
				}
			}
			regions = append(regions, region)
		}
	}

	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].Cells > regions[j].Cells
	})
	return regions
}
