// Package fov computes what can be seen from a cell of a cave, using
// recursive shadowcasting. Walls are opaque; so is everything off the map.
package fov

import "cavegen/internal/gamemap"

// octants map a row/column sweep onto world offsets:
//
//	wx = ox + col*xx + row*xy
//	wy = oy + col*yx + row*yy
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// Compute returns the cells visible from origin within radius, indexed by
// g.Index. The walls that bound the view are included. An origin off the
// map sees nothing.
func Compute(g *gamemap.Grid, origin gamemap.Point, radius int) []bool {
	lit := make([]bool, g.Width*g.Height)
	if !g.InBounds(origin.X, origin.Y) {
		return lit
	}
	lit[g.Index(origin.X, origin.Y)] = true
	s := scan{g: g, lit: lit, ox: origin.X, oy: origin.Y, radius: radius}
	for _, m := range octants {
		s.cast(1, 1.0, 0.0, m)
	}
	return lit
}

type scan struct {
	g      *gamemap.Grid
	lit    []bool
	ox, oy int
	radius int
}

// cast lights one octant from row outwards between the start and end
// slopes, recursing past each run of walls.
func (s *scan) cast(row int, start, end float64, m [4]int) {
	if start < end {
		return
	}
	xx, xy, yx, yy := m[0], m[1], m[2], m[3]
	radiusSq := s.radius * s.radius
	nextStart := start

	for j := row; j <= s.radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := s.ox + dx*xx + dy*xy
			wy := s.oy + dx*yx + dy*yy
			left := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			right := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < right {
				continue
			}
			if end > left {
				break
			}

			if dx*dx+dy*dy < radiusSq && s.g.InBounds(wx, wy) {
				s.lit[s.g.Index(wx, wy)] = true
			}

			opaque := s.g.Get(wx, wy) == gamemap.Wall
			switch {
			case blocked && opaque:
				nextStart = right
			case blocked:
				blocked = false
				start = nextStart
			case opaque && j < s.radius:
				blocked = true
				s.cast(j+1, start, left, m)
				nextStart = right
			}
		}
		if blocked {
			break
		}
	}
}
