// Package gamemap holds the cave grid shared by the generator and its
// consumers. Coordinates are (x, y) with x growing to the right and y
// growing downwards; cells are stored row-major.
package gamemap

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSize is returned when a grid is requested with a
	// non-positive width or height.
	ErrInvalidSize = errors.New("gamemap: dimensions must be positive")
	// ErrRaggedRows is returned by Parse when rows differ in length.
	ErrRaggedRows = errors.New("gamemap: all rows must have the same length")
	// ErrUnknownGlyph is returned by Parse for characters other than '#' and '.'.
	ErrUnknownGlyph = errors.New("gamemap: unknown cell glyph")
)

// Grid is a fixed-size field of cells. Reads outside the grid report Wall,
// so the map behaves as if it were embedded in solid rock.
type Grid struct {
	Width, Height int
	cells         []Cell
}

// New creates a Grid filled with floor.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("new grid %dx%d: %w", width, height, ErrInvalidSize)
	}
	return &Grid{Width: width, Height: height, cells: make([]Cell, width*height)}, nil
}

// InBounds reports whether (x, y) is within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index returns the linear index of (x, y). The caller must check bounds.
func (g *Grid) Index(x, y int) int { return y*g.Width + x }

// Point converts a linear index back to coordinates.
func (g *Grid) Point(i int) Point { return Point{X: i % g.Width, Y: i / g.Width} }

// Get returns the cell at (x, y), or Wall when (x, y) is outside the grid.
func (g *Grid) Get(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.cells[g.Index(x, y)]
}

// Set replaces the cell at (x, y). Writes outside the grid are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[g.Index(x, y)] = c
}

// Fill sets every cell to c.
func (g *Grid) Fill(c Cell) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

// Count returns how many cells hold c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// Release drops the cell storage. Afterwards the grid is empty: every Get
// reports Wall and every Set is ignored.
func (g *Grid) Release() {
	g.cells = nil
	g.Width, g.Height = 0, 0
}

// String renders the grid as rows of '#' (wall) and '.' (floor).
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.Width; x++ {
			b.WriteByte(g.Get(x, y).Glyph())
		}
	}
	return b.String()
}

// Parse builds a grid from rows written in the String notation.
func Parse(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("parse grid: no rows: %w", ErrInvalidSize)
	}
	g, err := New(len(rows[0]), len(rows))
	if err != nil {
		return nil, fmt.Errorf("parse grid: %w", err)
	}
	for y, row := range rows {
		if len(row) != g.Width {
			return nil, fmt.Errorf("parse grid: row %d has %d cells, want %d: %w", y, len(row), g.Width, ErrRaggedRows)
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case wallGlyph:
				g.Set(x, y, Wall)
			case floorGlyph:
				g.Set(x, y, Floor)
			default:
				return nil, fmt.Errorf("parse grid: %q at (%d,%d): %w", row[x], x, y, ErrUnknownGlyph)
			}
		}
	}
	return g, nil
}

// MustParse is like Parse but panics on malformed input. Intended for
// fixtures in tests and examples.
func MustParse(rows ...string) *Grid {
	g, err := Parse(rows...)
	if err != nil {
		panic(err)
	}
	return g
}
