package gamemap

// Cell is the state of one grid position.
type Cell uint8

const (
	Floor Cell = iota
	Wall
)

const (
	wallGlyph  = '#'
	floorGlyph = '.'
)

// Glyph returns the text form of c.
func (c Cell) Glyph() byte {
	if c == Wall {
		return wallGlyph
	}
	return floorGlyph
}

func (c Cell) String() string {
	switch c {
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	}
	return "unknown"
}
