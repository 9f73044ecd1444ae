package gamemap

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle with inclusive edges.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Width returns the number of columns covered by r.
func (r Rect) Width() int { return r.X2 - r.X1 + 1 }

// Height returns the number of rows covered by r.
func (r Rect) Height() int { return r.Y2 - r.Y1 + 1 }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X1 && p.X <= r.X2 && p.Y >= r.Y1 && p.Y <= r.Y2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Grow extends r so that it also covers p.
func (r Rect) Grow(p Point) Rect {
	r.X1 = min(r.X1, p.X)
	r.Y1 = min(r.Y1, p.Y)
	r.X2 = max(r.X2, p.X)
	r.Y2 = max(r.Y2, p.Y)
	return r
}
