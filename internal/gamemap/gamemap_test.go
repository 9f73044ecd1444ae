package gamemap

import (
	"errors"
	"testing"
)

func TestNewFillsFloor(t *testing.T) {
	g, err := New(6, 4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.Width != 6 || g.Height != 4 {
		t.Fatalf("size = %dx%d, want 6x4", g.Width, g.Height)
	}
	if n := g.Count(Floor); n != 24 {
		t.Errorf("floor cells = %d, want 24", n)
	}
}

func TestNewRejectsNonPositive(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative width", -1, 5},
		{"negative height", 5, -3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := New(tc.w, tc.h)
			if !errors.Is(err, ErrInvalidSize) {
				t.Fatalf("New(%d,%d) err = %v, want ErrInvalidSize", tc.w, tc.h, err)
			}
			if g != nil {
				t.Error("no grid should be returned on failure")
			}
		})
	}
}

func TestInBounds(t *testing.T) {
	g, _ := New(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
		{0, -1, false},
	}
	for _, c := range cases {
		got := g.InBounds(c.x, c.y)
		if got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestGetOutOfBoundsIsWall(t *testing.T) {
	g, _ := New(5, 5)
	for _, p := range []Point{{-1, 0}, {0, -1}, {5, 0}, {0, 5}, {-100, 100}, {4, 5}} {
		if c := g.Get(p.X, p.Y); c != Wall {
			t.Errorf("Get(%d,%d) = %v, want wall", p.X, p.Y, c)
		}
	}
}

func TestGetReturnsStoredState(t *testing.T) {
	g, _ := New(7, 3)
	g.Set(6, 0, Wall)
	g.Set(0, 2, Wall)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			want := Floor
			if (x == 6 && y == 0) || (x == 0 && y == 2) {
				want = Wall
			}
			if got := g.Get(x, y); got != want {
				t.Errorf("Get(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

// Row-major storage must not mix up the axes on non-square grids.
func TestAxesAreNotTransposed(t *testing.T) {
	g, _ := New(3, 2)
	g.Set(2, 1, Wall)
	if g.Get(1, 2) != Wall {
		t.Error("(1,2) is out of bounds on a 3x2 grid and must read as wall")
	}
	if g.Index(2, 1) != 5 {
		t.Errorf("Index(2,1) = %d, want 5", g.Index(2, 1))
	}
	if p := g.Point(5); p != (Point{2, 1}) {
		t.Errorf("Point(5) = %v, want (2,1)", p)
	}
	if g.String() != "...\n..#" {
		t.Errorf("String() = %q", g.String())
	}
}

func TestSetOutOfBoundsIgnored(t *testing.T) {
	g, _ := New(2, 2)
	g.Set(-1, 0, Wall)
	g.Set(2, 2, Wall)
	if n := g.Count(Wall); n != 0 {
		t.Errorf("out-of-bounds writes leaked %d walls", n)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := MustParse(
		"#.#",
		".#.",
	)
	c := g.Clone()
	if !c.Equal(g) {
		t.Fatal("clone should equal original")
	}
	c.Set(1, 0, Wall)
	if g.Get(1, 0) != Floor {
		t.Error("mutating the clone changed the original")
	}
	if c.Equal(g) {
		t.Error("Equal should notice the changed cell")
	}
}

func TestRelease(t *testing.T) {
	g, _ := New(4, 4)
	g.Release()
	if g.Width != 0 || g.Height != 0 {
		t.Errorf("size after Release = %dx%d", g.Width, g.Height)
	}
	if g.Get(0, 0) != Wall {
		t.Error("released grid should read as wall everywhere")
	}
	g.Set(0, 0, Floor)
	if g.Count(Floor) != 0 {
		t.Error("released grid should ignore writes")
	}
}

func TestParseRoundTrip(t *testing.T) {
	rows := []string{
		"####",
		"#..#",
		"##.#",
	}
	g, err := Parse(rows...)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.Width != 4 || g.Height != 3 {
		t.Fatalf("size = %dx%d", g.Width, g.Height)
	}
	if want := "####\n#..#\n##.#"; g.String() != want {
		t.Errorf("String() = %q, want %q", g.String(), want)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want error
	}{
		{"no rows", nil, ErrInvalidSize},
		{"empty row", []string{""}, ErrInvalidSize},
		{"ragged", []string{"##", "#"}, ErrRaggedRows},
		{"bad glyph", []string{"#x"}, ErrUnknownGlyph},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.rows...); !errors.Is(err, tc.want) {
				t.Errorf("Parse err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestRect(t *testing.T) {
	r := Rect{X1: 0, Y1: 0, X2: 4, Y2: 4}
	if c := r.Center(); c != (Point{2, 2}) {
		t.Errorf("expected center (2,2), got %v", c)
	}
	if r.Width() != 5 || r.Height() != 5 {
		t.Errorf("size = %dx%d, want 5x5", r.Width(), r.Height())
	}
	if !r.Contains(Point{4, 0}) || r.Contains(Point{5, 0}) {
		t.Error("Contains should use inclusive edges")
	}
	g := Rect{X1: 2, Y1: 2, X2: 2, Y2: 2}.Grow(Point{0, 5})
	if g != (Rect{X1: 0, Y1: 2, X2: 2, Y2: 5}) {
		t.Errorf("Grow = %+v", g)
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{0, 0, 4, 4}
	b := Rect{3, 3, 7, 7}
	c := Rect{5, 5, 9, 9}
	if !a.Intersects(b) {
		t.Error("a and b should intersect")
	}
	if a.Intersects(c) {
		t.Error("a and c should not intersect")
	}
}
