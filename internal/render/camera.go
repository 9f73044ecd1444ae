package render

// Camera translates between world cells and screen columns/rows.
// Each world cell is TileWidth columns wide so that double-width glyphs
// line up on the terminal grid.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
	TileWidth  int // columns per world cell; values below 1 act as 1
}

// NewCamera creates a camera centered on (cx, cy).
func NewCamera(cx, cy, viewW, viewH, tileW int) *Camera {
	if tileW < 1 {
		tileW = 1
	}
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH, TileWidth: tileW}
	c.Center(cx, cy)
	return c
}

// Resize changes the viewport while keeping the same world cell centered.
func (c *Camera) Resize(viewW, viewH int) {
	cx, cy := c.focus()
	c.ViewWidth, c.ViewHeight = viewW, viewH
	c.Center(cx, cy)
}

// Center repositions the camera so that world position (cx, cy) is in the middle.
func (c *Camera) Center(cx, cy int) {
	c.OffsetX = cx - (c.ViewWidth/c.tile())/2
	c.OffsetY = cy - c.ViewHeight/2
}

func (c *Camera) focus() (int, int) {
	return c.OffsetX + (c.ViewWidth/c.tile())/2, c.OffsetY + c.ViewHeight/2
}

// WorldToScreen converts world (wx, wy) to screen (sx, sy).
// visible is false when the tile does not fit entirely inside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	tw := c.tile()
	sx = (wx - c.OffsetX) * tw
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx+tw <= c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return floorDiv(sx, c.tile()) + c.OffsetX, sy + c.OffsetY
}

func (c *Camera) tile() int { return max(c.TileWidth, 1) }

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
