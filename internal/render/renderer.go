// Package render draws caves onto a tcell screen.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"cavegen/internal/gamemap"
)

// statusRows is the number of rows reserved at the bottom for the status bar.
const statusRows = 2

// Renderer draws the cave onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	theme  Theme
	style  tcell.Style
	mask   []bool // cells outside the mask are left blank; nil shows all
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen, theme Theme) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, max(h-statusRows, 1), theme.Width()),
		theme:  theme,
		style:  tcell.StyleDefault.Background(tcell.ColorBlack),
	}
}

// Camera exposes the renderer's camera.
func (r *Renderer) Camera() *Camera { return r.camera }

// Theme returns the active tile set.
func (r *Renderer) Theme() Theme { return r.theme }

// Resize adapts the viewport to the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.Resize(w, max(h-statusRows, 1))
}

// SetMask restricts DrawGrid to the cells set in mask, indexed by
// Grid.Index. Pass nil to draw everything again.
func (r *Renderer) SetMask(mask []bool) { r.mask = mask }

// CenterOn recenters the camera on world position p.
func (r *Renderer) CenterOn(p gamemap.Point) { r.camera.Center(p.X, p.Y) }

// DrawFrame clears the screen and draws the grid with the tracked point
// marked and centered.
func (r *Renderer) DrawFrame(g *gamemap.Grid, tracked gamemap.Point, status string) {
	r.DrawView(g, tracked, tracked, status)
}

// DrawView is DrawFrame with the camera focus decoupled from the marker, so
// the view can be panned away from the start cell.
func (r *Renderer) DrawView(g *gamemap.Grid, focus, marker gamemap.Point, status string) {
	r.screen.Clear()
	r.CenterOn(focus)
	r.DrawGrid(g)
	r.DrawMarker(marker)
	r.DrawStatus(status)
	r.screen.Show()
}

// DrawGrid draws every cell of g plus a one-cell frame around it. The frame
// cells lie outside the grid and are drawn as whatever Get reports there.
func (r *Renderer) DrawGrid(g *gamemap.Grid) {
	for y := -1; y <= g.Height; y++ {
		for x := -1; x <= g.Width; x++ {
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			if r.mask != nil && !(g.InBounds(x, y) && r.mask[g.Index(x, y)]) {
				continue
			}
			glyph := r.theme.Floor
			if g.Get(x, y) == gamemap.Wall {
				glyph = r.theme.Wall
			}
			r.putGlyph(sx, sy, glyph, r.style)
		}
	}
}

// DrawMarker draws the theme's start glyph at world position p.
func (r *Renderer) DrawMarker(p gamemap.Point) {
	sx, sy, onScreen := r.camera.WorldToScreen(p.X, p.Y)
	if !onScreen {
		return
	}
	r.putGlyph(sx, sy, r.theme.Start, r.style.Foreground(tcell.ColorYellow))
}

// DrawStatus renders a separator and one line of text below the map view.
func (r *Renderer) DrawStatus(text string) {
	w, h := r.screen.Size()
	top := h - statusRows
	if top < 0 {
		return
	}
	sep := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, top, '─', nil, sep)
	}
	x := 0
	for _, ch := range text {
		if x >= w {
			break
		}
		r.screen.SetContent(x, top+1, ch, nil, tcell.StyleDefault.Foreground(tcell.ColorWhite))
		x += max(runewidth.RuneWidth(ch), 1)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if tw := r.camera.tile(); runewidth.StringWidth(glyph) < tw {
		// Pad narrow glyphs so every cell spans the same number of columns.
		for i := runewidth.StringWidth(glyph); i < tw; i++ {
			r.screen.SetContent(x+i, y, ' ', nil, style)
		}
	}
}
