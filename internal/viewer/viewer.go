// Package viewer is the interactive cave browser: it shows the gallery's
// current cave on a tcell screen and lets the user pan and regenerate.
package viewer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"cavegen/internal/fov"
	"cavegen/internal/gallery"
	"cavegen/internal/gamemap"
	"cavegen/internal/render"
)

const helpText = "[r]egenerate  [arrows/hjkl] pan  [c]enter  [f] lantern  [q]uit"

// LanternRadius is how far the lantern view reaches from the focus.
const LanternRadius = 10

// Viewer drives one screen. Several viewers may share a gallery; a cave
// regenerated by any of them is shown by all.
type Viewer struct {
	screen   tcell.Screen
	gallery  *gallery.Gallery
	renderer *render.Renderer
	logger   *slog.Logger

	shown   *gallery.Snapshot
	focus   gamemap.Point
	notice  string
	lantern bool
}

// New creates a Viewer. The screen must already be initialised.
func New(screen tcell.Screen, g *gallery.Gallery, theme render.Theme, logger *slog.Logger) *Viewer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Viewer{
		screen:   screen,
		gallery:  g,
		renderer: render.NewRenderer(screen, theme),
		logger:   logger,
	}
}

// Run blocks until the user quits, the screen is finalised, or ctx is done.
// Quitting returns nil; cancellation returns ctx.Err().
func (v *Viewer) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 32)
	go func() {
		defer close(events)
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		updated := v.gallery.Updated()
		v.draw()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-updated:
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				v.screen.Sync()
				v.renderer.Resize()
			case *tcell.EventKey:
				if v.handleKey(ev) {
					return nil
				}
			}
		}
	}
}

// handleKey applies one key press and reports whether the viewer should exit.
func (v *Viewer) handleKey(ev *tcell.EventKey) (quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.pan(0, -1)
	case tcell.KeyDown:
		v.pan(0, 1)
	case tcell.KeyLeft:
		v.pan(-1, 0)
	case tcell.KeyRight:
		v.pan(1, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'r', 'R':
			v.regenerate()
		case 'f', 'F':
			v.lantern = !v.lantern
		case 'c', 'C':
			if v.shown != nil {
				v.focus = v.shown.Cave.Start
			}
		case 'k':
			v.pan(0, -1)
		case 'j':
			v.pan(0, 1)
		case 'h':
			v.pan(-1, 0)
		case 'l':
			v.pan(1, 0)
		}
	}
	return false
}

func (v *Viewer) regenerate() {
	if _, err := v.gallery.Regenerate(); err != nil {
		v.logger.Error("viewer: regenerate failed", "err", err)
		v.notice = "regenerate failed: " + err.Error()
		return
	}
	v.notice = ""
}

// pan moves the focus, keeping it on the map.
func (v *Viewer) pan(dx, dy int) {
	if v.shown == nil {
		return
	}
	grid := v.shown.Cave.Grid
	v.focus.X = min(max(v.focus.X+dx, 0), grid.Width-1)
	v.focus.Y = min(max(v.focus.Y+dy, 0), grid.Height-1)
}

func (v *Viewer) draw() {
	snap := v.gallery.Current()
	if snap == nil {
		v.screen.Clear()
		v.renderer.DrawStatus(statusOrNotice("no cave yet  "+helpText, v.notice))
		v.screen.Show()
		return
	}
	if snap != v.shown {
		v.shown = snap
		v.focus = snap.Cave.Start
	}
	if v.lantern {
		v.renderer.SetMask(fov.Compute(snap.Cave.Grid, v.focus, LanternRadius))
	} else {
		v.renderer.SetMask(nil)
	}
	v.renderer.DrawView(snap.Cave.Grid, v.focus, snap.Cave.Start, statusOrNotice(Status(snap), v.notice))
}

// Status summarises a snapshot for the status bar.
func Status(snap *gallery.Snapshot) string {
	grid := snap.Cave.Grid
	return fmt.Sprintf("seed %d  #%d  %dx%d  floor %d  pockets removed %d  %s",
		snap.Seed, snap.Generation, grid.Width, grid.Height,
		grid.Count(gamemap.Floor), len(snap.Cave.Discarded), helpText)
}

func statusOrNotice(status, notice string) string {
	if notice != "" {
		return notice
	}
	return status
}
