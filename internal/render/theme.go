package render

import (
	"fmt"
	"sort"

	"github.com/mattn/go-runewidth"
)

// Theme holds the glyphs used to draw a cave. All glyphs of a theme must
// have the same display width.
type Theme struct {
	Name  string
	Wall  string
	Floor string
	Start string // marker drawn on the tracked cell
}

// Width returns the number of terminal columns one cell occupies.
func (t Theme) Width() int {
	w := runewidth.StringWidth(t.Wall)
	for _, g := range []string{t.Floor, t.Start} {
		w = max(w, runewidth.StringWidth(g))
	}
	return max(w, 1)
}

// Themes lists the built-in tile sets by name.
var Themes = map[string]Theme{
	"ascii": {Name: "ascii", Wall: "#", Floor: ".", Start: "@"},
	"block": {Name: "block", Wall: "█", Floor: "·", Start: "@"},
	// Emoji are rendered by the terminal with their own colors.
	"stone":   {Name: "stone", Wall: "🪨", Floor: "🟫", Start: "🧙"},
	"ice":     {Name: "ice", Wall: "🧊", Floor: "🔲", Start: "🐧"},
	"fungus":  {Name: "fungus", Wall: "🍄", Floor: "🌿", Start: "🐌"},
	"volcano": {Name: "volcano", Wall: "🌋", Floor: "🟥", Start: "🔥"},
}

// ThemeNames returns the built-in theme names in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupTheme returns the named built-in theme.
func LookupTheme(name string) (Theme, error) {
	t, ok := Themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (have %v)", name, ThemeNames())
	}
	return t, nil
}
