package generate

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"

	"cavegen/internal/gamemap"
)

// Config drives one cave generation.
type Config struct {
	Width, Height int
	Steps         int     // smoothing iterations
	WallChance    float64 // probability in [0,1] that a cell starts as wall
	DeathLimit    int     // a wall with fewer wall neighbours becomes floor
	BirthLimit    int     // a floor with more wall neighbours becomes wall
	Tunnel        int     // pockets of at least this many cells are joined, not walled in; 0 disables
	Rand          *rand.Rand
	Logger        *slog.Logger // nil means slog.Default()
}

// DefaultConfig returns the standard cave parameters. Rand is left nil and
// must be supplied by the caller.
func DefaultConfig() Config {
	return Config{
		Width:      80,
		Height:     40,
		Steps:      5,
		WallChance: 0.45,
		DeathLimit: 4,
		BirthLimit: 4,
	}
}

// Bind attaches the generation parameters to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "map width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "map height in cells")
	fs.IntVar(&c.Steps, "steps", c.Steps, "cellular automaton smoothing steps")
	fs.Float64Var(&c.WallChance, "wall", c.WallChance, "initial wall probability in [0,1]")
	fs.IntVar(&c.DeathLimit, "death", c.DeathLimit, "walls with fewer wall neighbours turn to floor")
	fs.IntVar(&c.BirthLimit, "birth", c.BirthLimit, "floors with more wall neighbours turn to wall")
	fs.IntVar(&c.Tunnel, "tunnel", c.Tunnel, "dig corridors to pockets of at least this many cells (0 walls them all in)")
}

// Validate reports the first parameter that cannot produce a cave.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("size %dx%d: %w", c.Width, c.Height, gamemap.ErrInvalidSize)
	}
	if c.Steps < 0 {
		return fmt.Errorf("steps %d is negative: %w", c.Steps, ErrInvalidConfig)
	}
	if c.WallChance < 0 || c.WallChance > 1 || c.WallChance != c.WallChance {
		return fmt.Errorf("wall chance %v outside [0,1]: %w", c.WallChance, ErrInvalidConfig)
	}
	if c.DeathLimit < 0 || c.DeathLimit > 8 {
		return fmt.Errorf("death limit %d outside [0,8]: %w", c.DeathLimit, ErrInvalidConfig)
	}
	if c.BirthLimit < 0 || c.BirthLimit > 8 {
		return fmt.Errorf("birth limit %d outside [0,8]: %w", c.BirthLimit, ErrInvalidConfig)
	}
	if c.Tunnel < 0 {
		return fmt.Errorf("tunnel size %d is negative: %w", c.Tunnel, ErrInvalidConfig)
	}
	if c.Rand == nil {
		return fmt.Errorf("no random source: %w", ErrInvalidConfig)
	}
	return nil
}

func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
