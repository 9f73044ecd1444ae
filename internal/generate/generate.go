// Package generate builds cave maps: random wall noise, smoothed by a
// two-threshold cellular automaton, then repaired so that every floor cell
// is reachable from a single start cell.
package generate

import (
	"fmt"

	"cavegen/internal/gamemap"
)

// Cave is a finished map plus what the generator learned building it.
type Cave struct {
	Grid  *gamemap.Grid
	Start gamemap.Point
	// Discarded lists the floor pockets that connectivity repair walled in.
	Discarded []Region
	// Joined lists the pockets that were tunnelled to instead.
	Joined []Region
}

// Generate runs the full pipeline: noise, cfg.Steps smoothing passes,
// optional tunnelling, and connectivity repair. The result depends only
// on cfg and the state of cfg.Rand. On error no cave is returned.
func Generate(cfg Config) (*Cave, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	log := cfg.logger()

	seed, err := gamemap.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	FillRandom(seed, cfg.WallChance, cfg.Rand)
	log.Debug("noise seeded", "width", cfg.Width, "height", cfg.Height, "walls", seed.Count(gamemap.Wall))

	grid := Smooth(seed, cfg.Steps, cfg.DeathLimit, cfg.BirthLimit)
	if grid != seed {
		seed.Release()
	}
	log.Debug("smoothing done", "steps", cfg.Steps, "floor", grid.Count(gamemap.Floor))

	regions := Regions(grid)
	var joined []Region
	if cfg.Tunnel > 0 {
		start, err := FindStart(grid)
		if err != nil {
			grid.Release()
			return nil, fmt.Errorf("generate: %w", err)
		}
		joined = Tunnel(grid, start, regions, cfg.Tunnel, cfg.Rand)
		log.Debug("pockets tunnelled", "joined", len(joined))
	}

	start, err := Connect(grid)
	if err != nil {
		grid.Release()
		return nil, fmt.Errorf("generate: %w", err)
	}

	cave := &Cave{Grid: grid, Start: start, Joined: joined}
	for _, r := range regions {
		if !survived(grid, r) {
			cave.Discarded = append(cave.Discarded, r)
		}
	}
	log.Debug("connectivity repaired",
		"start_x", start.X, "start_y", start.Y,
		"floor", grid.Count(gamemap.Floor),
		"pockets_removed", len(cave.Discarded))
	return cave, nil
}

// survived reports whether r is part of the final cave. After Connect only
// one region is left, and regions never share cells, so checking the anchor
// is enough.
func survived(g *gamemap.Grid, r Region) bool {
	return g.Get(r.Anchor.X, r.Anchor.Y) == gamemap.Floor
}
