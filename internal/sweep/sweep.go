// Package sweep runs the generator over grids of parameters and many seeds
// and summarises how open and how fragmented the resulting caves are.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"cavegen/internal/gamemap"
	"cavegen/internal/generate"
)

// Params are the generation knobs a sweep varies.
type Params struct {
	WallChance float64
	Steps      int
	DeathLimit int
	BirthLimit int
}

func (p Params) String() string {
	return fmt.Sprintf("wall=%.2f steps=%d death=%d birth=%d", p.WallChance, p.Steps, p.DeathLimit, p.BirthLimit)
}

func (p Params) apply(cfg generate.Config) generate.Config {
	cfg.WallChance = p.WallChance
	cfg.Steps = p.Steps
	cfg.DeathLimit = p.DeathLimit
	cfg.BirthLimit = p.BirthLimit
	return cfg
}

// Result summarises every run of one parameter set.
type Result struct {
	Params
	Runs     int
	Failures int // runs that ended with no floor

	// Statistics over successful runs only.
	FloorMean   float64 // fraction of the map left as floor
	FloorStdDev float64
	PocketsMean float64 // pockets walled in by connectivity repair
}

// Grid returns every combination of the given options.
func Grid(wallChances []float64, steps, deaths, births []int) []Params {
	var sets []Params
	for _, wall := range wallChances {
		for _, s := range steps {
			for _, d := range deaths {
				for _, b := range births {
					sets = append(sets, Params{WallChance: wall, Steps: s, DeathLimit: d, BirthLimit: b})
				}
			}
		}
	}
	return sets
}

// outcome is the measurement of one (params, seed) run.
type outcome struct {
	ok      bool
	floor   float64
	pockets float64
}

// Run generates a cave for every parameter set and seed, at most workers at
// a time. base supplies size and logger; its Rand is replaced per run so
// results do not depend on scheduling. The first hard error cancels the
// sweep.
func Run(ctx context.Context, base generate.Config, sets []Params, seeds []int64, workers int) ([]Result, error) {
	if len(seeds) == 0 {
		return nil, errors.New("sweep: no seeds")
	}
	if workers < 1 {
		workers = 1
	}

	outcomes := make([][]outcome, len(sets))
	for i := range outcomes {
		outcomes[i] = make([]outcome, len(seeds))
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, p := range sets {
		for j, seed := range seeds {
			i, p, j, seed := i, p, j, seed
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				cfg := p.apply(base)
				cfg.Rand = rand.New(rand.NewSource(seed))
				cave, err := generate.Generate(cfg)
				if errors.Is(err, generate.ErrNoFloor) {
					return nil
				}
				if err != nil {
					return fmt.Errorf("sweep %s seed %d: %w", p, seed, err)
				}
				area := float64(cave.Grid.Width * cave.Grid.Height)
				outcomes[i][j] = outcome{
					ok:      true,
					floor:   float64(cave.Grid.Count(gamemap.Floor)) / area,
					pockets: float64(len(cave.Discarded)),
				}
				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	results := make([]Result, len(sets))
	for i, p := range sets {
		results[i] = summarise(p, outcomes[i])
	}
	return results, nil
}

func summarise(p Params, runs []outcome) Result {
	res := Result{Params: p, Runs: len(runs)}
	var floors, pockets []float64
	for _, o := range runs {
		if !o.ok {
			res.Failures++
			continue
		}
		floors = append(floors, o.floor)
		pockets = append(pockets, o.pockets)
	}
	switch len(floors) {
	case 0:
	case 1:
		res.FloorMean = floors[0]
		res.PocketsMean = pockets[0]
	default:
		res.FloorMean, res.FloorStdDev = stat.MeanStdDev(floors, nil)
		res.PocketsMean = stat.Mean(pockets, nil)
	}
	return res
}

// WriteTable prints results as aligned columns.
func WriteTable(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "wall\tsteps\tdeath\tbirth\truns\tfailed\tfloor\tstddev\tpockets\t")
	for _, r := range results {
		fmt.Fprintf(tw, "%.2f\t%d\t%d\t%d\t%d\t%d\t%.3f\t%.3f\t%.2f\t\n",
			r.WallChance, r.Steps, r.DeathLimit, r.BirthLimit,
			r.Runs, r.Failures, r.FloorMean, r.FloorStdDev, r.PocketsMean)
	}
	return tw.Flush()
}
