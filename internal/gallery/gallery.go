// Package gallery holds the cave currently on display. Readers always see a
// complete snapshot: a new cave is generated off to the side and published
// with a single pointer swap.
package gallery

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"sync/atomic"

	"cavegen/internal/generate"
)

// DefaultAttempts is how many consecutive seeds Regenerate tries before
// giving up on a parameter set that keeps producing solid rock.
const DefaultAttempts = 8

// Snapshot is one published cave.
type Snapshot struct {
	Cave       *generate.Cave
	Seed       int64
	Generation int // 1 for the first published cave
}

// Gallery serializes regenerations and publishes their results.
type Gallery struct {
	cfg      generate.Config
	attempts int
	logger   *slog.Logger

	mu       sync.Mutex // held while generating
	nextSeed int64
	gen      int
	current  atomic.Pointer[Snapshot]

	notifyMu sync.Mutex
	notify   chan struct{}
}

// New creates a Gallery that will generate caves from cfg, starting at seed.
// cfg.Rand is ignored; every attempt gets its own source seeded from the
// attempt's seed. attempts <= 0 selects DefaultAttempts.
func New(cfg generate.Config, seed int64, attempts int, logger *slog.Logger) *Gallery {
	if logger == nil {
		logger = slog.Default()
	}
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	cfg.Rand = nil
	cfg.Logger = logger
	return &Gallery{
		cfg:      cfg,
		attempts: attempts,
		logger:   logger,
		nextSeed: seed,
		notify:   make(chan struct{}),
	}
}

// Current returns the published snapshot, or nil before the first
// successful Regenerate.
func (g *Gallery) Current() *Snapshot { return g.current.Load() }

// Updated returns a channel that is closed the next time a snapshot is
// published.
func (g *Gallery) Updated() <-chan struct{} {
	g.notifyMu.Lock()
	defer g.notifyMu.Unlock()
	return g.notify
}

// Regenerate builds a cave from the next seed and publishes it. Seeds that
// leave no floor are skipped, up to the configured number of attempts; the
// previous snapshot stays visible until a new one is ready.
func (g *Gallery) Regenerate() (*Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var lastErr error
	for i := 0; i < g.attempts; i++ {
		seed := g.nextSeed
		g.nextSeed++

		cfg := g.cfg
		cfg.Rand = rand.New(rand.NewSource(seed))
		cave, err := generate.Generate(cfg)
		if errors.Is(err, generate.ErrNoFloor) {
			g.logger.Warn("gallery: seed produced no floor, retrying", "seed", seed)
			lastErr = err
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("regenerate with seed %d: %w", seed, err)
		}

		g.gen++
		snap := &Snapshot{Cave: cave, Seed: seed, Generation: g.gen}
		g.publish(snap)
		g.logger.Info("gallery: cave published", "seed", seed, "generation", g.gen,
			"pockets_removed", len(cave.Discarded))
		return snap, nil
	}
	return nil, fmt.Errorf("regenerate: gave up after %d attempts: %w", g.attempts, lastErr)
}

func (g *Gallery) publish(snap *Snapshot) {
	g.current.Store(snap)
	g.notifyMu.Lock()
	close(g.notify)
	g.notify = make(chan struct{})
	g.notifyMu.Unlock()
}
