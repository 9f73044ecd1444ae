// cavegen-sweep generates many caves per parameter set and prints how open
// and how fragmented they come out.
//
//	go run ./cmd/sweep -seeds 50 -width 80 -height 40
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"cavegen/internal/generate"
	"cavegen/internal/sweep"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err != flag.ErrHelp {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("cavegen-sweep", flag.ContinueOnError)
	fs.SetOutput(stderr)

	base := generate.DefaultConfig()
	fs.IntVar(&base.Width, "width", base.Width, "map width in cells")
	fs.IntVar(&base.Height, "height", base.Height, "map height in cells")
	seeds := fs.Int("seeds", 20, "seeds per parameter set")
	firstSeed := fs.Int64("first-seed", 1, "first seed; the rest follow consecutively")
	workers := fs.Int("workers", runtime.NumCPU(), "number of concurrent generations")
	walls := fs.String("walls", "0.40,0.45,0.50", "comma-separated wall chances")
	steps := fs.String("steps", "3,5", "comma-separated step counts")
	deaths := fs.String("death", "3,4", "comma-separated death limits")
	births := fs.String("birth", "4,5", "comma-separated birth limits")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *seeds < 1 {
		return fmt.Errorf("-seeds must be positive, got %d", *seeds)
	}
	base.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	wallList, err := parseList(*walls, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
	if err != nil {
		return fmt.Errorf("-walls: %w", err)
	}
	stepList, err := parseList(*steps, strconv.Atoi)
	if err != nil {
		return fmt.Errorf("-steps: %w", err)
	}
	deathList, err := parseList(*deaths, strconv.Atoi)
	if err != nil {
		return fmt.Errorf("-death: %w", err)
	}
	birthList, err := parseList(*births, strconv.Atoi)
	if err != nil {
		return fmt.Errorf("-birth: %w", err)
	}

	sets := sweep.Grid(wallList, stepList, deathList, birthList)
	seedList := make([]int64, *seeds)
	for i := range seedList {
		seedList[i] = *firstSeed + int64(i)
	}

	fmt.Fprintf(stdout, "Sweeping %d parameter sets x %d seeds (%d workers, %dx%d)\n\n",
		len(sets), len(seedList), *workers, base.Width, base.Height)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	start := time.Now()
	results, err := sweep.Run(ctx, base, sets, seedList, *workers)
	if err != nil {
		return err
	}
	if err := sweep.WriteTable(stdout, results); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "\nelapsed %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}

func parseList[T any](s string, parse func(string) (T, error)) ([]T, error) {
	var out []T
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := parse(field)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty list %q", s)
	}
	return out, nil
}
