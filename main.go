// cavegen generates a cave and prints it, or opens it in an interactive
// terminal viewer.
//
//	cavegen [-width 80] [-height 40] [-seed N] [-view] [-theme fungus]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"cavegen/internal/gallery"
	"cavegen/internal/generate"
	"cavegen/internal/render"
	"cavegen/internal/viewer"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("cavegen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfg := generate.DefaultConfig()
	cfg.Bind(fs)
	seed := fs.Int64("seed", time.Now().UnixNano(), "random seed")
	view := fs.Bool("view", false, "open the interactive viewer instead of printing")
	themeName := fs.String("theme", "ascii", "viewer tile set: "+strings.Join(render.ThemeNames(), ", "))
	retries := fs.Int("retries", gallery.DefaultAttempts, "seeds to try when a cave comes out solid")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	theme, err := render.LookupTheme(*themeName)
	if err != nil {
		return err
	}

	gal := gallery.New(cfg, *seed, *retries, logger)
	snap, err := gal.Regenerate()
	if err != nil {
		return err
	}

	if !*view {
		_, err := fmt.Fprintln(stdout, snap.Cave.Grid.String())
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := viewer.New(screen, gal, theme, logger).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
