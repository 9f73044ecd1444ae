// cavegen-server lets anyone with an SSH client browse generated caves.
// Every session sees the same gallery: pressing r in one terminal
// regenerates the cave for all of them. Build:
//
//	go build -o cavegen-server ./cmd/server
//
// Usage:
//
//	./cavegen-server [-port 2222] [-key server_host_key] [-width 80 -height 40 ...]
//
// Connect:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"

	"cavegen/internal/gallery"
	"cavegen/internal/generate"
	"cavegen/internal/render"
	"cavegen/internal/sshtty"
	"cavegen/internal/viewer"
)

func main() {
	cfg := generate.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed of the first cave")
	themeName := flag.String("theme", "fungus", "tile set shown to clients")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	theme, err := render.LookupTheme(*themeName)
	if err != nil {
		logger.Error("bad theme", "error", err)
		os.Exit(1)
	}
	signer, err := loadOrCreateHostKey(*keyFile, logger)
	if err != nil {
		logger.Error("host key", "error", err)
		os.Exit(1)
	}

	gal := gallery.New(cfg, *seed, 0, logger)
	if _, err := gal.Regenerate(); err != nil {
		logger.Error("first cave", "error", err)
		os.Exit(1)
	}

	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: sessionHandler(gal, theme, logger),
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: this is a read-mostly preview server.
		HostSigners: []gossh.Signer{signer},
	}

	logger.Info("cavegen SSH server listening", "port", *port)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// sessionHandler runs a viewer for one connection. It blocks for the
// lifetime of the connection so the SSH session stays open.
func sessionHandler(gal *gallery.Gallery, theme render.Theme, logger *slog.Logger) gossh.Handler {
	return func(s gossh.Session) {
		log := logger.With("user", s.User(), "remote", s.RemoteAddr().String())
		if _, _, hasPTY := s.Pty(); !hasPTY {
			fmt.Fprintln(s, "A terminal is required. Connect with: ssh -t -p <port> <host>")
			return
		}

		screen, err := sshtty.NewScreen(s, log)
		if err != nil {
			log.Warn("screen setup failed", "error", err)
			fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
			return
		}
		defer screen.Fini()

		log.Info("session started")
		if err := viewer.New(screen, gal, theme, log).Run(s.Context()); err != nil {
			log.Info("session ended", "reason", err)
			return
		}
		log.Info("session ended")
	}
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating new ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for the next run; failing to save is not fatal.
	pemBlock, err := xssh.MarshalPrivateKey(key, "cavegen server")
	if err == nil {
		err = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600)
	}
	if err != nil {
		logger.Warn("could not save host key", "path", path, "error", err)
	}
	return signer, nil
}
