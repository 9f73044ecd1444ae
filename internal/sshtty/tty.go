// Package sshtty lets a tcell screen run over an SSH session.
package sshtty

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// DefaultTerm is used when the client sends no TERM or one we do not trust.
const DefaultTerm = "xterm-256color"

// allowedTerms lists the terminal types accepted from clients. TERM ends up
// in a terminfo lookup, so arbitrary client strings are not passed through.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"xterm-color":           true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

// TermFromEnv picks the terminal type from a session environment.
func TermFromEnv(environ []string) string {
	for _, env := range environ {
		if term, ok := strings.CutPrefix(env, "TERM="); ok {
			if allowedTerms[term] {
				return term
			}
			break
		}
	}
	return DefaultTerm
}

// SessionTty implements tcell.Tty on top of a gliderlabs/ssh session.
type SessionTty struct {
	session gossh.Session
	winCh   <-chan gossh.Window
	once    sync.Once

	mu     sync.Mutex
	window gossh.Window
	cb     func()
}

// New wraps s. pty carries the initial window; winCh delivers resizes.
func New(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{session: s, window: pty.Window, winCh: winCh}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }
func (t *SessionTty) Close() error                { return t.session.Close() }

// The channel is opened and torn down by the SSH server, not by tcell.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the most recent window reported by the client.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize sets the callback run after each window change. tcell may
// call it again (with nil on shutdown); only the first call starts the
// goroutine that drains winCh.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()

	t.once.Do(func() {
		go func() {
			for win := range t.winCh {
				t.mu.Lock()
				t.window = win
				cb := t.cb
				t.mu.Unlock()
				if cb != nil {
					cb()
				}
			}
		}()
	})
}

// termMu guards the TERM environment variable, which tcell reads while
// building a terminfo screen.
var termMu sync.Mutex

// setTerm points TERM at term for the next terminfo lookup. The caller
// holds termMu. On failure TERM keeps its previous value.
func setTerm(term string, logger *slog.Logger) {
	if err := os.Setenv("TERM", term); err != nil {
		logger.Warn("sshtty: could not set TERM", "term", term, "error", err)
	}
}

// NewScreen builds and initialises a tcell screen for an SSH session. The
// session must have a PTY. A nil logger means slog.Default().
func NewScreen(s gossh.Session, logger *slog.Logger) (tcell.Screen, error) {
	if logger == nil {
		logger = slog.Default()
	}
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, fmt.Errorf("sshtty: session has no pty")
	}
	tty := New(s, pty, winCh)

	termMu.Lock()
	setTerm(TermFromEnv(s.Environ()), logger)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("sshtty: terminal setup: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("sshtty: screen init: %w", err)
	}
	return screen, nil
}
