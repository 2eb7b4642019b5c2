// Package ssh adapts a gliderlabs SSH session to the tcell.Tty interface
// so an arena can draw to a remote terminal.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTty is a tcell.Tty backed by one SSH session.
type SessionTty struct {
	session gossh.Session
	winCh   <-chan gossh.Window

	mu     sync.Mutex
	window gossh.Window
	resize func()
	once   sync.Once
}

// NewSessionTty wraps s. pty holds the initial window size and winCh
// delivers later resizes.
func NewSessionTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{
		session: s,
		window:  pty.Window,
		winCh:   winCh,
	}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }
func (t *SessionTty) Close() error                { return t.session.Close() }

// Start, Stop and Drain are no-ops; the channel's lifetime belongs to the
// server handler.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the latest terminal dimensions.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb for window changes. The first call starts a
// watcher that runs until winCh closes or the session ends.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.resize = cb
	t.mu.Unlock()

	t.once.Do(func() { go t.watch() })
}

func (t *SessionTty) watch() {
	var done <-chan struct{}
	if ctx := t.session.Context(); ctx != nil {
		done = ctx.Done()
	}
	for {
		select {
		case win, ok := <-t.winCh:
			if !ok {
				return
			}
			t.mu.Lock()
			t.window = win
			cb := t.resize
			t.mu.Unlock()
			if cb != nil {
				cb()
			}
		case <-done:
			return
		}
	}
}
