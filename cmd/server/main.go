// dungeon-server hosts arena bouts over SSH. Every connection gets its own
// arena; nothing is shared between sessions except the read-only bestiary
// and message catalog and the bout log.
//
//	go build -o dungeon-server ./cmd/server
//	./dungeon-server [--port 2222] [--key server_host_key]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"dungeon-crawl/internal/arena"
	"dungeon-crawl/internal/config"
	internalssh "dungeon-crawl/internal/ssh"
	"dungeon-crawl/pkg/logger"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/sirupsen/logrus"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	port := flag.Int("port", cfg.SSHPort, "SSH server port")
	keyFile := flag.String("key", cfg.HostKey, "Path to the PEM-encoded host key (auto-generated if absent)")
	flag.Parse()

	log := logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	res, err := arena.LoadResources(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("load resources")
	}
	signer, err := loadOrCreateHostKey(*keyFile, log)
	if err != nil {
		log.WithError(err).Fatal("host key")
	}

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", *port),
		Handler: func(s gossh.Session) {
			handleSession(s, res, cfg, log)
		},
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Any client may connect; add gossh.PublicKeyAuth for real auth.
		HostSigners: []gossh.Signer{signer},
	}

	log.WithField("port", *port).Info("dungeon-server listening")
	log.Fatal(srv.ListenAndServe())
}

// allowedTerms lists the TERM values a client may select. Anything else
// falls back to xterm-256color so clients cannot point terminfo lookups
// at arbitrary names.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
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

// maxNameBytes bounds the user name carried into logs.
const maxNameBytes = 16

// sanitizeName strips control characters from an SSH user name and cuts
// it to maxNameBytes without splitting a rune.
func sanitizeName(name string) string {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	cut := 0
	for i, r := range clean {
		n := utf8.RuneLen(r)
		if i+n > maxNameBytes {
			break
		}
		cut = i + n
	}
	return clean[:cut]
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// handleSession runs bouts for one SSH connection until the player quits
// or disconnects. It blocks so the SSH session stays open.
func handleSession(s gossh.Session, res *arena.Resources, cfg config.Config, log logrus.FieldLogger) {
	slog := log.WithFields(logrus.Fields{
		"user":   sanitizeName(s.User()),
		"remote": s.RemoteAddr().String(),
	})

	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p <port> <host>")
		return
	}

	term := "xterm-256color"
	if allowedTerms[pty.Term] {
		term = pty.Term
	}

	// TERM must be set in the process environment before NewTerminfoScreenFromTty.
	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}
	defer screen.Fini()

	slog.WithField("term", term).Info("session started")
	seed := cfg.RunSeed()
	for {
		a := res.NewArena(seed)
		again := a.Run(screen)
		slog.WithFields(logrus.Fields{
			"seed":    seed,
			"outcome": a.Record().Outcome,
		}).Info("bout ended")
		if !again {
			break
		}
		seed++
	}
	slog.Info("session closed")
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, log logrus.FieldLogger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.WithField("path", path).Info("loaded host key")
			return signer, nil
		}
	}

	log.WithField("path", path).Info("generating ed25519 host key")
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persisting is best-effort.
	pemBlock, err := xssh.MarshalPrivateKey(key, "dungeon-crawl server")
	if err == nil {
		err = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600)
	}
	if err != nil {
		log.WithError(err).Warn("host key not saved")
	}
	return signer, nil
}
