// dungeon-arena runs special-attack bouts in the local terminal.
//
//	go build -o dungeon-arena ./cmd/arena
//	DUNGEON_DEPTH=12 ./dungeon-arena
//
// Logs go to arena.log in the data directory so they do not garble the
// screen.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"dungeon-crawl/internal/arena"
	"dungeon-crawl/internal/config"
	"dungeon-crawl/pkg/logger"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	out, closeLog := openLogFile(cfg.DataDir)
	defer closeLog()
	log := logger.New(out, cfg.LogLevel, cfg.LogFormat)

	res, err := arena.LoadResources(cfg, log)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	seed := cfg.RunSeed()
	for {
		log.WithField("seed", seed).Info("bout started")
		if !res.NewArena(seed).Run(screen) {
			return nil
		}
		seed++
	}
}

// openLogFile appends to arena.log in dir, discarding logs if that fails.
func openLogFile(dir string) (io.Writer, func()) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "arena.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}
