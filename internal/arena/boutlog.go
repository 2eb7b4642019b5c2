package arena

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"dungeon-crawl/pkg/logger"

	"github.com/sirupsen/logrus"
)

// BoutFile is the name of the JSON-lines file bouts are appended to.
const BoutFile = "bouts.jsonl"

// Bout records statistics gathered during one arena bout.
type Bout struct {
	Seed         int64          `json:"seed"`
	Outcome      string         `json:"outcome"`
	StartDepth   int            `json:"start_depth"`
	DepthReached int            `json:"depth_reached"`
	Turns        int            `json:"turns"`
	Level        int            `json:"level"`
	Gold         int            `json:"gold"`
	Kills        map[string]int `json:"kills"` // monster name → kill count
	ItemsUsed    int            `json:"items_used"`
	DamageDealt  int            `json:"damage_dealt"`
	DamageTaken  int            `json:"damage_taken"`
	KilledBy     string         `json:"killed_by,omitempty"` // last monster to hit the player
}

// BoutLog appends finished bouts to <dir>/bouts.jsonl. It is safe for
// concurrent use by several arenas.
type BoutLog struct {
	mu     sync.Mutex
	path   string
	logger logrus.FieldLogger
}

// NewBoutLog returns a BoutLog writing into dir.
func NewBoutLog(dir string, log logrus.FieldLogger) *BoutLog {
	if log == nil {
		log = logger.Discard()
	}
	return &BoutLog{path: filepath.Join(dir, BoutFile), logger: log}
}

// Path is the file bouts are written to.
func (b *BoutLog) Path() string { return b.path }

// Append writes bout as a single JSON line. The log is best effort: a
// failure is logged as a warning and never interrupts play.
func (b *BoutLog) Append(bout Bout) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.write(bout); err != nil {
		b.logger.WithError(err).WithField("path", b.path).Warn("bout log not saved")
	}
}

func (b *BoutLog) write(bout Bout) error {
	data, err := json.Marshal(bout)
	if err != nil {
		return fmt.Errorf("encode bout: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return fmt.Errorf("create bout dir: %w", err)
	}
	f, err := os.OpenFile(b.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open bout log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write bout log: %w", err)
	}
	return nil
}
