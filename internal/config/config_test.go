package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Depth != 1 || cfg.HeroLevel != 1 || cfg.SSHPort != 2222 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("unexpected log defaults: %+v", cfg)
	}
	if want := filepath.Join(tmp, "dungeon-crawl"); cfg.DataDir != want {
		t.Errorf("DataDir = %q; want %q", cfg.DataDir, want)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DUNGEON_SEED", "77")
	t.Setenv("DUNGEON_DEPTH", "9")
	t.Setenv("DUNGEON_HERO_LEVEL", "8")
	t.Setenv("DUNGEON_DATA_DIR", "/tmp/bouts")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 77 || cfg.RunSeed() != 77 {
		t.Errorf("seed = %d", cfg.Seed)
	}
	if cfg.Depth != 9 || cfg.HeroLevel != 8 {
		t.Errorf("depth/level = %d/%d", cfg.Depth, cfg.HeroLevel)
	}
	if cfg.DataDir != "/tmp/bouts" || cfg.LogFormat != "json" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name, key, value, want string
	}{
		{"depth zero", "DUNGEON_DEPTH", "0", "DUNGEON_DEPTH"},
		{"level zero", "DUNGEON_HERO_LEVEL", "0", "DUNGEON_HERO_LEVEL"},
		{"not a number", "DUNGEON_SEED", "abc", "parse env"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("XDG_DATA_HOME", t.TempDir())
			t.Setenv(tc.key, tc.value)
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Load() error = %v; want mention of %q", err, tc.want)
			}
		})
	}
}

func TestRunSeedFromClock(t *testing.T) {
	if (Config{}).RunSeed() == 0 {
		t.Error("a zero seed should be replaced")
	}
}
