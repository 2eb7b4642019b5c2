// Package bestiary loads the monster definitions the arena spawns from.
package bestiary

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"dungeon-crawl/internal/component"

	"gopkg.in/yaml.v3"
)

//go:embed bestiary.yaml
var defaultYAML []byte

// Entry describes one kind of monster.
type Entry struct {
	Name         string   `yaml:"name"`
	Glyph        string   `yaml:"glyph"`
	Level        int      `yaml:"level"`
	HP           int      `yaml:"hp"`
	Attack       int      `yaml:"attack"`
	Defense      int      `yaml:"defense"`
	Experience   int      `yaml:"experience"`
	Gold         int      `yaml:"gold"` // most gold dropped when slain
	MinDepth     int      `yaml:"min_depth"`
	MaxDepth     int      `yaml:"max_depth"`
	AbilityNames []string `yaml:"abilities"`

	Abilities component.Ability `yaml:"-"`
}

// Bestiary is an ordered, validated set of monster entries.
type Bestiary struct {
	Entries []Entry
}

type bestiaryFile struct {
	Monsters []Entry `yaml:"monsters"`
}

// Parse decodes and validates a YAML bestiary.
func Parse(data []byte) (*Bestiary, error) {
	var f bestiaryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse bestiary: %w", err)
	}
	if len(f.Monsters) == 0 {
		return nil, errors.New("bestiary defines no monsters")
	}
	for i := range f.Monsters {
		e := &f.Monsters[i]
		set, err := component.ParseAbilities(e.AbilityNames)
		if err != nil {
			return nil, fmt.Errorf("monster %q: %w", e.Name, err)
		}
		e.Abilities = set
	}
	b := &Bestiary{Entries: f.Monsters}
	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bestiary) validate() error {
	var problems []string
	names := make(map[string]bool)
	glyphs := make(map[string]string)
	for _, e := range b.Entries {
		switch {
		case e.Name == "":
			problems = append(problems, "monster with empty name")
			continue
		case names[e.Name]:
			problems = append(problems, fmt.Sprintf("monster %q defined twice", e.Name))
		}
		names[e.Name] = true
		if other, ok := glyphs[e.Glyph]; ok && e.Glyph != "" {
			problems = append(problems, fmt.Sprintf("glyph %s used by %q and %q", e.Glyph, other, e.Name))
		}
		glyphs[e.Glyph] = e.Name
		if e.HP <= 0 {
			problems = append(problems, fmt.Sprintf("monster %q has no hit points", e.Name))
		}
		if e.MinDepth < 1 || e.MaxDepth < e.MinDepth {
			problems = append(problems, fmt.Sprintf("monster %q has depth range %d-%d", e.Name, e.MinDepth, e.MaxDepth))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid bestiary:\n%s", strings.Join(problems, "\n"))
	}
	return nil
}

// Default returns the built-in bestiary.
func Default() *Bestiary {
	b, err := Parse(defaultYAML)
	if err != nil {
		panic(err)
	}
	return b
}

// Load reads a bestiary from path; an empty path yields the built-in one.
func Load(path string) (*Bestiary, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bestiary: %w", err)
	}
	return Parse(data)
}

// Lookup finds an entry by name.
func (b *Bestiary) Lookup(name string) (Entry, bool) {
	for _, e := range b.Entries {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return Entry{}, false
}

// ForDepth returns the entries that appear at depth, in file order.
func (b *Bestiary) ForDepth(depth int) []Entry {
	var out []Entry
	for _, e := range b.Entries {
		if depth >= e.MinDepth && depth <= e.MaxDepth {
			out = append(out, e)
		}
	}
	return out
}

// Pick chooses a random entry for depth. If nothing lives that deep the
// deepest-starting entry is used.
func (b *Bestiary) Pick(intn func(int) int, depth int) Entry {
	pool := b.ForDepth(depth)
	if len(pool) == 0 {
		deepest := b.Entries[0]
		for _, e := range b.Entries[1:] {
			if e.MinDepth > deepest.MinDepth {
				deepest = e
			}
		}
		return deepest
	}
	return pool[intn(len(pool))]
}
