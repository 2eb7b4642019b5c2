package arena

import (
	"fmt"

	"dungeon-crawl/internal/bestiary"
	"dungeon-crawl/internal/config"
	"dungeon-crawl/internal/factory"
	"dungeon-crawl/internal/message"

	"github.com/sirupsen/logrus"
)

// Resources are the read-only inputs shared by every bout a process runs.
type Resources struct {
	Bestiary *bestiary.Bestiary
	Catalog  message.Catalog
	Bouts    *BoutLog
	Logger   logrus.FieldLogger
	Depth    int
	Hero     factory.Hero
}

// LoadResources reads the bestiary and catalog named by cfg, falling back
// to the built-in ones, and opens the bout log in cfg.DataDir.
func LoadResources(cfg config.Config, logger logrus.FieldLogger) (*Resources, error) {
	b, err := bestiary.Load(cfg.BestiaryPath)
	if err != nil {
		return nil, fmt.Errorf("load bestiary: %w", err)
	}
	c, err := message.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	hero := factory.StartingHero
	hero.Level = cfg.HeroLevel
	return &Resources{
		Bestiary: b,
		Catalog:  c,
		Bouts:    NewBoutLog(cfg.DataDir, logger),
		Logger:   logger,
		Depth:    cfg.Depth,
		Hero:     hero,
	}, nil
}

// NewArena starts a bout with seed.
func (r *Resources) NewArena(seed int64) *Arena {
	return New(Options{
		Seed:     seed,
		Depth:    r.Depth,
		Hero:     r.Hero,
		Bestiary: r.Bestiary,
		Catalog:  r.Catalog,
		Bouts:    r.Bouts,
		Logger:   r.Logger,
	})
}
