// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/idea-engine/internal/compose"
	"github.com/pdiddy/idea-engine/internal/evolve"
	"github.com/pdiddy/idea-engine/internal/lineage"
	"github.com/pdiddy/idea-engine/internal/sampler"
	"github.com/pdiddy/idea-engine/internal/story"
	"github.com/pdiddy/idea-engine/internal/taxonomy"
	"github.com/pdiddy/idea-engine/pkg/types"
)

// session wires the core components for one command invocation.
type session struct {
	cfg      types.EngineConfig
	history  types.HistoryConfig
	store    *lineage.Store
	sampler  *sampler.Sampler
	composer *compose.Composer
	engine   *evolve.Engine
	stories  *story.Generator

	// unreadable is set when the history file exists but failed to load.
	// The first save moves it aside instead of overwriting it.
	unreadable bool
}

func engineConfig() types.EngineConfig {
	return types.EngineConfig{
		Seed:         viper.GetInt64("seed"),
		TaxonomyFile: viper.GetString("taxonomy"),
		Variations:   viper.GetInt("variations"),
		VariationMin: viper.GetInt("variation-min"),
		VariationMax: viper.GetInt("variation-max"),
	}.WithDefaults()
}

func historyConfig() types.HistoryConfig {
	path := viper.GetString("history")
	if path == "" {
		path = "story_ideas.json"
	}
	return types.HistoryConfig{Path: path}
}

func archiveConfig() types.ArchiveConfig {
	dir := viper.GetString("archive-dir")
	if dir == "" {
		dir = "archive"
	}
	return types.ArchiveConfig{ArchiveDir: dir}
}

// openSession loads the history file and builds the engine. A missing
// history starts empty. An unreadable one is reported and also starts
// empty; it is moved to <path>.bak before the next save.
func openSession() (*session, error) {
	cfg := engineConfig()
	hist := historyConfig()

	tax := taxonomy.DefaultStory()
	restrictions := evolve.DefaultRestrictions()
	if cfg.TaxonomyFile != "" {
		t, err := taxonomy.Load(cfg.TaxonomyFile)
		if err != nil {
			return nil, err
		}
		tax = t
		restrictions, err = evolve.OverrideRestrictions(evolve.FitRestrictions(restrictions, tax), tax.Subsets())
		if err != nil {
			return nil, fmt.Errorf("taxonomy %s: %w", cfg.TaxonomyFile, err)
		}
	}

	store, err := lineage.LoadOrNew(hist.Path)
	unreadable := err != nil && !errors.Is(err, fs.ErrNotExist)
	if unreadable {
		fmt.Fprintf(os.Stderr, "warning: could not load %s, starting with an empty history (the file is kept as %s.bak on save): %v\n",
			hist.Path, hist.Path, err)
	}
	logger.Debug("history loaded", zap.String("path", hist.Path), zap.Int("entities", store.Size()))

	rng := sampler.NewRand(cfg.Seed)
	s := sampler.New(tax, rng)
	c := compose.NewDefault(rng)

	engine, err := evolve.New(store, s, c,
		evolve.WithLogger(logger),
		evolve.WithVariationRange(cfg.VariationMin, cfg.VariationMax),
		evolve.WithRestrictions(restrictions),
	)
	if err != nil {
		return nil, err
	}
	stories, err := story.New(store, s, c, engine,
		story.WithLogger(logger),
		story.WithVariations(cfg.Variations),
	)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:      cfg,
		history:  hist,
		store:    store,
		sampler:  s,
		composer: c,
		engine:   engine,
		stories:  stories,

		unreadable: unreadable,
	}, nil
}

// save writes the history file. An unreadable history is renamed to
// <path>.bak first so its contents survive.
func (s *session) save() error {
	if s.unreadable {
		bak := s.history.Path + ".bak"
		if err := os.Rename(s.history.Path, bak); err != nil {
			return fmt.Errorf("%w: preserving %s: %w", lineage.ErrPersistence, s.history.Path, err)
		}
		fmt.Fprintf(os.Stderr, "warning: moved unreadable history to %s\n", bak)
		s.unreadable = false
	}
	if err := lineage.Save(s.history.Path, s.store); err != nil {
		return err
	}
	logger.Debug("history saved", zap.String("path", s.history.Path), zap.Int("entities", s.store.Size()))
	return nil
}

// parseID validates an entity id argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid idea id %q: want a non-negative integer", arg)
	}
	return id, nil
}
