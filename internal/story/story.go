// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package story generates root story ideas: it samples one value from each
// story category, renders a prompt, attaches unsaved variations and
// appends the result to the lineage store.
package story

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/idea-engine/internal/compose"
	"github.com/pdiddy/idea-engine/internal/evolve"
	"github.com/pdiddy/idea-engine/internal/lineage"
	"github.com/pdiddy/idea-engine/internal/sampler"
	"github.com/pdiddy/idea-engine/pkg/types"
)

// Generator creates root ideas.
type Generator struct {
	store      *lineage.Store
	sampler    *sampler.Sampler
	composer   *compose.Composer
	engine     *evolve.Engine
	variations int
	log        *zap.Logger
	now        func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithVariations sets the number of variations attached to each idea.
func WithVariations(n int) Option {
	return func(g *Generator) { g.variations = n }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) { g.log = l }
}

// WithClock sets the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// New returns a Generator that samples every category in
// types.StoryAttributes. The sampler's taxonomy must define all of them.
func New(store *lineage.Store, s *sampler.Sampler, c *compose.Composer, e *evolve.Engine, opts ...Option) (*Generator, error) {
	g := &Generator{
		store:      store,
		sampler:    s,
		composer:   c,
		engine:     e,
		variations: 3,
		log:        zap.NewNop(),
		now:        func() time.Time { return time.Now().UTC() },
	}
	for _, o := range opts {
		o(g)
	}
	if g.variations < 0 {
		return nil, fmt.Errorf("variation count %d is negative", g.variations)
	}
	if err := s.Taxonomy().Require(types.StoryAttributes...); err != nil {
		return nil, fmt.Errorf("story taxonomy: %w", err)
	}
	return g, nil
}

// Generate appends count new root ideas and returns them in id order.
func (g *Generator) Generate(count int) ([]types.Entity, error) {
	if count < 1 {
		return nil, fmt.Errorf("idea count must be at least 1, got %d", count)
	}
	out := make([]types.Entity, 0, count)
	for range count {
		e, err := g.one()
		if err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (g *Generator) one() (types.Entity, error) {
	attrs, err := g.sampler.PickAll(types.StoryAttributes...)
	if err != nil {
		return types.Entity{}, fmt.Errorf("sampling idea: %w", err)
	}
	prompt, err := g.composer.Render(compose.KindIdea, attrs)
	if err != nil {
		return types.Entity{}, err
	}
	variations, err := g.engine.Variations(attrs, g.variations)
	if err != nil {
		return types.Entity{}, err
	}

	stored, err := g.store.Append(types.Entity{
		Title:          g.composer.RenderTitle(prompt),
		Prompt:         prompt,
		Attributes:     attrs,
		Variations:     variations,
		DerivationKind: types.DerivationNone,
		CreatedAt:      g.now(),
	})
	if err != nil {
		return types.Entity{}, err
	}
	g.log.Debug("generated idea",
		zap.Int("id", stored.ID),
		zap.String("title", stored.Title),
		zap.String("genre", attrs[types.AttrGenre]))
	return stored, nil
}
