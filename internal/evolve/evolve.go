// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package evolve derives new ideas from existing ones: variations re-sample
// a random subset of attributes, sequels keep a fixed number of anchor
// attributes and re-sample the rest, and directed evolutions re-sample
// selected attributes from a direction's restricted subset.
//
// An Engine shares its random source and lineage store with the rest of the
// session and is not safe for concurrent use.
package evolve

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/idea-engine/internal/compose"
	"github.com/pdiddy/idea-engine/internal/lineage"
	"github.com/pdiddy/idea-engine/internal/sampler"
	"github.com/pdiddy/idea-engine/pkg/types"
)

// Engine derives entities from entries of a lineage store.
type Engine struct {
	store    *lineage.Store
	sampler  *sampler.Sampler
	composer *compose.Composer
	log      *zap.Logger
	now      func() time.Time

	keepPool  []string
	keepCount int

	minChanges int
	maxChanges int

	directions map[types.Direction]Restriction
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithClock sets the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithSequelAnchors sets the categories a sequel may keep and how many of
// them it keeps. The default keeps 2 of genre, character_type and setting.
func WithSequelAnchors(pool []string, keep int) Option {
	return func(e *Engine) {
		e.keepPool = slices.Clone(pool)
		e.keepCount = keep
	}
}

// WithVariationRange sets how many attributes each variation changes.
// The default is 2 to 3.
func WithVariationRange(lo, hi int) Option {
	return func(e *Engine) {
		e.minChanges = lo
		e.maxChanges = hi
	}
}

// WithRestrictions replaces the direction table.
func WithRestrictions(r map[types.Direction]Restriction) Option {
	return func(e *Engine) { e.directions = r }
}

// New builds an Engine and checks that every direction restriction is a
// non-empty strict subset of its category's domain.
func New(store *lineage.Store, s *sampler.Sampler, c *compose.Composer, opts ...Option) (*Engine, error) {
	e := &Engine{
		store:      store,
		sampler:    s,
		composer:   c,
		log:        zap.NewNop(),
		now:        func() time.Time { return time.Now().UTC() },
		keepPool:   []string{types.AttrGenre, types.AttrCharacterType, types.AttrSetting},
		keepCount:  2,
		minChanges: 2,
		maxChanges: 3,
		directions: DefaultRestrictions(),
	}
	for _, o := range opts {
		o(e)
	}

	if e.keepCount < 0 || e.keepCount > len(e.keepPool) {
		return nil, fmt.Errorf("sequel keeps %d of %d anchor categories", e.keepCount, len(e.keepPool))
	}
	if e.minChanges < 0 || e.minChanges > e.maxChanges {
		return nil, fmt.Errorf("variation range [%d, %d]: %w", e.minChanges, e.maxChanges, sampler.ErrInvalidRange)
	}
	if err := s.Taxonomy().Require(e.keepPool...); err != nil {
		return nil, fmt.Errorf("sequel anchors: %w", err)
	}
	for _, d := range types.Directions {
		r, ok := e.directions[d]
		if !ok {
			return nil, fmt.Errorf("direction %q has no restriction", d)
		}
		if err := e.checkRestriction(d, r); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (e *Engine) checkRestriction(d types.Direction, r Restriction) error {
	tax := e.sampler.Taxonomy()
	for cat, subset := range r {
		domain, err := tax.Values(cat)
		if err != nil {
			return fmt.Errorf("direction %q: %w", d, err)
		}
		if len(subset) == 0 {
			return fmt.Errorf("direction %q restricts %q to an empty set", d, cat)
		}
		if len(subset) >= len(domain) {
			return fmt.Errorf("direction %q does not narrow %q", d, cat)
		}
		for _, v := range subset {
			if !slices.Contains(domain, v) {
				return fmt.Errorf("direction %q: %q is not a %s", d, v, cat)
			}
		}
	}
	return nil
}

// Restriction returns the restricted subset of category for a direction,
// or nil when the direction leaves the category unchanged.
func (e *Engine) Restriction(d types.Direction, category string) []string {
	return slices.Clone(e.directions[d][category])
}

// Variant is an unsaved alternative to an idea.
type Variant struct {
	Attributes types.AttributeSet
	Prompt     string
}

// Variants produces n alternatives to attrs. Each changes between the
// configured minimum and maximum number of attributes and is rendered with
// the idea bank. Nothing is written to the lineage store.
func (e *Engine) Variants(attrs types.AttributeSet, n int) ([]Variant, error) {
	if n < 0 {
		return nil, fmt.Errorf("variation count %d is negative", n)
	}
	out := make([]Variant, 0, n)
	for range n {
		next, err := e.sampler.PickManyExcluding(attrs, e.minChanges, e.maxChanges)
		if err != nil {
			return nil, fmt.Errorf("sampling variation: %w", err)
		}
		prompt, err := e.composer.Render(compose.KindIdea, next)
		if err != nil {
			return nil, err
		}
		out = append(out, Variant{Attributes: next, Prompt: prompt})
	}
	return out, nil
}

// Variations is Variants reduced to the rendered prompts.
func (e *Engine) Variations(attrs types.AttributeSet, n int) ([]string, error) {
	vs, err := e.Variants(attrs, n)
	if err != nil {
		return nil, err
	}
	prompts := make([]string, len(vs))
	for i, v := range vs {
		prompts[i] = v.Prompt
	}
	return prompts, nil
}

// Adopt persists a chosen variant of parentID as a new entity.
func (e *Engine) Adopt(parentID int, v Variant) (types.Entity, error) {
	parent, err := e.store.Get(parentID)
	if err != nil {
		return types.Entity{}, err
	}
	return e.appendDerived(parent, types.Entity{
		Title:          parent.Title + ": Variation",
		Prompt:         v.Prompt,
		Attributes:     v.Attributes.Clone(),
		DerivationKind: types.DerivationVariation,
	})
}

// Sequel derives a follow-up to parentID. It keeps the configured number
// of anchor categories identical and re-samples every other category away
// from the parent's value.
func (e *Engine) Sequel(parentID int) (types.Entity, error) {
	parent, err := e.store.Get(parentID)
	if err != nil {
		return types.Entity{}, err
	}

	keep := e.sampler.Choose(e.keepPool, e.keepCount)
	attrs := parent.Attributes.Clone()
	for _, k := range attrs.Keys() {
		if slices.Contains(keep, k) {
			continue
		}
		v, err := e.sampler.PickExcluding(k, attrs[k])
		if err != nil {
			return types.Entity{}, fmt.Errorf("sampling sequel %s: %w", k, err)
		}
		attrs[k] = v
	}

	prompt, err := e.composer.Render(compose.KindSequel, continuity(attrs, parent))
	if err != nil {
		return types.Entity{}, err
	}
	return e.appendDerived(parent, types.Entity{
		Title:          parent.Title + ": The Sequel",
		Prompt:         prompt,
		Attributes:     attrs,
		DerivationKind: types.DerivationSequel,
	})
}

// Evolve derives a version of parentID pushed toward a direction. Affected
// categories draw from the direction's restricted subset; the rest are
// copied. Unrecognized directions resolve to DefaultDirection.
func (e *Engine) Evolve(parentID int, direction string) (types.Entity, error) {
	d := ResolveDirection(direction)
	parent, err := e.store.Get(parentID)
	if err != nil {
		return types.Entity{}, err
	}

	attrs := parent.Attributes.Clone()
	if attrs == nil {
		attrs = types.AttributeSet{}
	}
	r := e.directions[d]
	for _, cat := range slices.Sorted(maps.Keys(r)) {
		attrs[cat] = e.sampler.PickFrom(r[cat])
	}

	prompt, err := e.composer.Render(compose.EvolutionKind(d), continuity(attrs, parent))
	if err != nil {
		return types.Entity{}, err
	}
	return e.appendDerived(parent, types.Entity{
		Title:          parent.Title + ": Evolved",
		Prompt:         prompt,
		Attributes:     attrs,
		DerivationKind: types.DerivationEvolution,
		Direction:      d,
	})
}

func (e *Engine) appendDerived(parent types.Entity, child types.Entity) (types.Entity, error) {
	pid := parent.ID
	child.ParentID = &pid
	child.ParentTitle = parent.Title
	child.CreatedAt = e.now()
	stored, err := e.store.Append(child)
	if err != nil {
		return types.Entity{}, err
	}
	e.log.Debug("derived idea",
		zap.Int("id", stored.ID),
		zap.Int("parent", pid),
		zap.String("kind", string(stored.DerivationKind)),
		zap.String("direction", string(stored.Direction)))
	return stored, nil
}

// continuity adds the parent's title and plot device to the render data.
func continuity(attrs types.AttributeSet, parent types.Entity) map[string]string {
	data := make(map[string]string, len(attrs)+2)
	maps.Copy(data, attrs)
	data[compose.KeyParentTitle] = parent.Title
	data[compose.KeyParentPlotDevice] = parent.Attributes[types.AttrPlotDevice]
	return data
}
