// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sampler draws values from a taxonomy using one injectable random
// source. A Sampler is not safe for concurrent use; callers sharing one
// across goroutines must serialize access.
package sampler

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/pdiddy/idea-engine/internal/taxonomy"
	"github.com/pdiddy/idea-engine/pkg/types"
)

// ErrInvalidRange is returned when a change-count range cannot be satisfied.
var ErrInvalidRange = errors.New("invalid change range")

// NewRand returns a PCG-backed random source. A zero seed selects a
// time-based seed.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// Sampler draws values from a taxonomy.
type Sampler struct {
	tax *taxonomy.Store
	rng *rand.Rand
}

// New builds a Sampler. All randomness comes from rng.
func New(tax *taxonomy.Store, rng *rand.Rand) *Sampler {
	return &Sampler{tax: tax, rng: rng}
}

// Taxonomy returns the store the sampler reads from.
func (s *Sampler) Taxonomy() *taxonomy.Store { return s.tax }

// Rand returns the sampler's random source so that collaborators draw from
// the same stream.
func (s *Sampler) Rand() *rand.Rand { return s.rng }

// IntN returns a uniform integer in [0, n).
func (s *Sampler) IntN(n int) int { return s.rng.IntN(n) }

// PickFrom returns a uniform choice from values, or "" when values is empty.
func (s *Sampler) PickFrom(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[s.rng.IntN(len(values))]
}

// Pick draws one value from a category. Nested categories first pick a
// subcategory uniformly and then a value within it, so every subcategory
// carries equal weight regardless of its size.
func (s *Sampler) Pick(category string) (string, error) {
	_, v, err := s.PickGroup(category)
	return v, err
}

// PickGroup is Pick that also reports the chosen subcategory. The group is
// empty for flat categories.
func (s *Sampler) PickGroup(category string) (group, value string, err error) {
	c, err := s.tax.Category(category)
	if err != nil {
		return "", "", err
	}
	if c.Kind() == taxonomy.Flat {
		return "", s.PickFrom(c.Values()), nil
	}
	groups := c.Groups()
	g := groups[s.rng.IntN(len(groups))]
	return g.Name, s.PickFrom(g.Values), nil
}

// PickIn draws a value from one subcategory of a nested category.
func (s *Sampler) PickIn(category, subcategory string) (string, error) {
	vals, err := s.tax.SubValues(category, subcategory)
	if err != nil {
		return "", err
	}
	return s.PickFrom(vals), nil
}

// PickExcluding draws uniformly from the category's domain minus current.
// Nested categories use their flattened domain. When no alternative exists
// (a single-value domain) current is returned unchanged.
func (s *Sampler) PickExcluding(category, current string) (string, error) {
	vals, err := s.tax.Values(category)
	if err != nil {
		return "", err
	}
	candidates := vals[:0]
	for _, v := range vals {
		if v != current {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return current, nil
	}
	return s.PickFrom(candidates), nil
}

// Choose returns k distinct elements of items, sampled uniformly without
// replacement. k is clamped to len(items). items is not modified.
func (s *Sampler) Choose(items []string, k int) []string {
	k = min(max(k, 0), len(items))
	pool := append([]string(nil), items...)
	for i := 0; i < k; i++ {
		j := i + s.rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

// Shuffle permutes items in place.
func (s *Sampler) Shuffle(items []string) {
	s.rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
}

// PickManyExcluding draws k uniformly from [minK, maxK], chooses k distinct
// categories of current and re-samples each with PickExcluding. Categories
// not chosen keep their value. maxK is clamped to the number of categories.
// The input set is not modified.
func (s *Sampler) PickManyExcluding(current types.AttributeSet, minK, maxK int) (types.AttributeSet, error) {
	keys := current.Keys()
	maxK = min(maxK, len(keys))
	if minK < 0 || minK > maxK {
		return nil, fmt.Errorf("%w: [%d, %d] over %d categories", ErrInvalidRange, minK, maxK, len(keys))
	}
	k := minK + s.rng.IntN(maxK-minK+1)

	out := current.Clone()
	for _, key := range s.Choose(keys, k) {
		v, err := s.PickExcluding(key, current[key])
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}

// PickAll samples one value for each named category.
func (s *Sampler) PickAll(categories ...string) (types.AttributeSet, error) {
	out := make(types.AttributeSet, len(categories))
	for _, c := range categories {
		v, err := s.Pick(c)
		if err != nil {
			return nil, err
		}
		out[c] = v
	}
	return out, nil
}
