// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package business

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/idea-engine/internal/compose"
	"github.com/pdiddy/idea-engine/internal/sampler"
	"github.com/pdiddy/idea-engine/internal/taxonomy"
	"github.com/pdiddy/idea-engine/pkg/types"
)

var fixedTime = time.Date(2026, 7, 4, 15, 30, 0, 0, time.UTC)

func newGenerator(t *testing.T, seed uint64) *Generator {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, 7))
	n := 0
	g, err := New(
		sampler.New(taxonomy.DefaultBusiness(), rng),
		compose.NewDefault(rng),
		WithClock(func() time.Time { return fixedTime }),
		WithIDs(func() string { n++; return fmt.Sprintf("idea-%d", n) }),
	)
	require.NoError(t, err)
	return g
}

// assertWellFormed checks every field against the business taxonomy.
func assertWellFormed(t *testing.T, idea types.BusinessIdea) {
	t.Helper()
	tax := taxonomy.DefaultBusiness()
	c := idea.Concept

	niches, err := tax.SubValues(types.AttrIndustry, c.Industry)
	require.NoError(t, err, "industry %q", c.Industry)
	assert.Contains(t, niches, c.Niche)
	assert.True(t, tax.Contains(types.AttrDemographic, c.TargetAudience.Demographic))
	assert.True(t, tax.Contains(types.AttrPsychographic, c.TargetAudience.Psychographic))
	assert.True(t, tax.Contains(types.AttrTrend, c.Trend))
	assert.True(t, tax.Contains(types.AttrBusinessModel, c.BusinessModel))
	assert.True(t, tax.Contains(types.AttrRevenueStream, c.RevenueStream))
	assert.True(t, tax.Contains(types.AttrConstraint, idea.RealWorldConstraint.Challenge))
	assert.Contains(t, solutions, idea.RealWorldConstraint.Solution)

	assert.Len(t, idea.ValueProposition, 3)
	seen := map[string]bool{}
	for _, p := range idea.ValueProposition {
		assert.False(t, seen[p], "duplicate value proposition %q", p)
		seen[p] = true
	}

	hasSuffix := false
	for _, s := range nameSuffixes {
		if strings.HasSuffix(idea.BusinessName, s) {
			hasSuffix = true
		}
	}
	assert.True(t, hasSuffix, idea.BusinessName)
	assert.NotContains(t, idea.BusinessName, " ")

	assert.Contains(t, idea.Description, strings.ToLower(c.Niche))
	assert.Equal(t, "2026-07-04 15:30:00", idea.GeneratedAt)
	assert.NotEmpty(t, idea.ID)
}

func TestFromIndustry(t *testing.T) {
	g := newGenerator(t, 1)

	tests := []struct {
		name         string
		industry     string
		niche        string
		wantIndustry string
		wantNiche    string
	}{
		{"both sampled", "", "", "", ""},
		{"industry only", "Health", "", "Health", ""},
		{"both given", "Food", "Meal Kits", "Food", "Meal Kits"},
		{"niche infers industry", "", "Podcasts", "Entertainment", "Podcasts"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idea, err := g.FromIndustry(tt.industry, tt.niche)
			require.NoError(t, err)
			assertWellFormed(t, idea)
			if tt.wantIndustry != "" {
				assert.Equal(t, tt.wantIndustry, idea.Concept.Industry)
			}
			if tt.wantNiche != "" {
				assert.Equal(t, tt.wantNiche, idea.Concept.Niche)
			}
		})
	}
}

func TestFromIndustryRejectsUnknown(t *testing.T) {
	g := newGenerator(t, 2)

	_, err := g.FromIndustry("Aerospace", "")
	assert.ErrorIs(t, err, taxonomy.ErrUnknownCategory)

	_, err = g.FromIndustry("Aerospace", "Rockets")
	assert.ErrorIs(t, err, taxonomy.ErrUnknownCategory)

	_, err = g.FromIndustry("", "Rockets")
	assert.ErrorIs(t, err, ErrUnknownValue)

	_, err = g.FromIndustry("Technology", "Telemedicine")
	assert.ErrorIs(t, err, ErrUnknownValue, "niche from another industry")

	_, err = g.FromIndustry("Technology", "Rockets")
	assert.ErrorIs(t, err, ErrUnknownValue)

	idea, err := g.FromIndustry("Health", "Telemedicine")
	require.NoError(t, err)
	assert.Equal(t, "Telemedicine", idea.Concept.Niche)
}

func TestFromAudience(t *testing.T) {
	g := newGenerator(t, 3)
	idea, err := g.FromAudience("Freelancers", "Time scarcity")
	require.NoError(t, err)
	assertWellFormed(t, idea)
	assert.Equal(t, "Freelancers", idea.Concept.TargetAudience.Demographic)
	assert.Equal(t, "Time scarcity", idea.Concept.TargetAudience.Psychographic)

	idea, err = g.FromAudience("", "")
	require.NoError(t, err)
	assertWellFormed(t, idea)

	_, err = g.FromAudience("Martians", "")
	assert.ErrorIs(t, err, ErrUnknownValue)
}

func TestFromTrend(t *testing.T) {
	g := newGenerator(t, 4)
	idea, err := g.FromTrend("No-code tools")
	require.NoError(t, err)
	assertWellFormed(t, idea)
	assert.Equal(t, "No-code tools", idea.Concept.Trend)

	_, err = g.FromTrend("Telepathy")
	assert.ErrorIs(t, err, ErrUnknownValue)
}

func TestCollection(t *testing.T) {
	g := newGenerator(t, 5)
	for _, m := range []types.GenerationMethod{types.MethodIndustry, types.MethodAudience, types.MethodTrend, types.MethodMixed} {
		ideas, err := g.Collection(4, m)
		require.NoError(t, err, m)
		require.Len(t, ideas, 4)
		for _, idea := range ideas {
			assertWellFormed(t, idea)
		}
	}

	_, err := g.Collection(0, types.MethodMixed)
	assert.Error(t, err)
}

func TestCollectionIDsAreUnique(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	g, err := New(sampler.New(taxonomy.DefaultBusiness(), rng), compose.NewDefault(rng))
	require.NoError(t, err)

	ideas, err := g.Collection(20, types.MethodMixed)
	require.NoError(t, err)
	seen := map[string]bool{}
	for _, idea := range ideas {
		assert.Len(t, idea.ID, 36)
		assert.False(t, seen[idea.ID])
		seen[idea.ID] = true
	}
}

func TestParseMethod(t *testing.T) {
	assert.Equal(t, types.MethodIndustry, ParseMethod("Industry"))
	assert.Equal(t, types.MethodAudience, ParseMethod(" audience "))
	assert.Equal(t, types.MethodTrend, ParseMethod("trend"))
	assert.Equal(t, types.MethodMixed, ParseMethod("mixed"))
	assert.Equal(t, types.MethodMixed, ParseMethod("whatever"))
}

func TestPivotKeepsIndustryAndNiche(t *testing.T) {
	g := newGenerator(t, 6)
	src, err := g.FromIndustry("Education", "Language Learning")
	require.NoError(t, err)

	for range 20 {
		p, err := g.Pivot(src)
		require.NoError(t, err)
		assertWellFormed(t, p)
		assert.Equal(t, src.ID, p.ParentID)
		assert.NotEqual(t, src.ID, p.ID)
		assert.Equal(t, "Education", p.Concept.Industry)
		assert.Equal(t, "Language Learning", p.Concept.Niche)

		before, after := src.Attributes(), p.Attributes()
		changed := 0
		for k := range before {
			if before[k] != after[k] {
				changed++
			}
		}
		assert.Contains(t, []int{2, 3}, changed)
	}
}

func TestNewRequiresBusinessTaxonomy(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	_, err := New(sampler.New(taxonomy.DefaultStory(), rng), compose.NewDefault(rng))
	assert.ErrorIs(t, err, taxonomy.ErrUnknownCategory)
}

func TestSaveAndLoadCollection(t *testing.T) {
	g := newGenerator(t, 7)
	ideas, err := g.Collection(3, types.MethodMixed)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "business_ideas.json")
	require.NoError(t, SaveCollection(path, ideas))
	loaded, err := LoadCollection(path)
	require.NoError(t, err)
	assert.Equal(t, ideas, loaded)

	empty := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, SaveCollection(empty, nil))
	loaded, err = LoadCollection(empty)
	require.NoError(t, err)
	assert.Empty(t, loaded)

	assert.Error(t, SaveCollection(filepath.Join(t.TempDir(), "no", "dir.json"), ideas))
	_, err = LoadCollection(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
