// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package taxonomy

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/idea-engine/pkg/types"
)

func TestNewRejectsInvalidCategories(t *testing.T) {
	tests := []struct {
		name   string
		cats   []Category
		errMsg string
	}{
		{"empty flat", []Category{NewFlat("genre")}, "has no values"},
		{"empty leaf", []Category{NewFlat("genre", "Fantasy", "")}, "value 1 is empty"},
		{"duplicate", []Category{NewFlat("genre", "A"), NewFlat("genre", "B")}, "duplicate category"},
		{"unnamed", []Category{NewFlat(" ", "A")}, "name is empty"},
		{"nested without groups", []Category{NewNested("industry")}, "no subcategories"},
		{"empty group", []Category{NewNested("industry", Group{Name: "Tech"})}, "has no values"},
		{"repeated group", []Category{NewNested("industry",
			Group{Name: "Tech", Values: []string{"AI"}},
			Group{Name: "Tech", Values: []string{"IoT"}},
		)}, "repeats subcategory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cats...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestStoreLookups(t *testing.T) {
	s, err := New(
		NewFlat("genre", "Fantasy", "Horror"),
		NewNested("audience",
			Group{Name: "Age", Values: []string{"Gen Z", "Millennials"}},
			Group{Name: "Income", Values: []string{"Affluent"}},
		),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"genre", "audience"}, s.Categories())

	vals, err := s.Values("genre")
	require.NoError(t, err)
	assert.Equal(t, []string{"Fantasy", "Horror"}, vals)

	all, err := s.Values("audience")
	require.NoError(t, err)
	assert.Equal(t, []string{"Gen Z", "Millennials", "Affluent"}, all)

	sub, err := s.SubValues("audience", "Income")
	require.NoError(t, err)
	assert.Equal(t, []string{"Affluent"}, sub)

	subs, err := s.Subcategories("audience")
	require.NoError(t, err)
	assert.Equal(t, []string{"Age", "Income"}, subs)

	flatSubs, err := s.Subcategories("genre")
	require.NoError(t, err)
	assert.Empty(t, flatSubs)

	assert.True(t, s.Contains("audience", "Affluent"))
	assert.False(t, s.Contains("genre", "Affluent"))
	assert.False(t, s.Contains("missing", "Fantasy"))
}

func TestUnknownCategory(t *testing.T) {
	s := DefaultStory()

	_, err := s.Values("mood")
	assert.True(t, errors.Is(err, ErrUnknownCategory))

	_, err = s.Subcategories("mood")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = DefaultBusiness().SubValues(types.AttrIndustry, "Mining")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	assert.ErrorIs(t, s.Require(types.AttrGenre, "mood"), ErrUnknownCategory)
	assert.NoError(t, s.Require(types.StoryAttributes...))
}

func TestValuesReturnsCopy(t *testing.T) {
	s := DefaultStory()
	vals, err := s.Values(types.AttrGenre)
	require.NoError(t, err)
	vals[0] = "Mutated"

	again, err := s.Values(types.AttrGenre)
	require.NoError(t, err)
	assert.Equal(t, "Fantasy", again[0])
}

func TestDefaultCatalogs(t *testing.T) {
	story := DefaultStory()
	assert.Equal(t, types.StoryAttributes, story.Categories())
	for _, name := range story.Categories() {
		vals, err := story.Values(name)
		require.NoError(t, err)
		assert.Len(t, vals, 10, name)
	}

	business := DefaultBusiness()
	industries, err := business.Subcategories(types.AttrIndustry)
	require.NoError(t, err)
	assert.Len(t, industries, 8)

	c, err := business.Category(types.AttrConstraint)
	require.NoError(t, err)
	assert.Equal(t, Nested, c.Kind())
	group, ok := c.GroupOf("Talent shortage")
	assert.True(t, ok)
	assert.Equal(t, "Operational", group)
}

func TestParseAndMarshal(t *testing.T) {
	data := []byte(`categories:
  - name: genre
    values: [Fantasy, Horror]
  - name: industry
    groups:
      - name: Technology
        values: [AI, IoT]
      - name: Food
        values: [Meal Kits]
`)
	s, err := Parse(data)
	require.NoError(t, err)

	c, err := s.Category("industry")
	require.NoError(t, err)
	assert.Equal(t, Nested, c.Kind())
	assert.Equal(t, []string{"AI", "IoT", "Meal Kits"}, c.Values())

	out, err := Marshal(s)
	require.NoError(t, err)
	again, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, s.Categories(), again.Categories())
	vals, err := again.SubValues("industry", "Food")
	require.NoError(t, err)
	assert.Equal(t, []string{"Meal Kits"}, vals)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"invalid yaml", ":::bad\n"},
		{"values and groups", "categories:\n  - name: x\n    values: [a]\n    groups:\n      - name: g\n        values: [b]\n"},
		{"empty category", "categories:\n  - name: x\n"},
		{"direction unknown category", "categories:\n  - name: x\n    values: [a, b]\ndirections:\n  darker:\n    y: [a]\n"},
		{"direction unknown value", "categories:\n  - name: x\n    values: [a, b]\ndirections:\n  darker:\n    x: [c]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParseDirections(t *testing.T) {
	s, err := Parse([]byte(`categories:
  - name: genre
    values: [Fantasy, Horror, Drama]
directions:
  darker:
    genre: [Horror, Drama]
`))
	require.NoError(t, err)
	assert.Equal(t, map[string]map[string][]string{
		"darker": {"genre": {"Horror", "Drama"}},
	}, s.Subsets())

	out, err := Marshal(s)
	require.NoError(t, err)
	again, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, s.Subsets(), again.Subsets())

	assert.Empty(t, DefaultStory().Subsets())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	data, err := Marshal(DefaultStory())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.NoError(t, s.Require(types.StoryAttributes...))
}
