// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/idea-engine/internal/lineage"
	"github.com/pdiddy/idea-engine/pkg/types"
)

var fixedTime = time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.ArchiveConfig{ArchiveDir: filepath.Join(t.TempDir(), "archive"), MaxResults: 20})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func intPtr(i int) *int { return &i }

func attrs(genre, setting string) types.AttributeSet {
	return types.AttributeSet{
		types.AttrGenre:         genre,
		types.AttrCharacterType: "Detective",
		types.AttrPlotDevice:    "Time Travel",
		types.AttrSetting:       setting,
		types.AttrTheme:         "Justice",
		types.AttrConflict:      "Person vs. Self",
	}
}

// sampleEntities builds root 0, root 1, sequel 2 of 0 and a darker
// evolution 3 of 2.
func sampleEntities() []types.Entity {
	return []types.Entity{
		{
			ID: 0, Title: "The Clockwork Harbor", Prompt: "In a Steampunk City, a detective faces person vs. self.",
			Attributes: attrs("Mystery", "Steampunk City"), Variations: []string{"v1"},
			DerivationKind: types.DerivationNone, CreatedAt: fixedTime,
		},
		{
			ID: 1, Title: "The Frozen Signal", Prompt: "A Science Fiction story on a Space Station.",
			Attributes:     attrs("Science Fiction", "Space Station"),
			DerivationKind: types.DerivationNone, CreatedAt: fixedTime,
		},
		{
			ID: 2, Title: "The Clockwork Harbor: The Sequel", Prompt: "Years after the events of The Clockwork Harbor.",
			Attributes: attrs("Mystery", "Underwater City"), ParentID: intPtr(0), ParentTitle: "The Clockwork Harbor",
			DerivationKind: types.DerivationSequel, CreatedAt: fixedTime,
		},
		{
			ID: 3, Title: "The Clockwork Harbor: The Sequel: Evolved", Prompt: "As shadows lengthen in Underwater City 100%.",
			Attributes: attrs("Horror", "Underwater City"), ParentID: intPtr(2), ParentTitle: "The Clockwork Harbor: The Sequel",
			DerivationKind: types.DerivationEvolution, Direction: types.DirectionDarker, CreatedAt: fixedTime,
		},
	}
}

func ingest(t *testing.T, s *Store, entities []types.Entity) IngestSummary {
	t.Helper()
	var buf bytes.Buffer
	summary, err := s.Ingest(context.Background(), entities, &buf)
	require.NoError(t, err)
	return summary
}

func ids(entities []types.Entity) []int {
	out := make([]int, len(entities))
	for i, e := range entities {
		out[i] = e.ID
	}
	return out
}

func TestNewStoreRequiresDir(t *testing.T) {
	_, err := NewStore(types.ArchiveConfig{})
	assert.Error(t, err)
}

func TestIngestIsIncremental(t *testing.T) {
	s := testStore(t)
	entities := sampleEntities()

	summary := ingest(t, s, entities)
	assert.Equal(t, IngestSummary{Indexed: 4}, summary)
	assert.Equal(t, 4, summary.Total())

	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	summary = ingest(t, s, entities)
	assert.Equal(t, IngestSummary{Skipped: 4}, summary)

	entities[1].Title = "The Thawed Signal"
	entities = append(entities, types.Entity{
		ID: 4, Title: "New", Prompt: "p", Attributes: attrs("Comedy", "Small Town"),
		DerivationKind: types.DerivationNone, CreatedAt: fixedTime,
	})
	summary = ingest(t, s, entities)
	assert.Equal(t, IngestSummary{Indexed: 1, Updated: 1, Skipped: 3}, summary)

	got, err := s.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "The Thawed Signal", got.Title)
}

func TestIngestRemovesEntitiesPastHistory(t *testing.T) {
	s := testStore(t)
	ingest(t, s, sampleEntities())
	ctx := context.Background()

	replaced := sampleEntities()[:2]
	replaced[1].Title = "The Replacement"
	var buf bytes.Buffer
	summary, err := s.Ingest(ctx, replaced, &buf)
	require.NoError(t, err)
	assert.Equal(t, IngestSummary{Updated: 1, Skipped: 1, Removed: 2}, summary)
	assert.Contains(t, buf.String(), "removed: 2")

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := s.Retrieve(ctx, QueryOptions{Value: "Underwater City"})
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = s.Ancestry(ctx, 3)
	assert.ErrorIs(t, err, lineage.ErrNotFound)

	summary, err = s.Ingest(ctx, nil, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Removed)
	n, err = s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestIngestWritesProgressAndExport(t *testing.T) {
	s := testStore(t)
	var buf bytes.Buffer
	_, err := s.Ingest(context.Background(), sampleEntities(), &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "indexing 0 The Clockwork Harbor")
	assert.Contains(t, buf.String(), "indexed: 4, updated: 0, skipped: 0")

	_, err = os.Stat(filepath.Join(s.Dir(), "export.yaml"))
	assert.NoError(t, err)
}

func TestIngestRejectsOrphans(t *testing.T) {
	s := testStore(t)
	var buf bytes.Buffer
	_, err := s.Ingest(context.Background(), []types.Entity{
		{ID: 0, Title: "orphan", ParentID: intPtr(7), DerivationKind: types.DerivationSequel, CreatedAt: fixedTime},
	}, &buf)
	assert.Error(t, err)

	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n, "failed ingest rolls back")
}

func TestIngestHonorsCancellation(t *testing.T) {
	s := testStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	_, err := s.Ingest(ctx, sampleEntities(), &buf)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRetrieveFilters(t *testing.T) {
	s := testStore(t)
	ingest(t, s, sampleEntities())
	ctx := context.Background()

	tests := []struct {
		name string
		opts QueryOptions
		want []int
	}{
		{"all", QueryOptions{}, []int{0, 1, 2, 3}},
		{"query title", QueryOptions{Query: "clockwork"}, []int{0, 2, 3}},
		{"query prompt", QueryOptions{Query: "SPACE station"}, []int{1}},
		{"query literal percent", QueryOptions{Query: "100%"}, []int{3}},
		{"query underscore is literal", QueryOptions{Query: "_"}, []int{}},
		{"kind", QueryOptions{Kind: types.DerivationSequel}, []int{2}},
		{"direction", QueryOptions{Direction: types.DirectionDarker}, []int{3}},
		{"attribute and value", QueryOptions{Attribute: types.AttrGenre, Value: "Mystery"}, []int{0, 2}},
		{"value only", QueryOptions{Value: "Underwater City"}, []int{2, 3}},
		{"attribute only", QueryOptions{Attribute: types.AttrTheme}, []int{0, 1, 2, 3}},
		{"parent", QueryOptions{ParentID: intPtr(2)}, []int{3}},
		{"limit", QueryOptions{MaxResults: 2}, []int{0, 1}},
		{"combined", QueryOptions{Query: "clockwork", Kind: types.DerivationNone}, []int{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Retrieve(ctx, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestRetrieveReturnsFullEntities(t *testing.T) {
	s := testStore(t)
	entities := sampleEntities()
	ingest(t, s, entities)

	got, err := s.Retrieve(context.Background(), QueryOptions{})
	require.NoError(t, err)
	require.Len(t, got, len(entities))
	for i := range entities {
		assert.Equal(t, entities[i].Title, got[i].Title)
		assert.Equal(t, entities[i].Attributes, got[i].Attributes)
		assert.Equal(t, entities[i].ParentID, got[i].ParentID)
		assert.Equal(t, entities[i].Direction, got[i].Direction)
		assert.True(t, entities[i].CreatedAt.Equal(got[i].CreatedAt))
	}
}

func TestQueryOptionsIsEmpty(t *testing.T) {
	assert.True(t, QueryOptions{MaxResults: 5}.IsEmpty())
	assert.False(t, QueryOptions{Value: "x"}.IsEmpty())
	assert.False(t, QueryOptions{ParentID: intPtr(0)}.IsEmpty())
}

func TestAncestry(t *testing.T) {
	s := testStore(t)
	ingest(t, s, sampleEntities())
	ctx := context.Background()

	chain, err := s.Ancestry(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3}, ids(chain))

	chain, err = s.Ancestry(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids(chain))

	_, err = s.Ancestry(ctx, 42)
	assert.ErrorIs(t, err, lineage.ErrNotFound)

	_, err = s.Get(ctx, 42)
	assert.ErrorIs(t, err, lineage.ErrNotFound)
}

func TestAncestryMatchesLineageStore(t *testing.T) {
	entities := sampleEntities()
	ls, err := lineage.FromEntities(entities)
	require.NoError(t, err)

	s := testStore(t)
	ingest(t, s, ls.All())

	want, err := ls.Ancestry(3)
	require.NoError(t, err)
	got, err := s.Ancestry(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, ids(want), ids(got))
}

func TestExport(t *testing.T) {
	s := testStore(t)
	ingest(t, s, sampleEntities())
	ctx := context.Background()

	path, err := s.ExportJSON(ctx, QueryOptions{Kind: types.DerivationNone})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Dir(), "export.json"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var fromJSON []types.Entity
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	assert.Equal(t, []int{0, 1}, ids(fromJSON))

	path, err = s.ExportYAML(ctx, QueryOptions{})
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	var fromYAML []types.Entity
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	assert.Equal(t, []int{0, 1, 2, 3}, ids(fromYAML))
	assert.Equal(t, types.DirectionDarker, fromYAML[3].Direction)

	path, err = s.ExportJSON(ctx, QueryOptions{Query: "nothing matches this"})
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}
