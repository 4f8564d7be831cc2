// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lineage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/idea-engine/pkg/types"
)

var fixedTime = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func intPtr(i int) *int { return &i }

func rootEntity(title string) types.Entity {
	return types.Entity{
		Title:      title,
		Prompt:     "A tale of " + title,
		Attributes: types.AttributeSet{types.AttrGenre: "Fantasy"},
		Variations: []string{"v1", "v2"},
		CreatedAt:  fixedTime,
	}
}

func TestEmptyStoreGetFails(t *testing.T) {
	s := New()
	_, err := s.Get(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, 0, nf.ID)
}

func TestAppendAssignsSequentialIDs(t *testing.T) {
	s := New()
	for i := range 5 {
		e, err := s.Append(rootEntity("idea"))
		require.NoError(t, err)
		assert.Equal(t, i, e.ID)
		assert.Equal(t, types.DerivationNone, e.DerivationKind)
	}
	assert.Equal(t, 5, s.Size())
	for i, e := range s.All() {
		assert.Equal(t, i, e.ID)
	}
}

func TestAppendIgnoresCallerID(t *testing.T) {
	s := New()
	e := rootEntity("idea")
	e.ID = 42
	got, err := s.Append(e)
	require.NoError(t, err)
	assert.Equal(t, 0, got.ID)
}

func TestAppendRejectsMissingParent(t *testing.T) {
	s := New()
	_, err := s.Append(rootEntity("root"))
	require.NoError(t, err)

	child := rootEntity("orphan")
	child.ParentID = intPtr(3)
	child.DerivationKind = types.DerivationSequel
	_, err = s.Append(child)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, s.Size(), "failed append must not change the store")
}

func TestGetOutOfRange(t *testing.T) {
	s := New()
	_, _ = s.Append(rootEntity("a"))
	for _, id := range []int{-1, 1, 100} {
		_, err := s.Get(id)
		assert.ErrorIs(t, err, ErrNotFound, "id %d", id)
	}
}

func TestStoredEntitiesAreImmutable(t *testing.T) {
	s := New()
	in := rootEntity("a")
	appended, err := s.Append(in)
	require.NoError(t, err)

	in.Attributes[types.AttrGenre] = "Horror"
	appended.Variations[0] = "changed"

	got, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "Fantasy", got.Attributes[types.AttrGenre])
	assert.Equal(t, "v1", got.Variations[0])

	got.Attributes[types.AttrGenre] = "Drama"
	again, _ := s.Get(0)
	assert.Equal(t, "Fantasy", again.Attributes[types.AttrGenre])
}

func buildTree(t *testing.T) *Store {
	t.Helper()
	s := New()
	_, err := s.Append(rootEntity("root"))
	require.NoError(t, err)
	_, err = s.Append(rootEntity("other"))
	require.NoError(t, err)

	seq := rootEntity("root: The Sequel")
	seq.ParentID = intPtr(0)
	seq.DerivationKind = types.DerivationSequel
	_, err = s.Append(seq)
	require.NoError(t, err)

	evo := rootEntity("root: The Sequel: Evolved")
	evo.ParentID = intPtr(2)
	evo.DerivationKind = types.DerivationEvolution
	evo.Direction = types.DirectionDarker
	_, err = s.Append(evo)
	require.NoError(t, err)
	return s
}

func TestChildrenAndAncestry(t *testing.T) {
	s := buildTree(t)

	kids, err := s.Children(0)
	require.NoError(t, err)
	require.Len(t, kids, 1)
	assert.Equal(t, 2, kids[0].ID)

	kids, err = s.Children(1)
	require.NoError(t, err)
	assert.Empty(t, kids)

	chain, err := s.Ancestry(3)
	require.NoError(t, err)
	var ids []int
	for _, e := range chain {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []int{0, 2, 3}, ids)

	_, err = s.Ancestry(9)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Children(9)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFromEntitiesValidates(t *testing.T) {
	tests := []struct {
		name     string
		entities []types.Entity
		errMsg   string
	}{
		{"gap in ids", []types.Entity{{ID: 0}, {ID: 2}}, "position 1 has id 2"},
		{"forward parent", []types.Entity{{ID: 0, ParentID: intPtr(1)}, {ID: 1}}, "references parent 1"},
		{"self parent", []types.Entity{{ID: 0}, {ID: 1, ParentID: intPtr(1)}}, "references parent 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEntities(tt.entities)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := buildTree(t)
	path := filepath.Join(t.TempDir(), "story_ideas.json")
	require.NoError(t, Save(path, s))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s.All(), loaded.All())

	// Appending after a load continues the id sequence.
	e, err := loaded.Append(rootEntity("next"))
	require.NoError(t, err)
	assert.Equal(t, 4, e.ID)
}

func TestSaveEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, Save(path, New()))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Size())
}

func TestLoadFailures(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`[{"id": 1}]`), 0o644))

	for _, path := range []string{filepath.Join(dir, "missing.json"), bad, broken} {
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrPersistence, path)

		s, err := LoadOrNew(path)
		assert.Error(t, err)
		require.NotNil(t, s)
		assert.Equal(t, 0, s.Size())
	}
}

func TestSaveUnwritablePath(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "missing-dir", "x.json"), New())
	assert.ErrorIs(t, err, ErrPersistence)
}
