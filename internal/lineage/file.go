// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lineage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/pdiddy/idea-engine/pkg/types"
)

// ErrPersistence wraps every failure to save or load a history file.
var ErrPersistence = errors.New("history persistence failed")

// Save writes every entity as an indented JSON array.
func Save(path string, s *Store) error {
	entities := s.entities
	if entities == nil {
		entities = []types.Entity{}
	}
	data, err := json.MarshalIndent(entities, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: marshaling history: %w", ErrPersistence, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrPersistence, path, err)
	}
	return nil
}

// Load reads a history file written by Save. A missing file, malformed JSON
// or a broken lineage all return an error wrapping ErrPersistence; callers
// treat that as a non-fatal "could not load".
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrPersistence, path, err)
	}
	var entities []types.Entity
	if err := json.Unmarshal(data, &entities); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrPersistence, path, err)
	}
	s, err := FromEntities(entities)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPersistence, path, err)
	}
	return s, nil
}

// LoadOrNew loads the history at path, or returns an empty store and the
// load error when it cannot. The returned store is never nil.
func LoadOrNew(path string) (*Store, error) {
	s, err := Load(path)
	if err != nil {
		return New(), err
	}
	return s, nil
}
