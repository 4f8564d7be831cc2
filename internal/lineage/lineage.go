// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lineage keeps the ordered, append-only history of generated ideas.
// Entities are never updated or deleted: derivations always append new
// entities that point back at their parent.
//
// A Store is owned by one session and is not safe for concurrent use.
package lineage

import (
	"errors"
	"fmt"

	"github.com/pdiddy/idea-engine/pkg/types"
)

// ErrNotFound is returned when an entity id is not in the store.
var ErrNotFound = errors.New("entity not found")

// NotFoundError carries the id that was requested.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("entity %d not found", e.ID)
}

// Is makes errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Store is an append-only list of entities addressed by position.
type Store struct {
	entities []types.Entity
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// FromEntities rebuilds a store from previously saved entities. Ids must be
// 0..n-1 in order and every parent must precede its child.
func FromEntities(entities []types.Entity) (*Store, error) {
	s := &Store{entities: make([]types.Entity, 0, len(entities))}
	for i, e := range entities {
		if e.ID != i {
			return nil, fmt.Errorf("entity at position %d has id %d", i, e.ID)
		}
		if e.ParentID != nil && (*e.ParentID < 0 || *e.ParentID >= i) {
			return nil, fmt.Errorf("entity %d references parent %d: %w", i, *e.ParentID, &NotFoundError{ID: *e.ParentID})
		}
		s.entities = append(s.entities, e.Clone())
	}
	return s, nil
}

// Append assigns the next id to e and stores it. A parent reference must
// name an entity already in the store; otherwise nothing is stored.
func (s *Store) Append(e types.Entity) (types.Entity, error) {
	if e.ParentID != nil {
		if _, err := s.Get(*e.ParentID); err != nil {
			return types.Entity{}, fmt.Errorf("appending derived entity: %w", err)
		}
	}
	if e.DerivationKind == "" {
		e.DerivationKind = types.DerivationNone
	}
	e = e.Clone()
	e.ID = len(s.entities)
	s.entities = append(s.entities, e)
	return e.Clone(), nil
}

// Get returns the entity with the given id.
func (s *Store) Get(id int) (types.Entity, error) {
	if id < 0 || id >= len(s.entities) {
		return types.Entity{}, &NotFoundError{ID: id}
	}
	return s.entities[id].Clone(), nil
}

// Size returns the number of stored entities.
func (s *Store) Size() int {
	return len(s.entities)
}

// All returns every entity in creation order.
func (s *Store) All() []types.Entity {
	out := make([]types.Entity, len(s.entities))
	for i, e := range s.entities {
		out[i] = e.Clone()
	}
	return out
}

// Children returns the entities derived directly from id, in creation order.
func (s *Store) Children(id int) ([]types.Entity, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	var out []types.Entity
	for _, e := range s.entities[id+1:] {
		if e.ParentID != nil && *e.ParentID == id {
			out = append(out, e.Clone())
		}
	}
	return out, nil
}

// Ancestry returns the chain from the root down to id, inclusive.
func (s *Store) Ancestry(id int) ([]types.Entity, error) {
	e, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	chain := []types.Entity{e}
	for e.ParentID != nil {
		e = s.entities[*e.ParentID].Clone()
		chain = append(chain, e)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}
