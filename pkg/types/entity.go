// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"maps"
	"slices"
	"time"
)

// DerivationKind records how an Entity was produced.
type DerivationKind string

const (
	DerivationNone      DerivationKind = "none"
	DerivationSequel    DerivationKind = "sequel"
	DerivationEvolution DerivationKind = "evolution"
	DerivationVariation DerivationKind = "variation"
)

// Direction tags a directed evolution.
type Direction string

const (
	DirectionDarker  Direction = "darker"
	DirectionHopeful Direction = "hopeful"
	DirectionComplex Direction = "complex"
	DirectionAction  Direction = "action"
)

// Directions lists the recognized evolution directions in menu order.
var Directions = []Direction{DirectionDarker, DirectionHopeful, DirectionComplex, DirectionAction}

// Story attribute keys.
const (
	AttrGenre         = "genre"
	AttrCharacterType = "character_type"
	AttrPlotDevice    = "plot_device"
	AttrSetting       = "setting"
	AttrTheme         = "theme"
	AttrConflict      = "conflict"
)

// StoryAttributes lists the story categories in the order they are sampled.
var StoryAttributes = []string{
	AttrGenre, AttrCharacterType, AttrPlotDevice, AttrSetting, AttrTheme, AttrConflict,
}

// AttributeSet maps a category name to one sampled value from its domain.
type AttributeSet map[string]string

// Clone returns an independent copy of the set.
func (a AttributeSet) Clone() AttributeSet {
	if a == nil {
		return nil
	}
	return maps.Clone(a)
}

// Keys returns the category names in sorted order.
func (a AttributeSet) Keys() []string {
	return slices.Sorted(maps.Keys(a))
}

// Entity is one generated idea with its rendered text and lineage metadata.
// Entities are immutable once appended to a lineage store.
type Entity struct {
	// ID is assigned by the lineage store in creation order, starting at 0.
	ID int `json:"id" yaml:"id"`

	// Title is a short display name for the idea.
	Title string `json:"title" yaml:"title"`

	// Prompt is the rendered idea text.
	Prompt string `json:"prompt" yaml:"prompt"`

	// Attributes holds the sampled value for every category.
	Attributes AttributeSet `json:"attributes" yaml:"attributes"`

	// Variations holds alternate prompt strings. May be empty.
	Variations []string `json:"variations" yaml:"variations"`

	// ParentID references the entity this one was derived from.
	ParentID *int `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`

	// ParentTitle is the parent's title at derivation time, kept for display.
	ParentTitle string `json:"parent_title,omitempty" yaml:"parent_title,omitempty"`

	// DerivationKind is none for root ideas.
	DerivationKind DerivationKind `json:"derivation_kind" yaml:"derivation_kind"`

	// Direction is set only when DerivationKind is evolution.
	Direction Direction `json:"direction,omitempty" yaml:"direction,omitempty"`

	// CreatedAt is when the entity was generated.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// IsRoot reports whether the entity has no parent.
func (e Entity) IsRoot() bool {
	return e.ParentID == nil
}

// Clone returns a deep copy so callers cannot mutate stored entities.
func (e Entity) Clone() Entity {
	c := e
	c.Attributes = e.Attributes.Clone()
	if e.Variations != nil {
		c.Variations = slices.Clone(e.Variations)
	}
	if e.ParentID != nil {
		id := *e.ParentID
		c.ParentID = &id
	}
	return c
}
