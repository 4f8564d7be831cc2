// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package taxonomy holds the fixed catalogs of candidate values that ideas
// are sampled from. A Store is read-only after construction and safe to
// share across goroutines without locking.
package taxonomy

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownCategory is returned when a category or subcategory name is not
// in the store.
var ErrUnknownCategory = errors.New("unknown category")

// Kind distinguishes flat categories from two-level ones.
type Kind int

const (
	// Flat categories hold one ordered list of values.
	Flat Kind = iota
	// Nested categories map subcategory names to value lists.
	Nested
)

// String returns the kind label used in taxonomy files.
func (k Kind) String() string {
	if k == Nested {
		return "nested"
	}
	return "flat"
}

// Group is one subcategory of a nested category.
type Group struct {
	Name   string
	Values []string
}

// Category is either Flat(values) or Nested(groups). Construct with
// NewFlat or NewNested.
type Category struct {
	name   string
	kind   Kind
	values []string
	groups []Group
}

// NewFlat builds a flat category.
func NewFlat(name string, values ...string) Category {
	return Category{name: name, kind: Flat, values: slices.Clone(values)}
}

// NewNested builds a two-level category. Group order is preserved.
func NewNested(name string, groups ...Group) Category {
	gs := make([]Group, len(groups))
	for i, g := range groups {
		gs[i] = Group{Name: g.Name, Values: slices.Clone(g.Values)}
	}
	return Category{name: name, kind: Nested, groups: gs}
}

// Name returns the category name.
func (c Category) Name() string { return c.name }

// Kind reports whether the category is flat or nested.
func (c Category) Kind() Kind { return c.kind }

// Values returns the full domain. For nested categories this is every leaf
// value in group order.
func (c Category) Values() []string {
	if c.kind == Flat {
		return slices.Clone(c.values)
	}
	var all []string
	for _, g := range c.groups {
		all = append(all, g.Values...)
	}
	return all
}

// Groups returns a copy of the subcategories. Empty for flat categories.
func (c Category) Groups() []Group {
	gs := make([]Group, len(c.groups))
	for i, g := range c.groups {
		gs[i] = Group{Name: g.Name, Values: slices.Clone(g.Values)}
	}
	return gs
}

// Contains reports whether v is in the category's domain.
func (c Category) Contains(v string) bool {
	if c.kind == Flat {
		return slices.Contains(c.values, v)
	}
	for _, g := range c.groups {
		if slices.Contains(g.Values, v) {
			return true
		}
	}
	return false
}

// GroupOf returns the subcategory holding v in a nested category.
func (c Category) GroupOf(v string) (string, bool) {
	for _, g := range c.groups {
		if slices.Contains(g.Values, v) {
			return g.Name, true
		}
	}
	return "", false
}

func (c Category) validate() error {
	if strings.TrimSpace(c.name) == "" {
		return errors.New("category name is empty")
	}
	check := func(where string, values []string) error {
		if len(values) == 0 {
			return fmt.Errorf("%s has no values", where)
		}
		for i, v := range values {
			if v == "" {
				return fmt.Errorf("%s value %d is empty", where, i)
			}
		}
		return nil
	}
	if c.kind == Flat {
		return check(fmt.Sprintf("category %q", c.name), c.values)
	}
	if len(c.groups) == 0 {
		return fmt.Errorf("category %q has no subcategories", c.name)
	}
	seen := make(map[string]bool, len(c.groups))
	for _, g := range c.groups {
		if g.Name == "" {
			return fmt.Errorf("category %q has an unnamed subcategory", c.name)
		}
		if seen[g.Name] {
			return fmt.Errorf("category %q repeats subcategory %q", c.name, g.Name)
		}
		seen[g.Name] = true
		if err := check(fmt.Sprintf("subcategory %q of %q", g.Name, c.name), g.Values); err != nil {
			return err
		}
	}
	return nil
}

// Store holds named categories in insertion order.
type Store struct {
	order   []string
	byName  map[string]Category
	subsets map[string]map[string][]string
}

// New validates the categories and builds a Store. Every leaf value must be
// a non-empty string and every name must be unique.
func New(categories ...Category) (*Store, error) {
	s := &Store{byName: make(map[string]Category, len(categories))}
	for _, c := range categories {
		if err := c.validate(); err != nil {
			return nil, err
		}
		if _, dup := s.byName[c.name]; dup {
			return nil, fmt.Errorf("duplicate category %q", c.name)
		}
		s.order = append(s.order, c.name)
		s.byName[c.name] = c
	}
	return s, nil
}

// Category returns the named category.
func (s *Store) Category(name string) (Category, error) {
	c, ok := s.byName[name]
	if !ok {
		return Category{}, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return c, nil
}

// Values returns the domain of a category. Nested categories return all
// leaf values.
func (s *Store) Values(category string) ([]string, error) {
	c, err := s.Category(category)
	if err != nil {
		return nil, err
	}
	return c.Values(), nil
}

// SubValues returns the values of one subcategory of a nested category.
func (s *Store) SubValues(category, subcategory string) ([]string, error) {
	c, err := s.Category(category)
	if err != nil {
		return nil, err
	}
	for _, g := range c.groups {
		if g.Name == subcategory {
			return slices.Clone(g.Values), nil
		}
	}
	return nil, fmt.Errorf("%w: %q has no subcategory %q", ErrUnknownCategory, category, subcategory)
}

// Categories returns the category names in insertion order.
func (s *Store) Categories() []string {
	return slices.Clone(s.order)
}

// Subcategories returns the subcategory names of a category, or an empty
// slice when the category is flat.
func (s *Store) Subcategories(category string) ([]string, error) {
	c, err := s.Category(category)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(c.groups))
	for _, g := range c.groups {
		names = append(names, g.Name)
	}
	return names, nil
}

// Has reports whether the store defines category.
func (s *Store) Has(category string) bool {
	_, ok := s.byName[category]
	return ok
}

// Contains reports whether value belongs to the category's domain.
func (s *Store) Contains(category, value string) bool {
	c, ok := s.byName[category]
	return ok && c.Contains(value)
}

// Require checks that every name is defined.
func (s *Store) Require(names ...string) error {
	for _, n := range names {
		if !s.Has(n) {
			return fmt.Errorf("%w: %q", ErrUnknownCategory, n)
		}
	}
	return nil
}

// Subsets returns the named value subsets loaded from a taxonomy file,
// keyed by subset name and then category. Empty for built-in catalogs.
func (s *Store) Subsets() map[string]map[string][]string {
	out := make(map[string]map[string][]string, len(s.subsets))
	for name, byCat := range s.subsets {
		m := make(map[string][]string, len(byCat))
		for cat, vals := range byCat {
			m[cat] = slices.Clone(vals)
		}
		out[name] = m
	}
	return out
}
