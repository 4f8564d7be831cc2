// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package taxonomy

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// File is the on-disk YAML form of a taxonomy. A category lists either
// values (flat) or groups (nested), never both.
//
//	categories:
//	  - name: genre
//	    values: [Fantasy, Horror]
//	  - name: industry
//	    groups:
//	      - name: Technology
//	        values: [AI, IoT]
//	directions:
//	  darker:
//	    genre: [Horror]
//
// Directions optionally names value subsets per category. Every listed
// value must belong to its category.
type File struct {
	Categories []FileCategory                 `yaml:"categories"`
	Directions map[string]map[string][]string `yaml:"directions,omitempty"`
}

// FileCategory is one category entry in a taxonomy file.
type FileCategory struct {
	Name   string      `yaml:"name"`
	Values []string    `yaml:"values,omitempty"`
	Groups []FileGroup `yaml:"groups,omitempty"`
}

// FileGroup is one subcategory entry in a taxonomy file.
type FileGroup struct {
	Name   string   `yaml:"name"`
	Values []string `yaml:"values"`
}

// Parse decodes YAML taxonomy data into a Store.
func Parse(data []byte) (*Store, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing taxonomy: %w", err)
	}
	cats := make([]Category, 0, len(f.Categories))
	for _, fc := range f.Categories {
		switch {
		case len(fc.Values) > 0 && len(fc.Groups) > 0:
			return nil, fmt.Errorf("category %q lists both values and groups", fc.Name)
		case len(fc.Groups) > 0:
			groups := make([]Group, len(fc.Groups))
			for i, g := range fc.Groups {
				groups[i] = Group{Name: g.Name, Values: g.Values}
			}
			cats = append(cats, NewNested(fc.Name, groups...))
		default:
			cats = append(cats, NewFlat(fc.Name, fc.Values...))
		}
	}
	s, err := New(cats...)
	if err != nil {
		return nil, err
	}
	for name, byCat := range f.Directions {
		for cat, vals := range byCat {
			if !s.Has(cat) {
				return nil, fmt.Errorf("direction %q: %w: %q", name, ErrUnknownCategory, cat)
			}
			for _, v := range vals {
				if !s.Contains(cat, v) {
					return nil, fmt.Errorf("direction %q: %q is not a %s value", name, v, cat)
				}
			}
		}
	}
	if len(f.Directions) > 0 {
		s.subsets = f.Directions
	}
	return s, nil
}

// Load reads a YAML taxonomy file.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading taxonomy: %w", err)
	}
	return Parse(data)
}

// Marshal encodes a Store in the File layout.
func Marshal(s *Store) ([]byte, error) {
	var f File
	for _, name := range s.order {
		c := s.byName[name]
		fc := FileCategory{Name: name}
		if c.kind == Flat {
			fc.Values = c.Values()
		} else {
			for _, g := range c.groups {
				fc.Groups = append(fc.Groups, FileGroup{Name: g.Name, Values: g.Values})
			}
		}
		f.Categories = append(f.Categories, fc)
	}
	if len(s.subsets) > 0 {
		f.Directions = s.Subsets()
	}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("marshaling taxonomy: %w", err)
	}
	return data, nil
}
