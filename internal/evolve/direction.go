// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package evolve

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/pdiddy/idea-engine/internal/taxonomy"
	"github.com/pdiddy/idea-engine/pkg/types"
)

// ErrInvalidDirection is returned by ParseDirection for unrecognized tags.
var ErrInvalidDirection = errors.New("invalid evolution direction")

// DefaultDirection is used by the engine when a direction is not recognized.
const DefaultDirection = types.DirectionAction

// Restriction maps each affected category to the subset of its domain a
// direction may draw from.
type Restriction map[string][]string

// DefaultRestrictions returns the built-in direction table. Each direction
// affects genre, theme and conflict.
func DefaultRestrictions() map[types.Direction]Restriction {
	return map[types.Direction]Restriction{
		types.DirectionDarker: {
			types.AttrGenre:    {"Horror", "Thriller", "Mystery", "Drama"},
			types.AttrTheme:    {"Betrayal", "Survival", "Power", "Justice"},
			types.AttrConflict: {"Person vs. Person", "Person vs. Self", "Person vs. Society"},
		},
		types.DirectionHopeful: {
			types.AttrGenre:    {"Fantasy", "Adventure", "Romance", "Comedy"},
			types.AttrTheme:    {"Love", "Redemption", "Freedom", "Family"},
			types.AttrConflict: {"Person vs. Nature", "Person vs. Technology", "Person vs. Fate"},
		},
		types.DirectionComplex: {
			types.AttrGenre:    {"Science Fiction", "Historical Fiction", "Mystery", "Drama"},
			types.AttrTheme:    {"Identity", "Power", "Justice", "Sacrifice"},
			types.AttrConflict: {"Person vs. Society", "Person vs. Reality", "Person vs. Self"},
		},
		types.DirectionAction: {
			types.AttrGenre:    {"Adventure", "Thriller", "Science Fiction", "Fantasy"},
			types.AttrTheme:    {"Survival", "Justice", "Power", "Freedom"},
			types.AttrConflict: {"Person vs. Person", "Person vs. Nature", "Person vs. Supernatural"},
		},
	}
}

// ParseDirection normalizes a free-text direction. It accepts the four tag
// names in any case and the menu numbers 1-4.
func ParseDirection(s string) (types.Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, d := range types.Directions {
		if s == string(d) || s == fmt.Sprint(i+1) {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want darker, hopeful, complex or action)", ErrInvalidDirection, s)
}

// ResolveDirection is ParseDirection with unknown input mapped to
// DefaultDirection.
func ResolveDirection(s string) types.Direction {
	d, err := ParseDirection(s)
	if err != nil {
		return DefaultDirection
	}
	return d
}

// FitRestrictions narrows r to the values tax defines. A category whose
// narrowed subset is empty or covers its whole domain is dropped, so the
// direction copies that category unchanged.
func FitRestrictions(r map[types.Direction]Restriction, tax *taxonomy.Store) map[types.Direction]Restriction {
	out := make(map[types.Direction]Restriction, len(r))
	for d, cats := range r {
		fitted := Restriction{}
		for cat, subset := range cats {
			domain, err := tax.Values(cat)
			if err != nil {
				continue
			}
			var kept []string
			for _, v := range subset {
				if slices.Contains(domain, v) && !slices.Contains(kept, v) {
					kept = append(kept, v)
				}
			}
			if len(kept) > 0 && len(kept) < len(domain) {
				fitted[cat] = kept
			}
		}
		out[d] = fitted
	}
	return out
}

// OverrideRestrictions replaces whole directions in r with subsets keyed by
// direction name, as read from a taxonomy file.
func OverrideRestrictions(r map[types.Direction]Restriction, subsets map[string]map[string][]string) (map[types.Direction]Restriction, error) {
	out := make(map[types.Direction]Restriction, len(r))
	for d, cats := range r {
		out[d] = cats
	}
	for name, cats := range subsets {
		d, err := ParseDirection(name)
		if err != nil {
			return nil, err
		}
		override := make(Restriction, len(cats))
		for cat, vals := range cats {
			override[cat] = slices.Clone(vals)
		}
		out[d] = override
	}
	return out, nil
}
