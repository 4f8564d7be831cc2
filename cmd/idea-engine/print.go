// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/idea-engine/pkg/types"
)

var attributeLabels = map[string]string{
	types.AttrGenre:         "Genre",
	types.AttrCharacterType: "Character Type",
	types.AttrPlotDevice:    "Plot Device",
	types.AttrSetting:       "Setting",
	types.AttrTheme:         "Theme",
	types.AttrConflict:      "Conflict",
}

func attributeLabel(key string) string {
	if l, ok := attributeLabels[key]; ok {
		return l
	}
	return key
}

// printEntity writes one idea in the long form.
func printEntity(w io.Writer, e types.Entity) {
	rule := strings.Repeat("=", 80)
	fmt.Fprintf(w, "\n%s\nSTORY IDEA #%d: %s\n%s\n", rule, e.ID, e.Title, rule)
	fmt.Fprintf(w, "\nPROMPT:\n%s\n\nELEMENTS:\n", e.Prompt)

	// Story attributes first in their canonical order, then anything else.
	seen := map[string]bool{}
	for _, k := range types.StoryAttributes {
		if v, ok := e.Attributes[k]; ok {
			fmt.Fprintf(w, "  %s: %s\n", attributeLabel(k), v)
			seen[k] = true
		}
	}
	for _, k := range e.Attributes.Keys() {
		if !seen[k] {
			fmt.Fprintf(w, "  %s: %s\n", attributeLabel(k), e.Attributes[k])
		}
	}

	if len(e.Variations) > 0 {
		fmt.Fprintln(w, "\nVARIATIONS:")
		for i, v := range e.Variations {
			fmt.Fprintf(w, "  %d. %s\n", i+1, v)
		}
	}

	if e.ParentID != nil {
		fmt.Fprintf(w, "\nBased on: #%d %s\n", *e.ParentID, e.ParentTitle)
		fmt.Fprintf(w, "Derivation: %s\n", e.DerivationKind)
	}
	if e.Direction != "" {
		fmt.Fprintf(w, "Evolution Direction: %s\n", e.Direction)
	}
}

// printTable writes a one-line-per-idea summary.
func printTable(w io.Writer, entities []types.Entity) {
	if len(entities) == 0 {
		fmt.Fprintln(w, "No ideas found.")
		return
	}
	fmt.Fprintf(w, "%-4s  %-10s  %-8s  %-6s  %s\n", "ID", "Kind", "Dir", "Parent", "Title")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, e := range entities {
		parent := "-"
		if e.ParentID != nil {
			parent = fmt.Sprint(*e.ParentID)
		}
		dir := string(e.Direction)
		if dir == "" {
			dir = "-"
		}
		title := e.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		fmt.Fprintf(w, "%-4d  %-10s  %-8s  %-6s  %s\n", e.ID, e.DerivationKind, dir, parent, title)
	}
	fmt.Fprintf(w, "\n%d ideas\n", len(entities))
}

// printBusinessIdea writes one business idea in the long form.
func printBusinessIdea(w io.Writer, b types.BusinessIdea) {
	rule := strings.Repeat("=", 50)
	c := b.Concept
	fmt.Fprintf(w, "\n%s\nBUSINESS IDEA: %s\n%s\n", rule, b.BusinessName, rule)
	fmt.Fprintln(w, "CONCEPT:")
	fmt.Fprintf(w, "  Industry: %s (Niche: %s)\n", c.Industry, c.Niche)
	fmt.Fprintf(w, "  Target Audience: %s who are %s\n", c.TargetAudience.Demographic, c.TargetAudience.Psychographic)
	fmt.Fprintf(w, "  Trend: %s\n", c.Trend)
	fmt.Fprintf(w, "  Business Model: %s\n", c.BusinessModel)
	fmt.Fprintf(w, "  Revenue Stream: %s\n", c.RevenueStream)
	fmt.Fprintf(w, "\nDESCRIPTION:\n  %s\n", b.Description)
	fmt.Fprintln(w, "\nVALUE PROPOSITION:")
	for i, p := range b.ValueProposition {
		fmt.Fprintf(w, "  %d. %s\n", i+1, p)
	}
	fmt.Fprintln(w, "\nREAL-WORLD CONSTRAINTS:")
	fmt.Fprintf(w, "  Challenge: %s\n", b.RealWorldConstraint.Challenge)
	fmt.Fprintf(w, "  Potential Solution: %s\n", b.RealWorldConstraint.Solution)
	if b.ParentID != "" {
		fmt.Fprintf(w, "\nPivoted from: %s\n", b.ParentID)
	}
	fmt.Fprintf(w, "\nGenerated at: %s\nID: %s\n%s\n", b.GeneratedAt, b.ID, rule)
}
