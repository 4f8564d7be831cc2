// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compose renders sampled attributes into prompt text using fixed
// banks of phrasing templates, one bank per kind of text.
package compose

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"text/template"
	"unicode/utf8"
)

// ErrUnknownKind is returned when no bank is registered for a kind.
var ErrUnknownKind = errors.New("unknown template kind")

// Kind names a template bank.
type Kind string

// Bank is an ordered set of templates that all draw on the same keys.
// Templates use text/template syntax over a map[string]string; the lower
// function gives the mid-sentence form of a value.
type Bank struct {
	Kind Kind
	// Required lists every key the templates may reference.
	Required  []string
	Templates []string
}

var funcs = template.FuncMap{
	"lower": strings.ToLower,
}

// Composer renders banks of templates. It is not safe for concurrent use
// because it shares the caller's random source.
type Composer struct {
	rng   *rand.Rand
	banks map[Kind][]*template.Template
	keys  map[Kind][]string
}

// New parses the banks and checks that every template renders with exactly
// the bank's required keys.
func New(rng *rand.Rand, banks ...Bank) (*Composer, error) {
	c := &Composer{
		rng:   rng,
		banks: make(map[Kind][]*template.Template, len(banks)),
		keys:  make(map[Kind][]string, len(banks)),
	}
	for _, b := range banks {
		if err := c.register(b); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// NewDefault returns a Composer over DefaultBanks.
func NewDefault(rng *rand.Rand) *Composer {
	c, err := New(rng, DefaultBanks()...)
	if err != nil {
		panic("compose: invalid built-in template bank: " + err.Error())
	}
	return c
}

func (c *Composer) register(b Bank) error {
	if len(b.Templates) == 0 {
		return fmt.Errorf("bank %q has no templates", b.Kind)
	}
	if _, dup := c.banks[b.Kind]; dup {
		return fmt.Errorf("bank %q registered twice", b.Kind)
	}
	probe := make(map[string]string, len(b.Required))
	for _, k := range b.Required {
		probe[k] = "x"
	}
	parsed := make([]*template.Template, len(b.Templates))
	for i, text := range b.Templates {
		name := fmt.Sprintf("%s/%d", b.Kind, i)
		t, err := template.New(name).Funcs(funcs).Option("missingkey=error").Parse(text)
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", name, err)
		}
		if err := t.Execute(&strings.Builder{}, probe); err != nil {
			return fmt.Errorf("template %s references a key outside %v: %w", name, b.Required, err)
		}
		parsed[i] = t
	}
	c.banks[b.Kind] = parsed
	c.keys[b.Kind] = append([]string(nil), b.Required...)
	return nil
}

// Len returns the number of templates registered for kind, zero when the
// kind is unknown.
func (c *Composer) Len(kind Kind) int {
	return len(c.banks[kind])
}

// Required returns the keys a kind's templates draw on.
func (c *Composer) Required(kind Kind) []string {
	return append([]string(nil), c.keys[kind]...)
}

// Render fills a uniformly chosen template from the kind's bank.
func (c *Composer) Render(kind Kind, data map[string]string) (string, error) {
	bank, ok := c.banks[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return execute(bank[c.rng.IntN(len(bank))], data)
}

// RenderNth fills the i-th template of the kind's bank.
func (c *Composer) RenderNth(kind Kind, i int, data map[string]string) (string, error) {
	bank, ok := c.banks[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if i < 0 || i >= len(bank) {
		return "", fmt.Errorf("template %d out of range for %q (%d templates)", i, kind, len(bank))
	}
	return execute(bank[i], data)
}

// RenderAll fills every template of the kind's bank in order.
func (c *Composer) RenderAll(kind Kind, data map[string]string) ([]string, error) {
	bank, ok := c.banks[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	out := make([]string, len(bank))
	for i, t := range bank {
		s, err := execute(t, data)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func execute(t *template.Template, data map[string]string) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", t.Name(), err)
	}
	return b.String(), nil
}

var titlePunctuation = strings.NewReplacer(".", "", ",", "", "?", "", "!", "", ";", "", ":", "")

// RenderTitle builds a short title from up to three distinct words of the
// prompt longer than three characters, chosen at random, prefixed with
// "The" and stripped of sentence punctuation.
func (c *Composer) RenderTitle(prompt string) string {
	var words []string
	seen := make(map[string]bool)
	for _, w := range strings.Fields(prompt) {
		if utf8.RuneCountInString(w) > 3 && !seen[w] {
			seen[w] = true
			words = append(words, w)
		}
	}
	k := min(3, len(words))
	for i := 0; i < k; i++ {
		j := i + c.rng.IntN(len(words)-i)
		words[i], words[j] = words[j], words[i]
	}
	title := titlePunctuation.Replace(strings.Join(append([]string{"The"}, words[:k]...), " "))
	return strings.TrimSpace(title)
}
