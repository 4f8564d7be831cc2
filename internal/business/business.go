// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package business generates business ideas from the business taxonomy.
// An idea is seeded from an industry, an audience or a trend; the remaining
// attributes are sampled, and the result is formatted with a name,
// description, value proposition and a real-world constraint.
package business

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pdiddy/idea-engine/internal/compose"
	"github.com/pdiddy/idea-engine/internal/sampler"
	"github.com/pdiddy/idea-engine/pkg/types"
)

// ErrUnknownValue is returned when a caller-supplied seed value is not in
// its category's domain.
var ErrUnknownValue = errors.New("unknown value")

// TimeLayout formats BusinessIdea.GeneratedAt.
const TimeLayout = "2006-01-02 15:04:05"

// Categories lists every category the generator samples.
var Categories = []string{
	types.AttrIndustry, types.AttrDemographic, types.AttrPsychographic, types.AttrTrend,
	types.AttrBusinessModel, types.AttrRevenueStream, types.AttrConstraint,
}

// pivotable are the attributes a pivot may change. Industry and niche stay.
var pivotable = []string{
	types.AttrDemographic, types.AttrPsychographic, types.AttrTrend,
	types.AttrBusinessModel, types.AttrRevenueStream, types.AttrConstraint,
}

var nameSuffixes = []string{"Hub", "Go", "Ly", "ify", "Wise", "Now", "Sync", "Pulse"}

var solutions = []string{
	"Strategic partnerships to share resources and reduce costs",
	"Phased implementation approach to test market response",
	"Freemium model to build user base before monetization",
	"Community-building focus to reduce marketing costs",
	"Leveraging existing platforms instead of building from scratch",
	"Focusing on a highly specific niche to avoid direct competition",
}

const valuePropositions = 3

// Generator builds business ideas.
type Generator struct {
	sampler  *sampler.Sampler
	composer *compose.Composer
	log      *zap.Logger
	now      func() time.Time
	newID    func() string
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) { g.log = l }
}

// WithClock sets the time source used for GeneratedAt.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithIDs replaces the random UUID source.
func WithIDs(next func() string) Option {
	return func(g *Generator) { g.newID = next }
}

// New returns a Generator. The sampler's taxonomy must define every entry
// of Categories.
func New(s *sampler.Sampler, c *compose.Composer, opts ...Option) (*Generator, error) {
	g := &Generator{
		sampler:  s,
		composer: c,
		log:      zap.NewNop(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, o := range opts {
		o(g)
	}
	if err := s.Taxonomy().Require(Categories...); err != nil {
		return nil, fmt.Errorf("business taxonomy: %w", err)
	}
	return g, nil
}

// ParseMethod maps a method name to a GenerationMethod. Unrecognized names
// select MethodMixed.
func ParseMethod(s string) types.GenerationMethod {
	switch m := types.GenerationMethod(strings.ToLower(strings.TrimSpace(s))); m {
	case types.MethodIndustry, types.MethodAudience, types.MethodTrend:
		return m
	default:
		return types.MethodMixed
	}
}

// FromIndustry builds an idea in an industry and niche. An empty industry
// is sampled along with its niche; an empty niche is sampled within the
// industry. A niche given without an industry selects the industry that
// holds it.
func (g *Generator) FromIndustry(industry, niche string) (types.BusinessIdea, error) {
	attrs, err := g.sampleRest(types.AttrIndustry)
	if err != nil {
		return types.BusinessIdea{}, err
	}
	tax := g.sampler.Taxonomy()
	cat, err := tax.Category(types.AttrIndustry)
	if err != nil {
		return types.BusinessIdea{}, err
	}

	switch {
	case industry == "" && niche == "":
		industry, niche, err = g.sampler.PickGroup(types.AttrIndustry)
		if err != nil {
			return types.BusinessIdea{}, err
		}
	case industry == "":
		group, ok := cat.GroupOf(niche)
		if !ok {
			return types.BusinessIdea{}, fmt.Errorf("%w: niche %q", ErrUnknownValue, niche)
		}
		industry = group
	case niche == "":
		niche, err = g.sampler.PickIn(types.AttrIndustry, industry)
		if err != nil {
			return types.BusinessIdea{}, err
		}
	default:
		niches, err := tax.SubValues(types.AttrIndustry, industry)
		if err != nil {
			return types.BusinessIdea{}, err
		}
		if !slices.Contains(niches, niche) {
			return types.BusinessIdea{}, fmt.Errorf("%w: niche %q is not in industry %q", ErrUnknownValue, niche, industry)
		}
	}
	attrs[types.AttrIndustry] = industry
	attrs[types.AttrNiche] = niche
	return g.format(attrs, "")
}

// FromAudience builds an idea for a demographic and psychographic. Empty
// arguments are sampled.
func (g *Generator) FromAudience(demographic, psychographic string) (types.BusinessIdea, error) {
	attrs, err := g.sampleRest(types.AttrDemographic, types.AttrPsychographic)
	if err != nil {
		return types.BusinessIdea{}, err
	}
	if err := g.seed(attrs, types.AttrDemographic, demographic); err != nil {
		return types.BusinessIdea{}, err
	}
	if err := g.seed(attrs, types.AttrPsychographic, psychographic); err != nil {
		return types.BusinessIdea{}, err
	}
	return g.format(attrs, "")
}

// FromTrend builds an idea around a trend. An empty trend is sampled.
func (g *Generator) FromTrend(trend string) (types.BusinessIdea, error) {
	attrs, err := g.sampleRest(types.AttrTrend)
	if err != nil {
		return types.BusinessIdea{}, err
	}
	if err := g.seed(attrs, types.AttrTrend, trend); err != nil {
		return types.BusinessIdea{}, err
	}
	return g.format(attrs, "")
}

// Collection builds count ideas. MethodMixed picks industry, audience or
// trend independently for each idea.
func (g *Generator) Collection(count int, method types.GenerationMethod) ([]types.BusinessIdea, error) {
	if count < 1 {
		return nil, fmt.Errorf("idea count must be at least 1, got %d", count)
	}
	seeded := []types.GenerationMethod{types.MethodIndustry, types.MethodAudience, types.MethodTrend}
	out := make([]types.BusinessIdea, 0, count)
	for range count {
		m := method
		if m != types.MethodIndustry && m != types.MethodAudience && m != types.MethodTrend {
			m = seeded[g.sampler.IntN(len(seeded))]
		}

		var (
			idea types.BusinessIdea
			err  error
		)
		switch m {
		case types.MethodIndustry:
			idea, err = g.FromIndustry("", "")
		case types.MethodAudience:
			idea, err = g.FromAudience("", "")
		default:
			idea, err = g.FromTrend("")
		}
		if err != nil {
			return out, err
		}
		out = append(out, idea)
	}
	return out, nil
}

// Pivot derives a variant of idea that keeps its industry and niche and
// changes two or three of the other attributes.
func (g *Generator) Pivot(idea types.BusinessIdea) (types.BusinessIdea, error) {
	all := idea.Attributes()
	subset := make(types.AttributeSet, len(pivotable))
	for _, k := range pivotable {
		subset[k] = all[k]
	}
	changed, err := g.sampler.PickManyExcluding(subset, 2, 3)
	if err != nil {
		return types.BusinessIdea{}, fmt.Errorf("pivoting %s: %w", idea.BusinessName, err)
	}
	for k, v := range changed {
		all[k] = v
	}
	return g.format(all, idea.ID)
}

// sampleRest samples every category except the seeded ones. Industry also
// fills the niche.
func (g *Generator) sampleRest(seeded ...string) (types.AttributeSet, error) {
	attrs := make(types.AttributeSet, len(Categories)+1)
	for _, cat := range Categories {
		if slices.Contains(seeded, cat) {
			continue
		}
		if cat == types.AttrIndustry {
			industry, niche, err := g.sampler.PickGroup(cat)
			if err != nil {
				return nil, err
			}
			attrs[types.AttrIndustry] = industry
			attrs[types.AttrNiche] = niche
			continue
		}
		v, err := g.sampler.Pick(cat)
		if err != nil {
			return nil, err
		}
		attrs[cat] = v
	}
	return attrs, nil
}

func (g *Generator) seed(attrs types.AttributeSet, category, value string) error {
	if value == "" {
		v, err := g.sampler.Pick(category)
		if err != nil {
			return err
		}
		attrs[category] = v
		return nil
	}
	if !g.sampler.Taxonomy().Contains(category, value) {
		return fmt.Errorf("%w: %s %q", ErrUnknownValue, category, value)
	}
	attrs[category] = value
	return nil
}

func (g *Generator) format(attrs types.AttributeSet, parentID string) (types.BusinessIdea, error) {
	description, err := g.composer.Render(compose.KindBusiness, attrs)
	if err != nil {
		return types.BusinessIdea{}, err
	}
	props, err := g.composer.RenderAll(compose.KindValueProposition, attrs)
	if err != nil {
		return types.BusinessIdea{}, err
	}
	g.sampler.Shuffle(props)

	idea := types.BusinessIdea{
		ID:           g.newID(),
		ParentID:     parentID,
		BusinessName: g.name(attrs),
		Concept: types.Concept{
			Industry: attrs[types.AttrIndustry],
			Niche:    attrs[types.AttrNiche],
			TargetAudience: types.TargetAudience{
				Demographic:   attrs[types.AttrDemographic],
				Psychographic: attrs[types.AttrPsychographic],
			},
			Trend:         attrs[types.AttrTrend],
			BusinessModel: attrs[types.AttrBusinessModel],
			RevenueStream: attrs[types.AttrRevenueStream],
		},
		Description:      description,
		ValueProposition: props[:min(valuePropositions, len(props))],
		RealWorldConstraint: types.Constraints{
			Challenge: attrs[types.AttrConstraint],
			Solution:  g.sampler.PickFrom(solutions),
		},
		GeneratedAt: g.now().Format(TimeLayout),
	}
	g.log.Debug("generated business idea",
		zap.String("id", idea.ID),
		zap.String("name", idea.BusinessName),
		zap.String("industry", idea.Concept.Industry))
	return idea, nil
}

// name joins the first word of a sampled name element with a suffix.
func (g *Generator) name(attrs types.AttributeSet) string {
	element := g.sampler.PickFrom([]string{
		attrs[types.AttrNiche], attrs[types.AttrDemographic], attrs[types.AttrPsychographic], attrs[types.AttrTrend],
	})
	first := element
	if fields := strings.Fields(element); len(fields) > 0 {
		first = fields[0]
	}
	return first + g.sampler.PickFrom(nameSuffixes)
}

// SaveCollection writes ideas to path as an indented JSON array.
func SaveCollection(path string, ideas []types.BusinessIdea) error {
	if ideas == nil {
		ideas = []types.BusinessIdea{}
	}
	data, err := json.MarshalIndent(ideas, "", "    ")
	if err != nil {
		return fmt.Errorf("marshaling collection: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// LoadCollection reads a file written by SaveCollection.
func LoadCollection(path string) ([]types.BusinessIdea, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var ideas []types.BusinessIdea
	if err := json.Unmarshal(data, &ideas); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return ideas, nil
}
