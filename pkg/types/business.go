// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Business attribute keys.
const (
	AttrIndustry      = "industry"
	AttrNiche         = "niche"
	AttrDemographic   = "demographic"
	AttrPsychographic = "psychographic"
	AttrTrend         = "trend"
	AttrBusinessModel = "business_model"
	AttrRevenueStream = "revenue_stream"
	AttrConstraint    = "constraint"
)

// GenerationMethod selects which attribute seeds a business idea.
type GenerationMethod string

const (
	MethodIndustry GenerationMethod = "industry"
	MethodAudience GenerationMethod = "audience"
	MethodTrend    GenerationMethod = "trend"
	MethodMixed    GenerationMethod = "mixed"
)

// TargetAudience pairs a demographic with a psychographic.
type TargetAudience struct {
	Demographic   string `json:"demographic" yaml:"demographic"`
	Psychographic string `json:"psychographic" yaml:"psychographic"`
}

// Concept holds the sampled attributes of a business idea.
type Concept struct {
	Industry       string         `json:"industry" yaml:"industry"`
	Niche          string         `json:"niche" yaml:"niche"`
	TargetAudience TargetAudience `json:"target_audience" yaml:"target_audience"`
	Trend          string         `json:"trend" yaml:"trend"`
	BusinessModel  string         `json:"business_model" yaml:"business_model"`
	RevenueStream  string         `json:"revenue_stream" yaml:"revenue_stream"`
}

// Constraints pairs a real-world challenge with a suggested mitigation.
type Constraints struct {
	Challenge string `json:"challenge" yaml:"challenge"`
	Solution  string `json:"solution" yaml:"solution"`
}

// BusinessIdea is a generated business concept.
type BusinessIdea struct {
	// ID is a random identifier used to reference saved ideas.
	ID string `json:"id" yaml:"id"`

	// ParentID names the idea this one was pivoted from.
	ParentID string `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`

	BusinessName        string      `json:"business_name" yaml:"business_name"`
	Concept             Concept     `json:"concept" yaml:"concept"`
	Description         string      `json:"description" yaml:"description"`
	ValueProposition    []string    `json:"value_proposition" yaml:"value_proposition"`
	RealWorldConstraint Constraints `json:"real_world_constraints" yaml:"real_world_constraints"`

	// GeneratedAt uses the "2006-01-02 15:04:05" layout.
	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
}

// Attributes flattens the concept and challenge into an AttributeSet.
func (b BusinessIdea) Attributes() AttributeSet {
	return AttributeSet{
		AttrIndustry:      b.Concept.Industry,
		AttrNiche:         b.Concept.Niche,
		AttrDemographic:   b.Concept.TargetAudience.Demographic,
		AttrPsychographic: b.Concept.TargetAudience.Psychographic,
		AttrTrend:         b.Concept.Trend,
		AttrBusinessModel: b.Concept.BusinessModel,
		AttrRevenueStream: b.Concept.RevenueStream,
		AttrConstraint:    b.RealWorldConstraint.Challenge,
	}
}
