// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import "github.com/pdiddy/idea-engine/pkg/types"

// Story kinds.
const (
	KindIdea   Kind = "idea"
	KindSequel Kind = "sequel"
)

// Business kinds.
const (
	KindBusiness         Kind = "business"
	KindValueProposition Kind = "value-proposition"
)

// Conversational kinds.
const (
	KindGreeting      Kind = "greeting"
	KindFAQ           Kind = "faq"
	KindFun           Kind = "fun"
	KindKnowledge     Kind = "knowledge"
	KindClarification Kind = "clarification"
	KindContextRecall Kind = "context-recall"
	KindFarewell      Kind = "farewell"
)

// ConversationKinds lists the conversational banks.
var ConversationKinds = []Kind{
	KindGreeting, KindFAQ, KindFun, KindKnowledge, KindClarification, KindContextRecall, KindFarewell,
}

// Continuity keys available to sequel and evolution templates.
const (
	KeyParentTitle      = "parent_title"
	KeyParentPlotDevice = "parent_plot_device"
)

// Conversation keys.
const (
	KeyName          = "name"
	KeyPreviousTopic = "previous_topic"
)

// EvolutionKind returns the bank used for an evolution direction.
func EvolutionKind(d types.Direction) Kind {
	return Kind("evolution-" + string(d))
}

// derivedKeys are the story keys plus parent continuity keys.
var derivedKeys = append(append([]string(nil), types.StoryAttributes...), KeyParentTitle, KeyParentPlotDevice)

// DefaultBanks returns the built-in template banks.
func DefaultBanks() []Bank {
	return []Bank{
		{
			Kind:     KindIdea,
			Required: types.StoryAttributes,
			Templates: []string{
				`In a {{.setting}}, a {{lower .character_type}} faces {{lower .conflict}} while pursuing {{lower .plot_device}} in this {{lower .genre}} tale about {{lower .theme}}.`,
				`A {{.genre}} story where a {{lower .character_type}} in {{.setting}} must overcome {{lower .conflict}} to achieve {{lower .plot_device}}, exploring the theme of {{lower .theme}}.`,
				`What happens when a {{lower .character_type}} confronts {{lower .conflict}} in {{.setting}}? This {{lower .genre}} explores {{lower .theme}} through the lens of {{lower .plot_device}}.`,
				`The {{.setting}} becomes the backdrop for a {{lower .genre}} where {{lower .theme}} is tested when a {{lower .character_type}} experiences {{lower .plot_device}} amid {{lower .conflict}}.`,
				`A tale of {{lower .theme}} unfolds in this {{lower .genre}} set in {{.setting}}, following a {{lower .character_type}} who encounters {{lower .conflict}} during {{lower .plot_device}}.`,
			},
		},
		{
			Kind:     KindSequel,
			Required: derivedKeys,
			Templates: []string{
				`Continuing from where we left off in {{.parent_title}}, our {{lower .character_type}} now faces {{lower .conflict}} while dealing with the consequences of {{lower .parent_plot_device}}.`,
				`Years after the events of {{.parent_title}}, {{.setting}} has changed. A new {{lower .plot_device}} emerges, forcing our protagonist to confront {{lower .conflict}} once again.`,
				`The saga continues as {{lower .theme}} takes center stage in this sequel to {{.parent_title}}. Our {{lower .character_type}} must navigate {{lower .conflict}} in an evolving {{.setting}}.`,
			},
		},
		{
			Kind:     EvolutionKind(types.DirectionDarker),
			Required: derivedKeys,
			Templates: []string{
				`As shadows lengthen in {{.setting}}, our {{lower .character_type}} discovers a sinister truth behind {{lower .parent_plot_device}}, leading to a confrontation with {{lower .conflict}}.`,
				`The once hopeful tale takes a grim turn as {{lower .theme}} reveals its darker side. In {{.setting}}, the {{lower .character_type}} must face {{lower .conflict}} with diminishing options.`,
				`What began as {{.parent_title}} now descends into darkness. The {{lower .character_type}} finds that {{lower .plot_device}} comes with a terrible price in this exploration of {{lower .theme}}.`,
			},
		},
		{
			Kind:     EvolutionKind(types.DirectionHopeful),
			Required: derivedKeys,
			Templates: []string{
				`Light breaks through the challenges of {{.parent_title}} as our {{lower .character_type}} discovers new allies in {{.setting}}. Together they transform {{lower .conflict}} into an opportunity for {{lower .theme}}.`,
				`The journey continues with renewed purpose as the {{lower .character_type}} embraces {{lower .plot_device}} with fresh perspective. In {{.setting}}, {{lower .theme}} blossoms despite {{lower .conflict}}.`,
				`Rising from the trials of {{.parent_title}}, our protagonist finds that {{.setting}} holds unexpected wonders. This tale of {{lower .theme}} shows how {{lower .conflict}} can lead to growth and connection.`,
			},
		},
		{
			Kind:     EvolutionKind(types.DirectionComplex),
			Required: derivedKeys,
			Templates: []string{
				`The seemingly straightforward tale of {{.parent_title}} unravels to reveal intricate layers. In {{.setting}}, our {{lower .character_type}} discovers that {{lower .plot_device}} connects to a web of {{lower .theme}} and {{lower .conflict}}.`,
				`As perspectives shift in {{.setting}}, the line between right and wrong blurs. The {{lower .character_type}} must navigate moral ambiguities of {{lower .theme}} while confronting {{lower .conflict}} from multiple angles.`,
				`What seemed like a single thread of {{lower .plot_device}} now reveals itself as a tapestry. Our protagonist's journey through {{.setting}} becomes an exploration of {{lower .theme}} with no easy answers to {{lower .conflict}}.`,
			},
		},
		{
			Kind:     EvolutionKind(types.DirectionAction),
			Required: derivedKeys,
			Templates: []string{
				`The stakes escalate rapidly in {{.setting}} as our {{lower .character_type}} is thrust into a high-octane confrontation. {{.plot_device}} becomes a race against time amid intense {{lower .conflict}}.`,
				`Danger erupts in {{.setting}} when {{lower .plot_device}} attracts powerful enemies. The {{lower .character_type}} must master new skills to survive {{lower .conflict}} in this adrenaline-fueled chapter of {{lower .theme}}.`,
				`From the foundations of {{.parent_title}} emerges a battle for survival. In {{.setting}}, our protagonist faces relentless {{lower .conflict}} that transforms {{lower .theme}} into a trial by fire.`,
			},
		},
		{
			Kind:     KindBusiness,
			Required: []string{types.AttrBusinessModel, types.AttrNiche, types.AttrDemographic, types.AttrPsychographic, types.AttrTrend},
			Templates: []string{
				`A {{lower .business_model}} business offering {{lower .niche}} solutions for {{lower .demographic}} who are {{lower .psychographic}}, capitalizing on the {{lower .trend}} trend.`,
				`A {{lower .business_model}} venture bringing {{lower .niche}} to {{lower .demographic}} who are {{lower .psychographic}}, built on the rise of {{lower .trend}}.`,
				`Built around {{lower .trend}}, this {{lower .business_model}} company delivers {{lower .niche}} for {{lower .demographic}} who are {{lower .psychographic}}.`,
			},
		},
		{
			Kind:     KindValueProposition,
			Required: []string{types.AttrIndustry, types.AttrNiche, types.AttrDemographic, types.AttrPsychographic, types.AttrTrend},
			Templates: []string{
				`Tailored specifically for {{.demographic}}`,
				`Addresses the unique needs of {{.psychographic}} individuals`,
				`Leverages cutting-edge {{.niche}} technology`,
				`Rides the wave of {{.trend}}`,
				`Disrupts traditional {{lower .industry}} with innovative approach`,
			},
		},
		{
			Kind:     KindGreeting,
			Required: []string{KeyName},
			Templates: []string{
				`Hello! I'm {{.name}}. How can I assist you today?`,
				`Hi there! I'm {{.name}}. What would you like to talk about?`,
				`Greetings! I'm {{.name}}. I can help with questions, have fun conversations, or discuss various topics. What interests you?`,
			},
		},
		{
			Kind: KindFAQ,
			Templates: []string{
				`I see you have a question. Let me find the answer for you.`,
				`That's a good question. Here's what I know:`,
				`I'd be happy to answer that question.`,
			},
		},
		{
			Kind: KindFun,
			Templates: []string{
				`Let's have some fun! What would you like to talk about?`,
				`I'm in a playful mood! What's on your mind?`,
				`Fun conversations are my specialty! What shall we discuss?`,
			},
		},
		{
			Kind: KindKnowledge,
			Templates: []string{
				`I'd be happy to discuss this topic in depth.`,
				`That's an interesting subject. Let me share what I know.`,
				`I enjoy knowledge-based discussions. Here's some information on that:`,
			},
		},
		{
			Kind: KindClarification,
			Templates: []string{
				`Could you provide more details about that?`,
				`I'm not sure I understand. Can you elaborate?`,
				`To better assist you, could you explain a bit more?`,
			},
		},
		{
			Kind:     KindContextRecall,
			Required: []string{KeyPreviousTopic},
			Templates: []string{
				`Earlier you mentioned {{.previous_topic}}. Would you like to continue that discussion?`,
				`Going back to {{.previous_topic}} that you brought up earlier...`,
				`Relating to our previous conversation about {{.previous_topic}}...`,
			},
		},
		{
			Kind: KindFarewell,
			Templates: []string{
				`It was great chatting with you! Feel free to return if you have more questions.`,
				`I enjoyed our conversation! Come back anytime.`,
				`Thanks for the chat! Have a wonderful day!`,
			},
		},
	}
}
