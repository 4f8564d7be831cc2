// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package taxonomy

import "github.com/pdiddy/idea-engine/pkg/types"

// StoryCategories returns the built-in story catalog.
func StoryCategories() []Category {
	return []Category{
		NewFlat(types.AttrGenre,
			"Fantasy", "Science Fiction", "Mystery", "Romance", "Horror",
			"Adventure", "Historical Fiction", "Thriller", "Comedy", "Drama"),
		NewFlat(types.AttrCharacterType,
			"Hero", "Villain", "Mentor", "Sidekick", "Love Interest",
			"Anti-hero", "Trickster", "Guardian", "Outcast", "Innocent"),
		NewFlat(types.AttrPlotDevice,
			"Quest", "Mystery", "Revenge", "Escape", "Transformation",
			"Sacrifice", "Discovery", "Rivalry", "Forbidden Love", "Redemption"),
		NewFlat(types.AttrSetting,
			"Medieval Kingdom", "Futuristic City", "Small Town", "Alien Planet",
			"Post-apocalyptic World", "Ancient Civilization", "Haunted House",
			"Underwater City", "Space Station", "Parallel Universe"),
		NewFlat(types.AttrTheme,
			"Betrayal", "Love", "Redemption", "Power", "Identity",
			"Justice", "Freedom", "Survival", "Family", "Sacrifice"),
		NewFlat(types.AttrConflict,
			"Person vs. Person", "Person vs. Nature", "Person vs. Society",
			"Person vs. Technology", "Person vs. Supernatural", "Person vs. Self",
			"Person vs. Fate", "Person vs. Machine", "Person vs. God", "Person vs. Reality"),
	}
}

// DefaultStory returns a Store over StoryCategories.
func DefaultStory() *Store {
	s, err := New(StoryCategories()...)
	if err != nil {
		panic("taxonomy: invalid built-in story catalog: " + err.Error())
	}
	return s
}

// BusinessCategories returns the built-in business catalog. Industry,
// audience, trend and constraint categories are two-level.
func BusinessCategories() []Category {
	return []Category{
		NewNested(types.AttrIndustry,
			Group{"Technology", []string{"AI", "Blockchain", "IoT", "AR/VR", "Cybersecurity", "Edge Computing", "Quantum Computing"}},
			Group{"Health", []string{"Telemedicine", "Mental Health", "Preventive Care", "Elder Care", "Fitness Tech", "Nutrition", "Medical Devices"}},
			Group{"Education", []string{"E-learning", "Skill Development", "Early Childhood", "Professional Training", "Language Learning", "Educational Games"}},
			Group{"Food", []string{"Plant-based", "Meal Kits", "Ghost Kitchens", "Specialty Diets", "Artisanal Products", "Food Waste Reduction"}},
			Group{"Retail", []string{"D2C Brands", "Sustainable Fashion", "Personalized Shopping", "Rental Services", "Resale Markets", "Pop-up Stores"}},
			Group{"Finance", []string{"Microfinance", "Personal Finance", "Crypto", "Insurtech", "Wealth Management", "Financial Literacy"}},
			Group{"Entertainment", []string{"Streaming Content", "Podcasts", "Interactive Media", "Gaming", "Virtual Events", "Creator Economy"}},
			Group{"Sustainability", []string{"Renewable Energy", "Circular Economy", "Carbon Capture", "Sustainable Packaging", "Water Conservation"}},
		),
		NewNested(types.AttrDemographic,
			Group{"Age", []string{"Gen Z (18-24)", "Millennials (25-40)", "Gen X (41-56)", "Baby Boomers (57-75)", "Seniors (76+)"}},
			Group{"Income", []string{"Budget-conscious", "Middle income", "Affluent", "High net worth"}},
			Group{"Location", []string{"Urban", "Suburban", "Rural", "Remote", "International"}},
			Group{"Occupation", []string{"Students", "Professionals", "Entrepreneurs", "Freelancers", "Retirees", "Homemakers"}},
		),
		NewNested(types.AttrPsychographic,
			Group{"Values", []string{"Sustainability", "Convenience", "Luxury", "Innovation", "Community", "Health-conscious", "Privacy-focused"}},
			Group{"Interests", []string{"Tech enthusiasts", "Health & wellness", "Outdoor activities", "Arts & culture", "DIY & crafts", "Travel", "Food & cooking"}},
			Group{"Pain Points", []string{"Time scarcity", "Budget constraints", "Information overload", "Social isolation", "Health concerns", "Environmental anxiety"}},
		),
		NewNested(types.AttrTrend,
			Group{"Technology Trends", []string{"AI automation", "Voice interfaces", "No-code tools", "Digital privacy", "Metaverse", "Web3", "Sustainable tech"}},
			Group{"Consumer Trends", []string{"Subscription economy", "Personalization", "Ethical consumption", "Remote work", "Digital wellness", "Contactless services"}},
			Group{"Economic Trends", []string{"Gig economy", "Circular economy", "Local sourcing", "Micro-entrepreneurship", "Collaborative consumption"}},
			Group{"Social Trends", []string{"Community building", "Social impact", "Diversity & inclusion", "Digital communities", "Creator economy"}},
		),
		NewFlat(types.AttrBusinessModel,
			"Subscription", "Marketplace", "Freemium", "On-demand service", "Direct-to-consumer",
			"Sharing economy", "Membership", "Pay-per-use", "White-label", "Franchise",
			"Advertising-based", "Affiliate marketing", "SaaS", "PaaS", "Data monetization"),
		NewFlat(types.AttrRevenueStream,
			"Monthly subscriptions", "One-time purchases", "Transaction fees", "Premium features",
			"Advertising", "Sponsorships", "Licensing", "Consulting services", "Data insights",
			"Affiliate commissions", "Crowdfunding", "Grants", "Enterprise contracts"),
		NewNested(types.AttrConstraint,
			Group{"Market", []string{"High competition", "Regulatory hurdles", "High customer acquisition costs", "Market saturation", "Changing consumer preferences"}},
			Group{"Operational", []string{"Supply chain complexity", "Talent shortage", "High operational costs", "Scalability challenges", "Quality control"}},
			Group{"Financial", []string{"High startup costs", "Long path to profitability", "Funding challenges", "Seasonal cash flow", "Currency fluctuations"}},
			Group{"Technological", []string{"Technical complexity", "Integration challenges", "Rapid obsolescence", "Cybersecurity risks", "Data privacy concerns"}},
		),
	}
}

// DefaultBusiness returns a Store over BusinessCategories.
func DefaultBusiness() *Store {
	s, err := New(BusinessCategories()...)
	if err != nil {
		panic("taxonomy: invalid built-in business catalog: " + err.Error())
	}
	return s
}
