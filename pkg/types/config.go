// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// EngineConfig holds settings shared by the story and business generators.
type EngineConfig struct {
	// Seed initializes the random source. Zero selects a time-based seed.
	Seed int64 `json:"seed" yaml:"seed"`

	// TaxonomyFile optionally replaces the built-in story taxonomy.
	TaxonomyFile string `json:"taxonomy_file,omitempty" yaml:"taxonomy_file,omitempty"`

	// Variations is the number of variations generated per root idea.
	// Zero disables them; a negative value selects the default of 3.
	Variations int `json:"variations" yaml:"variations"`

	// VariationMin and VariationMax bound how many attributes a variation
	// changes (default 2 and 3).
	VariationMin int `json:"variation_min" yaml:"variation_min"`
	VariationMax int `json:"variation_max" yaml:"variation_max"`
}

// WithDefaults fills unset fields with their defaults.
func (c EngineConfig) WithDefaults() EngineConfig {
	if c.Variations < 0 {
		c.Variations = 3
	}
	if c.VariationMin <= 0 {
		c.VariationMin = 2
	}
	if c.VariationMax <= 0 {
		c.VariationMax = 3
	}
	if c.VariationMax < c.VariationMin {
		c.VariationMax = c.VariationMin
	}
	return c
}

// HistoryConfig locates the JSON lineage file.
type HistoryConfig struct {
	// Path is the history file (default "story_ideas.json").
	Path string `json:"path" yaml:"path"`
}

// ArchiveConfig holds settings for the SQLite idea archive.
type ArchiveConfig struct {
	// ArchiveDir contains ideas.db and the export files.
	ArchiveDir string `json:"archive_dir" yaml:"archive_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
