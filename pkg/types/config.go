package types

// ScoringConfig holds settings for categorization and scoring.
type ScoringConfig struct {
	// Threshold is the minimum relevance, credibility and accuracy a category
	// needs to pass the quality gate (default 70).
	Threshold int `json:"threshold" yaml:"threshold" mapstructure:"threshold" validate:"gte=0,lte=100"`

	// MaxCategories caps the number of categories selected for display.
	// Zero means no cap.
	MaxCategories int `json:"max_categories" yaml:"max_categories" mapstructure:"max_categories" validate:"gte=0"`

	// Insights controls whether insights are extracted for each category.
	Insights bool `json:"insights" yaml:"insights" mapstructure:"insights"`

	// Dedup merges hits that share a URL or normalized title before scoring.
	Dedup bool `json:"dedup" yaml:"dedup" mapstructure:"dedup"`
}

// TaxonomyConfig holds settings for the category taxonomy.
type TaxonomyConfig struct {
	// File is an optional YAML or JSON file with extra or replacement
	// specific categories.
	File string `json:"file,omitempty" yaml:"file,omitempty" mapstructure:"file"`
}

// SynthesisConfig holds settings for the fallback synthesizer.
type SynthesisConfig struct {
	// MaxKeyPoints caps the generic bullets in the Key Points section (default 5).
	MaxKeyPoints int `json:"max_key_points" yaml:"max_key_points" mapstructure:"max_key_points" validate:"gte=1,lte=20"`

	// MaxFollowUps caps the number of follow-up questions (default 5).
	MaxFollowUps int `json:"max_follow_ups" yaml:"max_follow_ups" mapstructure:"max_follow_ups" validate:"gte=1,lte=10"`
}

// OutputFormat selects how reports are written.
type OutputFormat string

const (
	OutputTable    OutputFormat = "table"
	OutputJSON     OutputFormat = "json"
	OutputYAML     OutputFormat = "yaml"
	OutputMarkdown OutputFormat = "markdown"
	OutputCSL      OutputFormat = "csl"
)

// OutputConfig holds report settings.
type OutputConfig struct {
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format" validate:"oneof=table json yaml markdown csl"`

	// Color enables lipgloss styling in table output.
	Color bool `json:"color" yaml:"color" mapstructure:"color"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `json:"level" yaml:"level" mapstructure:"level" validate:"oneof=debug info warn warning error"`
	Format string `json:"format" yaml:"format" mapstructure:"format" validate:"oneof=text json"`
}

// EngineConfig groups all settings for the engine.
type EngineConfig struct {
	Scoring   ScoringConfig   `json:"scoring" yaml:"scoring" mapstructure:"scoring"`
	Taxonomy  TaxonomyConfig  `json:"taxonomy" yaml:"taxonomy" mapstructure:"taxonomy"`
	Synthesis SynthesisConfig `json:"synthesis" yaml:"synthesis" mapstructure:"synthesis"`
	Output    OutputConfig    `json:"output" yaml:"output" mapstructure:"output"`
	Log       LogConfig       `json:"log" yaml:"log" mapstructure:"log"`
}

// DefaultEngineConfig returns the built-in defaults.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Scoring: ScoringConfig{
			Threshold: 70,
		},
		Synthesis: SynthesisConfig{
			MaxKeyPoints: 5,
			MaxFollowUps: 5,
		},
		Output: OutputConfig{
			Format: OutputTable,
			Color:  true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
