// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Delims holds the action delimiters used by the template engine. LaTeX
// braces collide with the engine's default "{{" and "}}".
type Delims struct {
	Left  string `json:"left" yaml:"left" mapstructure:"left"`
	Right string `json:"right" yaml:"right" mapstructure:"right"`
}

// RenderConfig holds settings for turning a sanitized document into text.
type RenderConfig struct {
	// Template names a built-in template (e.g. "basic", "two_column").
	Template string `json:"template" yaml:"template" mapstructure:"template"`

	// TemplatePath points to a template file on disk. It takes precedence
	// over Template when set.
	TemplatePath string `json:"template_path,omitempty" yaml:"template_path,omitempty" mapstructure:"template_path"`

	// Delims overrides the default "<<" and ">>" delimiters.
	Delims Delims `json:"delims" yaml:"delims" mapstructure:"delims"`
}

// SanitizeConfig holds settings for the data sanitizer.
type SanitizeConfig struct {
	// RecordFields lists top-level fields holding record lists whose date
	// fields are formatted. Defaults to experience and education.
	RecordFields []string `json:"record_fields,omitempty" yaml:"record_fields,omitempty" mapstructure:"record_fields"`

	// DateFields lists record fields formatted as dates. Defaults to start and end.
	DateFields []string `json:"date_fields,omitempty" yaml:"date_fields,omitempty" mapstructure:"date_fields"`
}

// HistoryConfig holds settings for the build history database.
type HistoryConfig struct {
	// Enabled turns on recording of builds.
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// Dir is the directory containing history.db.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`
}

// BuildConfig groups everything a single build needs.
type BuildConfig struct {
	// InputPath is the YAML or JSON résumé file.
	InputPath string `json:"input" yaml:"input" mapstructure:"input"`

	// OutputPath is the destination .tex file. Empty means stdout.
	OutputPath string `json:"output,omitempty" yaml:"output,omitempty" mapstructure:"output"`

	Render   RenderConfig   `json:"render" yaml:"render" mapstructure:"render"`
	Sanitize SanitizeConfig `json:"sanitize" yaml:"sanitize" mapstructure:"sanitize"`
	History  HistoryConfig  `json:"history" yaml:"history" mapstructure:"history"`
}
