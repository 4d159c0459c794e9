// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ParseConfig holds settings for the parse stage.
type ParseConfig struct {
	// InputPath is the transcript PDF to read (default "transkript.pdf").
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutputPath is the JSON file the projected records are written to
	// (default "transcript_simple.json").
	OutputPath string `json:"output_path" yaml:"output_path"`

	// TemplatePath is an optional YAML template file overriding the
	// built-in document template lists.
	TemplatePath string `json:"template_path,omitempty" yaml:"template_path,omitempty"`
}

// StoreConfig holds settings for the transcript store.
type StoreConfig struct {
	// DBPath is the SQLite database file (default "transcripts.db").
	DBPath string `json:"db_path" yaml:"db_path"`
}
