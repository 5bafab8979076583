package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates the JSON Schema for twguide.yml. Extension
// sections such as "logging" are not described and are allowed through.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		ExpandedStruct:            true,
		DoNotReference:            true,
		Anonymous:                 true,
		FieldNameTag:              "yaml",
	}

	// Mirrors Config without the inline Extensions field.
	type BaseConfig struct {
		Version string     `yaml:"version,omitempty" jsonschema:"description=Configuration version such as 1.0"`
		Catalog string     `yaml:"catalog,omitempty" jsonschema:"description=Path to a custom catalog file in yaml or toml or json"`
		TUI     *TUIConfig `yaml:"tui,omitempty" jsonschema:"description=Interactive guide settings"`
	}

	schema := r.Reflect(&BaseConfig{})
	schema.Title = "twguide Configuration"
	schema.Description = "Schema for twguide.yml."
	schema.Version = "http://json-schema.org/draft-07/schema#"
	schema.AdditionalProperties = jsonschema.TrueSchema

	return json.MarshalIndent(schema, "", "  ")
}
