package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

//go:generate sh -c "cd .. && go run ./tools/schema-generator/"

// KeybindingSectionConfig maps action names (e.g. "up", "toggle") to the key
// combinations that trigger them.
type KeybindingSectionConfig map[string][]string

// KeybindingsConfig holds per-section keybinding overrides.
type KeybindingsConfig struct {
	Navigation KeybindingSectionConfig `yaml:"navigation,omitempty" toml:"navigation,omitempty" json:"navigation,omitempty" jsonschema:"description=Navigation keybindings: up down page_up page_down top bottom"`
	Search     KeybindingSectionConfig `yaml:"search,omitempty" toml:"search,omitempty" json:"search,omitempty" jsonschema:"description=Search keybindings: search clear_search blur"`
	Fold       KeybindingSectionConfig `yaml:"fold,omitempty" toml:"fold,omitempty" json:"fold,omitempty" jsonschema:"description=Fold keybindings: toggle open_all close_all"`
	System     KeybindingSectionConfig `yaml:"system,omitempty" toml:"system,omitempty" json:"system,omitempty" jsonschema:"description=System keybindings: quit help"`
}

// TUIConfig holds settings for the interactive guide.
type TUIConfig struct {
	Theme          string             `yaml:"theme,omitempty" toml:"theme,omitempty" json:"theme,omitempty" jsonschema:"description=Color theme,enum=kanagawa,enum=gruvbox,enum=terminal"`
	Icons          string             `yaml:"icons,omitempty" toml:"icons,omitempty" json:"icons,omitempty" jsonschema:"description=Icon set to use: nerd or ascii,enum=nerd,enum=ascii"`
	Preset         string             `yaml:"preset,omitempty" toml:"preset,omitempty" json:"preset,omitempty" jsonschema:"description=Keybinding preset,enum=vim,enum=emacs,enum=arrows,default=vim"`
	Expand         []string           `yaml:"expand,omitempty" toml:"expand,omitempty" json:"expand,omitempty" jsonschema:"description=Categories expanded at startup"`
	ShowExamples   *bool              `yaml:"show_examples,omitempty" toml:"show_examples,omitempty" json:"show_examples,omitempty" jsonschema:"description=Render example markup under each class (default: true)"`
	HighlightStyle string             `yaml:"highlight_style,omitempty" toml:"highlight_style,omitempty" json:"highlight_style,omitempty" jsonschema:"description=Chroma style used to highlight examples (default: monokai)"`
	Keybindings    *KeybindingsConfig `yaml:"keybindings,omitempty" toml:"keybindings,omitempty" json:"keybindings,omitempty" jsonschema:"description=Custom keybinding overrides"`
}

// Config represents the twguide.yml configuration.
type Config struct {
	Version string     `yaml:"version" toml:"version" json:"version" jsonschema:"description=Configuration version such as 1.0"`
	Catalog string     `yaml:"catalog,omitempty" toml:"catalog,omitempty" json:"catalog,omitempty" jsonschema:"description=Path to a custom catalog file in yaml or toml or json"`
	TUI     *TUIConfig `yaml:"tui,omitempty" toml:"tui,omitempty" json:"tui,omitempty" jsonschema:"description=Interactive guide settings"`

	// Extensions captures all other top-level keys, e.g. "logging".
	Extensions map[string]interface{} `yaml:",inline" toml:"-" json:"-" jsonschema:"-"`
}

// knownKeys are the top-level keys decoded into Config fields rather than
// Extensions.
var knownKeys = map[string]bool{
	"version": true,
	"catalog": true,
	"tui":     true,
}

// Default returns a configuration with defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults sets default values for configuration
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = "1.0"
	}
	if c.TUI == nil {
		c.TUI = &TUIConfig{}
	}
	if c.TUI.Preset == "" {
		c.TUI.Preset = "vim"
	}
	if c.TUI.ShowExamples == nil {
		show := true
		c.TUI.ShowExamples = &show
	}
	if c.TUI.HighlightStyle == "" {
		c.TUI.HighlightStyle = "monokai"
	}
}

// ExamplesEnabled reports whether example markup should be rendered.
func (c *Config) ExamplesEnabled() bool {
	if c == nil || c.TUI == nil || c.TUI.ShowExamples == nil {
		return true
	}
	return *c.TUI.ShowExamples
}

// UnmarshalExtension decodes a specific extension's configuration from the
// loaded twguide.yml into the provided target struct. The target must be a
// pointer.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		// A missing key leaves the target zero-valued.
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "yaml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
