package config

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"

	"github.com/grovetools/twguide/errors"
)

var (
	knownThemes  = []string{"kanagawa", "gruvbox", "terminal"}
	knownPresets = []string{"vim", "emacs", "arrows"}
	knownIcons   = []string{"nerd", "ascii"}
)

// Validate checks semantic constraints the schema cannot express.
func (c *Config) Validate() error {
	if c.TUI == nil {
		return nil
	}
	t := c.TUI

	if err := validateOneOf("tui.theme", t.Theme, knownThemes); err != nil {
		return err
	}
	if err := validateOneOf("tui.preset", t.Preset, knownPresets); err != nil {
		return err
	}
	if err := validateOneOf("tui.icons", t.Icons, knownIcons); err != nil {
		return err
	}

	for i, name := range t.Expand {
		if strings.TrimSpace(name) == "" {
			return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("tui.expand[%d] is empty", i))
		}
	}

	if t.HighlightStyle != "" {
		if _, ok := styles.Registry[strings.ToLower(t.HighlightStyle)]; !ok {
			return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("unknown highlight style %q", t.HighlightStyle)).
				WithDetail("highlight_style", t.HighlightStyle)
		}
	}

	if kb := t.Keybindings; kb != nil {
		sections := map[string]KeybindingSectionConfig{
			"navigation": kb.Navigation,
			"search":     kb.Search,
			"fold":       kb.Fold,
			"system":     kb.System,
		}
		for section, actions := range sections {
			for action, keys := range actions {
				for _, k := range keys {
					if strings.TrimSpace(k) == "" {
						return errors.New(errors.ErrCodeConfigValidation,
							fmt.Sprintf("tui.keybindings.%s.%s contains an empty key", section, action))
					}
				}
			}
		}
	}

	return nil
}

func validateOneOf(field, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return errors.New(errors.ErrCodeConfigValidation,
		fmt.Sprintf("%s must be one of %s, got %q", field, strings.Join(allowed, ", "), value)).
		WithDetail("field", field)
}
