package config

// mergeConfigs merges override configuration into base. Neither input is
// modified.
func mergeConfigs(base, override *Config) *Config {
	result := *base

	if override.Version != "" {
		result.Version = override.Version
	}
	if override.Catalog != "" {
		result.Catalog = override.Catalog
	}

	result.TUI = mergeTUI(base.TUI, override.TUI)

	if override.Extensions != nil {
		merged := make(map[string]interface{}, len(base.Extensions)+len(override.Extensions))
		for key, value := range base.Extensions {
			merged[key] = value
		}
		for key, value := range override.Extensions {
			// If both base and override have the same extension key, merge them
			if baseValue, exists := merged[key]; exists {
				if baseMap, baseOk := baseValue.(map[string]interface{}); baseOk {
					if overrideMap, overrideOk := value.(map[string]interface{}); overrideOk {
						mergedMap := make(map[string]interface{})
						for k, v := range baseMap {
							mergedMap[k] = v
						}
						for k, v := range overrideMap {
							mergedMap[k] = v
						}
						merged[key] = mergedMap
						continue
					}
				}
			}
			merged[key] = value
		}
		result.Extensions = merged
	}

	return &result
}

func mergeTUI(base, override *TUIConfig) *TUIConfig {
	if override == nil {
		return base
	}
	if base == nil {
		cp := *override
		return &cp
	}

	result := *base
	if override.Theme != "" {
		result.Theme = override.Theme
	}
	if override.Icons != "" {
		result.Icons = override.Icons
	}
	if override.Preset != "" {
		result.Preset = override.Preset
	}
	if len(override.Expand) > 0 {
		result.Expand = override.Expand
	}
	if override.ShowExamples != nil {
		result.ShowExamples = override.ShowExamples
	}
	if override.HighlightStyle != "" {
		result.HighlightStyle = override.HighlightStyle
	}
	result.Keybindings = mergeKeybindings(base.Keybindings, override.Keybindings)
	return &result
}

func mergeKeybindings(base, override *KeybindingsConfig) *KeybindingsConfig {
	if override == nil {
		return base
	}
	if base == nil {
		return override
	}
	return &KeybindingsConfig{
		Navigation: mergeSection(base.Navigation, override.Navigation),
		Search:     mergeSection(base.Search, override.Search),
		Fold:       mergeSection(base.Fold, override.Fold),
		System:     mergeSection(base.System, override.System),
	}
}

// mergeSection overlays override actions onto base, one action at a time.
func mergeSection(base, override KeybindingSectionConfig) KeybindingSectionConfig {
	if len(override) == 0 {
		return base
	}
	result := make(KeybindingSectionConfig, len(base)+len(override))
	for action, keys := range base {
		result[action] = keys
	}
	for action, keys := range override {
		result[action] = keys
	}
	return result
}
