package keymap

import (
	"reflect"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Info describes the effective keymap for `twguide keys`.
type Info struct {
	Preset   string        `json:"preset"`
	Sections []SectionInfo `json:"sections"`
}

// SectionInfo is the serializable form of a Section.
type SectionInfo struct {
	Name     string        `json:"name"`
	Bindings []BindingInfo `json:"bindings"`
}

// BindingInfo is the serializable form of a key.Binding.
type BindingInfo struct {
	Keys        []string `json:"keys"`
	Description string   `json:"description"`
	Enabled     bool     `json:"enabled"`
	// ConfigKey is the path of the override in twguide.yml,
	// e.g. "tui.keybindings.fold.open_all".
	ConfigKey string `json:"config_key"`
}

// ExportBinding converts a key.Binding to a BindingInfo.
func ExportBinding(b key.Binding) BindingInfo {
	return BindingInfo{
		Keys:        b.Keys(),
		Description: b.Help().Desc,
		Enabled:     b.Enabled(),
	}
}

// ExportSection converts a Section to a SectionInfo.
func ExportSection(s Section) SectionInfo {
	bindings := make([]BindingInfo, 0, len(s.Bindings))
	for _, b := range s.Bindings {
		bindings = append(bindings, ExportBinding(b))
	}
	return SectionInfo{Name: s.Name, Bindings: bindings}
}

// MakeInfo exports km with the config key of every binding filled in.
func MakeInfo(preset string, km Base) Info {
	configKeys := make(map[string]string)
	extractConfigKeys(reflect.ValueOf(km), configKeys)

	info := Info{Preset: preset}
	for _, s := range km.Sections() {
		si := ExportSection(s)
		prefix := "tui.keybindings." + strings.ToLower(s.Name) + "."
		for i := range si.Bindings {
			if k, ok := configKeys[si.Bindings[i].Description]; ok {
				si.Bindings[i].ConfigKey = prefix + k
			}
		}
		info.Sections = append(info.Sections, si)
	}
	return info
}

// extractConfigKeys maps the help description of every key.Binding field in
// v to its snake_case field name, recursing into embedded structs.
func extractConfigKeys(v reflect.Value, m map[string]string) {
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}
	bindingType := reflect.TypeOf(key.Binding{})
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		val := v.Field(i)
		switch {
		case field.Anonymous:
			extractConfigKeys(val, m)
		case field.Type == bindingType && val.CanInterface():
			if b := val.Interface().(key.Binding); b.Help().Desc != "" {
				m[b.Help().Desc] = camelToSnake(field.Name)
			}
		}
	}
}
