package keymap

import (
	"testing"

	"github.com/grovetools/twguide/config"
)

func TestDefaultVim(t *testing.T) {
	km := DefaultVim()

	if keys := km.Up.Keys(); len(keys) < 1 || keys[0] != "k" {
		t.Errorf("Expected Up to have 'k' as first key, got %v", keys)
	}
	if keys := km.Down.Keys(); len(keys) < 1 || keys[0] != "j" {
		t.Errorf("Expected Down to have 'j' as first key, got %v", keys)
	}
	if keys := km.Top.Keys(); len(keys) < 1 || keys[0] != "gg" {
		t.Errorf("Expected Top to have 'gg' as key, got %v", keys)
	}
	if keys := km.OpenAll.Keys(); len(keys) != 1 || keys[0] != "zR" {
		t.Errorf("Expected OpenAll=[zR], got %v", keys)
	}
	if keys := km.CloseAll.Keys(); len(keys) != 1 || keys[0] != "zM" {
		t.Errorf("Expected CloseAll=[zM], got %v", keys)
	}
	if !Matches("za", km.Toggle) || !Matches("enter", km.Toggle) {
		t.Errorf("Expected Toggle to accept enter and za, got %v", km.Toggle.Keys())
	}
	if !Matches("ctrl+l", km.ClearSearch) {
		t.Errorf("Expected ClearSearch to be ctrl+l, got %v", km.ClearSearch.Keys())
	}
}

func TestDefaultEmacs(t *testing.T) {
	km := DefaultEmacs()

	if keys := km.Up.Keys(); len(keys) < 1 || keys[0] != "ctrl+p" {
		t.Errorf("Expected Up to have 'ctrl+p' as first key, got %v", keys)
	}
	if keys := km.Down.Keys(); len(keys) < 1 || keys[0] != "ctrl+n" {
		t.Errorf("Expected Down to have 'ctrl+n' as first key, got %v", keys)
	}
	if keys := km.Search.Keys(); len(keys) < 1 || keys[0] != "ctrl+s" {
		t.Errorf("Expected Search to have 'ctrl+s' as first key, got %v", keys)
	}
	// System keys are shared by every preset.
	if keys := km.Quit.Keys(); len(keys) < 1 || keys[0] != "q" {
		t.Errorf("Expected Quit to stay 'q', got %v", keys)
	}
}

func TestDefaultArrows(t *testing.T) {
	km := DefaultArrows()

	if keys := km.Up.Keys(); len(keys) != 1 || keys[0] != "up" {
		t.Errorf("Expected Up=[up], got %v", keys)
	}
	if keys := km.Down.Keys(); len(keys) != 1 || keys[0] != "down" {
		t.Errorf("Expected Down=[down], got %v", keys)
	}
	for _, b := range SequenceBindings(km) {
		for _, k := range b.Keys() {
			if k == "gg" || k == "zR" || k == "zM" || k == "za" {
				t.Errorf("arrows preset should not use multi-key sequences, found %q", k)
			}
		}
	}
}

func TestLoad_NilConfig(t *testing.T) {
	km := Load(nil)

	if keys := km.Up.Keys(); len(keys) < 1 || keys[0] != "k" {
		t.Errorf("Expected vim-style Up key, got %v", keys)
	}

	km = Load(&config.Config{})
	if keys := km.Up.Keys(); len(keys) < 1 || keys[0] != "k" {
		t.Errorf("Expected vim-style Up key without a tui section, got %v", keys)
	}
}

func TestLoad_PresetSelection(t *testing.T) {
	tests := []struct {
		preset   string
		expected string // Expected first key for Up
	}{
		{"vim", "k"},
		{"emacs", "ctrl+p"},
		{"arrows", "up"},
		{"", "k"},
		{"unknown", "k"},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			cfg := &config.Config{
				TUI: &config.TUIConfig{
					Preset: tt.preset,
				},
			}
			km := Load(cfg)

			keys := km.Up.Keys()
			if len(keys) < 1 || keys[0] != tt.expected {
				t.Errorf("Preset %q: expected Up=%q, got %v", tt.preset, tt.expected, keys)
			}
		})
	}
}

func TestLoad_SectionOverrides(t *testing.T) {
	cfg := &config.Config{
		TUI: &config.TUIConfig{
			Preset: "vim",
			Keybindings: &config.KeybindingsConfig{
				Navigation: config.KeybindingSectionConfig{
					"up":   {"w"},
					"down": {"s"},
				},
				Fold: config.KeybindingSectionConfig{
					"toggle":   {"tab"},
					"open_all": {"O"},
				},
				System: config.KeybindingSectionConfig{
					"quit": {"Q", "ctrl+c"},
				},
			},
		},
	}

	km := Load(cfg)

	if keys := km.Up.Keys(); len(keys) != 1 || keys[0] != "w" {
		t.Errorf("Expected Up='w', got %v", keys)
	}
	if keys := km.Down.Keys(); len(keys) != 1 || keys[0] != "s" {
		t.Errorf("Expected Down='s', got %v", keys)
	}
	if keys := km.Toggle.Keys(); len(keys) != 1 || keys[0] != "tab" {
		t.Errorf("Expected Toggle='tab', got %v", keys)
	}
	if keys := km.OpenAll.Keys(); len(keys) != 1 || keys[0] != "O" {
		t.Errorf("Expected OpenAll='O', got %v", keys)
	}
	if keys := km.Quit.Keys(); len(keys) != 2 || keys[0] != "Q" {
		t.Errorf("Expected Quit=[Q ctrl+c], got %v", keys)
	}
	if desc := km.Toggle.Help().Desc; desc != "toggle category" {
		t.Errorf("override should keep the help description, got %q", desc)
	}

	// Untouched bindings keep the preset keys.
	if keys := km.CloseAll.Keys(); len(keys) != 1 || keys[0] != "zM" {
		t.Errorf("Expected CloseAll='zM' (unchanged), got %v", keys)
	}
}

func TestLoad_OverridesStayInTheirSection(t *testing.T) {
	// "up" under fold names no fold action and must not touch navigation.
	cfg := &config.Config{
		TUI: &config.TUIConfig{
			Keybindings: &config.KeybindingsConfig{
				Fold: config.KeybindingSectionConfig{"up": {"x"}},
			},
		},
	}

	km := Load(cfg)
	if keys := km.Up.Keys(); len(keys) < 1 || keys[0] != "k" {
		t.Errorf("Expected Up unchanged, got %v", keys)
	}
}

func TestSections(t *testing.T) {
	km := DefaultVim()
	sections := km.Sections()

	names := []string{SectionNavigation, SectionSearch, SectionFold, SectionSystem}
	if len(sections) != len(names) {
		t.Fatalf("expected %d sections, got %d", len(names), len(sections))
	}
	total := 0
	for i, s := range sections {
		if s.Name != names[i] {
			t.Errorf("section %d: name = %q, want %q", i, s.Name, names[i])
		}
		if s.IsEmpty() {
			t.Errorf("section %q has no enabled bindings", s.Name)
		}
		total += len(s.Bindings)
	}
	if total != 14 {
		t.Errorf("expected 14 bindings across sections, got %d", total)
	}

	full := km.FullHelp()
	if len(full) != len(sections) {
		t.Errorf("FullHelp should have one column per section, got %d", len(full))
	}
}

func TestSectionWith(t *testing.T) {
	km := DefaultVim()
	s := SystemSection(km.Help)
	extended := s.With(km.Quit)

	if len(s.Bindings) != 1 {
		t.Errorf("With must not modify the receiver, got %d bindings", len(s.Bindings))
	}
	if len(extended.Bindings) != 2 || extended.Name != SectionSystem {
		t.Errorf("unexpected extended section: %+v", extended)
	}

	disabled := km.Help
	disabled.SetEnabled(false)
	if got := NewSection("x", disabled, km.Quit).FilterEnabled(); len(got) != 1 {
		t.Errorf("FilterEnabled should drop disabled bindings, got %d", len(got))
	}
}

func TestMakeInfo(t *testing.T) {
	info := MakeInfo(PresetVim, DefaultVim())

	if info.Preset != "vim" {
		t.Errorf("Preset = %q", info.Preset)
	}
	if len(info.Sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(info.Sections))
	}

	fold := info.Sections[2]
	want := map[string]string{
		"toggle category": "tui.keybindings.fold.toggle",
		"expand all":      "tui.keybindings.fold.open_all",
		"collapse all":    "tui.keybindings.fold.close_all",
	}
	for _, b := range fold.Bindings {
		if b.ConfigKey != want[b.Description] {
			t.Errorf("%q: ConfigKey = %q, want %q", b.Description, b.ConfigKey, want[b.Description])
		}
	}

	search := info.Sections[1]
	if search.Bindings[1].ConfigKey != "tui.keybindings.search.clear_search" {
		t.Errorf("ClearSearch ConfigKey = %q", search.Bindings[1].ConfigKey)
	}
}
