// Package keymap defines the guide's keybindings, the vim/emacs/arrows
// presets, and how per-section overrides from the config are applied.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/twguide/config"
)

// Preset names accepted by tui.preset.
const (
	PresetVim    = "vim"
	PresetEmacs  = "emacs"
	PresetArrows = "arrows"
)

// NavigationKeys move the header cursor and scroll the viewport.
type NavigationKeys struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
}

// SearchKeys drive the search input.
type SearchKeys struct {
	Search      key.Binding
	ClearSearch key.Binding
	Blur        key.Binding
}

// FoldKeys expand and collapse categories.
type FoldKeys struct {
	Toggle   key.Binding
	OpenAll  key.Binding
	CloseAll key.Binding
}

// SystemKeys are always available.
type SystemKeys struct {
	Help key.Binding
	Quit key.Binding
}

// Base is the full keymap of the guide. Each embedded group corresponds to
// one tui.keybindings section in the config.
type Base struct {
	NavigationKeys
	SearchKeys
	FoldKeys
	SystemKeys
}

// NewBase returns the vim preset.
func NewBase() Base {
	return DefaultVim()
}

// DefaultVim returns vim-style bindings with gg, za, zR and zM sequences.
func DefaultVim() Base {
	return Base{
		NavigationKeys: NavigationKeys{
			Up: key.NewBinding(
				key.WithKeys("k", "up"),
				key.WithHelp("k/↑", "up"),
			),
			Down: key.NewBinding(
				key.WithKeys("j", "down"),
				key.WithHelp("j/↓", "down"),
			),
			PageUp: key.NewBinding(
				key.WithKeys("ctrl+u", "pgup"),
				key.WithHelp("ctrl+u", "page up"),
			),
			PageDown: key.NewBinding(
				key.WithKeys("ctrl+d", "pgdown"),
				key.WithHelp("ctrl+d", "page down"),
			),
			Top: key.NewBinding(
				key.WithKeys("gg", "home"),
				key.WithHelp("gg", "top"),
			),
			Bottom: key.NewBinding(
				key.WithKeys("G", "end"),
				key.WithHelp("G", "bottom"),
			),
		},
		SearchKeys: SearchKeys{
			Search: key.NewBinding(
				key.WithKeys("/"),
				key.WithHelp("/", "search"),
			),
			ClearSearch: key.NewBinding(
				key.WithKeys("ctrl+l"),
				key.WithHelp("ctrl+l", "clear search"),
			),
			Blur: key.NewBinding(
				key.WithKeys("esc"),
				key.WithHelp("esc", "leave search"),
			),
		},
		FoldKeys: FoldKeys{
			Toggle: key.NewBinding(
				key.WithKeys("enter", " ", "space", "za"),
				key.WithHelp("enter/za", "toggle category"),
			),
			OpenAll: key.NewBinding(
				key.WithKeys("zR"),
				key.WithHelp("zR", "expand all"),
			),
			CloseAll: key.NewBinding(
				key.WithKeys("zM"),
				key.WithHelp("zM", "collapse all"),
			),
		},
		SystemKeys: SystemKeys{
			Help: key.NewBinding(
				key.WithKeys("?"),
				key.WithHelp("?", "help"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q", "ctrl+c"),
				key.WithHelp("q", "quit"),
			),
		},
	}
}

// DefaultEmacs returns emacs-style bindings.
func DefaultEmacs() Base {
	km := DefaultVim()
	km.Up = key.NewBinding(
		key.WithKeys("ctrl+p", "up"),
		key.WithHelp("ctrl+p", "up"),
	)
	km.Down = key.NewBinding(
		key.WithKeys("ctrl+n", "down"),
		key.WithHelp("ctrl+n", "down"),
	)
	km.PageUp = key.NewBinding(
		key.WithKeys("alt+v", "pgup"),
		key.WithHelp("alt+v", "page up"),
	)
	km.PageDown = key.NewBinding(
		key.WithKeys("ctrl+v", "pgdown"),
		key.WithHelp("ctrl+v", "page down"),
	)
	km.Top = key.NewBinding(
		key.WithKeys("alt+<", "home"),
		key.WithHelp("alt+<", "top"),
	)
	km.Bottom = key.NewBinding(
		key.WithKeys("alt+>", "end"),
		key.WithHelp("alt+>", "bottom"),
	)
	km.Search = key.NewBinding(
		key.WithKeys("ctrl+s", "/"),
		key.WithHelp("ctrl+s", "search"),
	)
	km.Blur = key.NewBinding(
		key.WithKeys("esc", "ctrl+g"),
		key.WithHelp("ctrl+g", "leave search"),
	)
	km.Toggle = key.NewBinding(
		key.WithKeys("enter", "tab"),
		key.WithHelp("tab", "toggle category"),
	)
	km.OpenAll = key.NewBinding(
		key.WithKeys("alt+o"),
		key.WithHelp("alt+o", "expand all"),
	)
	km.CloseAll = key.NewBinding(
		key.WithKeys("alt+c"),
		key.WithHelp("alt+c", "collapse all"),
	)
	return km
}

// DefaultArrows returns bindings that avoid letter keys for navigation.
func DefaultArrows() Base {
	km := DefaultVim()
	km.Up = key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "up"),
	)
	km.Down = key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "down"),
	)
	km.PageUp = key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	)
	km.PageDown = key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "page down"),
	)
	km.Top = key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "top"),
	)
	km.Bottom = key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("end", "bottom"),
	)
	km.Toggle = key.NewBinding(
		key.WithKeys("enter", " ", "space"),
		key.WithHelp("enter", "toggle category"),
	)
	km.OpenAll = key.NewBinding(
		key.WithKeys("+"),
		key.WithHelp("+", "expand all"),
	)
	km.CloseAll = key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "collapse all"),
	)
	return km
}

// ForPreset returns the named preset. Unknown names fall back to vim.
func ForPreset(name string) Base {
	switch name {
	case PresetEmacs:
		return DefaultEmacs()
	case PresetArrows:
		return DefaultArrows()
	default:
		return DefaultVim()
	}
}

// Load builds the keymap from cfg: the tui.preset selects the base bindings
// and tui.keybindings overrides them section by section. A nil cfg yields the
// vim preset.
func Load(cfg *config.Config) Base {
	if cfg == nil || cfg.TUI == nil {
		return DefaultVim()
	}
	km := ForPreset(cfg.TUI.Preset)
	if kb := cfg.TUI.Keybindings; kb != nil {
		ApplyOverrides(&km.NavigationKeys, kb.Navigation)
		ApplyOverrides(&km.SearchKeys, kb.Search)
		ApplyOverrides(&km.FoldKeys, kb.Fold)
		ApplyOverrides(&km.SystemKeys, kb.System)
	}
	return km
}

// Sections groups the bindings for help rendering and export.
func (k Base) Sections() []Section {
	return []Section{
		NavigationSection(k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom),
		SearchSection(k.Search, k.ClearSearch, k.Blur),
		FoldSection(k.Toggle, k.OpenAll, k.CloseAll),
		SystemSection(k.Help, k.Quit),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k Base) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Toggle, k.OpenAll, k.CloseAll, k.Help, k.Quit}
}

// FullHelp returns every binding, one column per section.
func (k Base) FullHelp() [][]key.Binding {
	sections := k.Sections()
	cols := make([][]key.Binding, 0, len(sections))
	for _, s := range sections {
		cols = append(cols, s.Bindings)
	}
	return cols
}

// SearchingHelp is the footer while the search input has focus.
func (k Base) SearchingHelp() []key.Binding {
	return []key.Binding{k.Blur, k.ClearSearch}
}
