package theme

import (
	"os"

	"github.com/grovetools/twguide/config"
)

// Nerd Font icons
const (
	nerdIconChevronUp   = "\uf077"     // fa-chevron_up
	nerdIconChevronDown = "\uf078"     // fa-chevron_down
	nerdIconSearch      = "\uf002"     // fa-search
	nerdIconCategory    = "\uf07b"     // fa-folder
	nerdIconClass       = "\uf02b"     // fa-tag
	nerdIconSuccess     = "\U000f012c" // md-check
	nerdIconError       = "\uea87"     // cod-error
	nerdIconWarning     = "\uf071"     // fa-warning
	nerdIconInfo        = "\U000f02fc" // md-information
	nerdIconArrow       = "\U000f0054" // md-arrow_right
	nerdIconBullet      = "\uf444"     // oct-dot_fill
)

// ASCII fallback icons
const (
	asciiIconChevronUp   = "^"
	asciiIconChevronDown = "v"
	asciiIconSearch      = "/"
	asciiIconCategory    = "#"
	asciiIconClass       = "."
	asciiIconSuccess     = "+"
	asciiIconError       = "x"
	asciiIconWarning     = "!"
	asciiIconInfo        = "i"
	asciiIconArrow       = ">"
	asciiIconBullet      = "*"
)

// Active icons. Chevron up marks an expanded category, chevron down a
// collapsed one.
var (
	IconChevronUp   string
	IconChevronDown string
	IconSearch      string
	IconCategory    string
	IconClass       string
	IconSuccess     string
	IconError       string
	IconWarning     string
	IconInfo        string
	IconArrow       string
	IconBullet      string
)

func init() {
	useASCIIIcons(wantASCIIIcons(nil))
}

// UseASCIIIcons switches between the Nerd Font and ASCII icon sets.
func UseASCIIIcons(ascii bool) {
	themeMu.Lock()
	defer themeMu.Unlock()
	useASCIIIcons(ascii)
}

func wantASCIIIcons(cfg *config.Config) bool {
	switch os.Getenv("TWGUIDE_ICONS") {
	case "ascii":
		return true
	case "nerd":
		return false
	}
	if cfg == nil {
		loaded, err := config.LoadDefault()
		if err != nil {
			return false
		}
		cfg = loaded
	}
	return cfg.TUI != nil && cfg.TUI.Icons == "ascii"
}

func useASCIIIcons(ascii bool) {
	if ascii {
		IconChevronUp = asciiIconChevronUp
		IconChevronDown = asciiIconChevronDown
		IconSearch = asciiIconSearch
		IconCategory = asciiIconCategory
		IconClass = asciiIconClass
		IconSuccess = asciiIconSuccess
		IconError = asciiIconError
		IconWarning = asciiIconWarning
		IconInfo = asciiIconInfo
		IconArrow = asciiIconArrow
		IconBullet = asciiIconBullet
		return
	}
	IconChevronUp = nerdIconChevronUp
	IconChevronDown = nerdIconChevronDown
	IconSearch = nerdIconSearch
	IconCategory = nerdIconCategory
	IconClass = nerdIconClass
	IconSuccess = nerdIconSuccess
	IconError = nerdIconError
	IconWarning = nerdIconWarning
	IconInfo = nerdIconInfo
	IconArrow = nerdIconArrow
	IconBullet = nerdIconBullet
}
