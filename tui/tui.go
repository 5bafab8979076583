// Package tui holds terminal setup shared by the interactive guide.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// InitializeTUI forces a truecolor lipgloss profile when CLICOLOR_FORCE=1 or
// COLORTERM=truecolor is set, so colors survive when stdout is captured
// (recordings, CI). Without those variables the detected profile is kept.
func InitializeTUI() {
	if os.Getenv("CLICOLOR_FORCE") == "1" || os.Getenv("COLORTERM") == "truecolor" {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}
