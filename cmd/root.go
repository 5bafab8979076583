package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grovetools/twguide/cli"
	"github.com/grovetools/twguide/tui/keymap"
	"github.com/grovetools/twguide/tui/theme"
	"github.com/grovetools/twguide/version"
)

// NewRootCmd creates the twguide command tree. Without a subcommand it
// opens the interactive guide.
func NewRootCmd() *cobra.Command {
	rootCmd := cli.NewStandardCommand(
		"twguide",
		"Browse and search Tailwind CSS utility classes from the terminal",
	)
	rootCmd.Long = `Browse and search Tailwind CSS utility classes from the terminal.

Classes are grouped by category and subcategory. Searching matches class
names and descriptions without regard to case.

Examples:
  # Open the interactive guide
  twguide

  # Start with a search and every matching category expanded
  twguide --search flex --expand-all

  # Print the spacing classes
  twguide list --only 'Spacing/*' --expand-all`
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = runBrowseE
	addBrowseFlags(rootCmd)

	rootCmd.AddCommand(NewBrowseCmd())
	rootCmd.AddCommand(NewListCmd())
	rootCmd.AddCommand(NewExportCmd())
	rootCmd.AddCommand(NewStatsCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewKeysCmd())
	rootCmd.AddCommand(cli.NewVersionCommand("twguide"))

	cli.SetVersionTemplate(rootCmd, version.GetInfo())
	cli.ApplyStyledHelpRecursive(rootCmd)
	cli.SetStyledHelpWithExtras(rootCmd, rootHelpExtras)

	return rootCmd
}

func rootHelpExtras(w io.Writer, t *theme.Theme) {
	fmt.Fprintln(w, "\n "+t.Subtitle.Render("THEMES"))
	fmt.Fprintln(w, " "+strings.Join(theme.Names(), ", "))
	fmt.Fprintln(w, "\n "+t.Subtitle.Render("KEY PRESETS"))
	fmt.Fprintln(w, " "+strings.Join([]string{keymap.PresetVim, keymap.PresetEmacs, keymap.PresetArrows}, ", "))
}
