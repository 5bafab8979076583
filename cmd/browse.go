package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/grovetools/twguide/cli"
	"github.com/grovetools/twguide/config"
	"github.com/grovetools/twguide/errors"
	"github.com/grovetools/twguide/logging"
	"github.com/grovetools/twguide/state"
	"github.com/grovetools/twguide/tui"
	"github.com/grovetools/twguide/tui/guide"
	"github.com/grovetools/twguide/tui/keymap"
)

// NewBrowseCmd creates the `browse` command.
func NewBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive class guide",
		Long: `Opens the interactive guide. Press / to search, enter to fold a
category and ? for every key.

Examples:
  twguide browse
  twguide browse --search bg- --expand-all`,
		Args: cobra.NoArgs,
		RunE: runBrowseE,
	}
	addBrowseFlags(cmd)
	return cmd
}

func addBrowseFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("search", "s", "", "Initial search text")
	cmd.Flags().BoolP("expand-all", "e", false, "Start with every category expanded")
}

func runBrowseE(cmd *cobra.Command, args []string) error {
	rt, err := cli.Bootstrap(cmd)
	if err != nil {
		return err
	}
	search, _ := cmd.Flags().GetString("search")
	expandAll, _ := cmd.Flags().GetBool("expand-all")

	sess := newSession(rt, search, expandAll)
	model := guide.New(sess, guideOptions(rt.Config))

	tui.InitializeTUI()
	restore := logging.SuppressStderr()
	defer restore()

	rt.Logger.WithField("search", search).Debug("Starting guide")
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "guide exited with an error")
	}
	return nil
}

// newSession starts a session with the configured categories expanded.
// expandAll expands every category of the catalog, not only those matching
// the initial search, so clearing the search keeps them open.
func newSession(rt *cli.Runtime, search string, expandAll bool) *state.Session {
	var opts []state.Option
	if rt.Config != nil && rt.Config.TUI != nil && len(rt.Config.TUI.Expand) > 0 {
		opts = append(opts, state.WithInitialExpansion(rt.Config.TUI.Expand...))
	}
	if expandAll {
		opts = append(opts, state.WithInitialExpansion(rt.Catalog.Names()...))
	}
	if search != "" {
		opts = append(opts, state.WithSearchText(search))
	}
	return state.NewSession(rt.Catalog, opts...)
}

func guideOptions(cfg *config.Config) guide.Options {
	return guide.Options{
		Keys:           keymap.Load(cfg),
		ShowExamples:   cfg.ExamplesEnabled(),
		HighlightStyle: highlightStyle(cfg),
	}
}

func highlightStyle(cfg *config.Config) string {
	if cfg == nil || cfg.TUI == nil {
		return ""
	}
	return cfg.TUI.HighlightStyle
}

func presetName(cfg *config.Config) string {
	if cfg == nil || cfg.TUI == nil || cfg.TUI.Preset == "" {
		return keymap.PresetVim
	}
	return cfg.TUI.Preset
}
