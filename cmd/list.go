package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/grovetools/twguide/catalog"
	"github.com/grovetools/twguide/cli"
	"github.com/grovetools/twguide/tui/guide"
)

// NewListCmd creates the `list` command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the class guide without the interactive UI",
		Long: `Prints the guide as the interactive view would draw it. Categories are
collapsed unless configured otherwise or --expand-all is given.

Examples:
  # Every class matching "rounded"
  twguide list --search rounded --expand-all

  # Only the Spacing and Sizing categories
  twguide list --only 'Spacing/*' --only 'Sizing/*' -e

  # Matching categories as JSON
  twguide list --search flex --json`,
		Args: cobra.NoArgs,
		RunE: runListE,
	}

	cmd.Flags().StringP("search", "s", "", "Search text matched against class names and descriptions")
	cmd.Flags().StringArray("only", nil, "Keep only Category/Subcategory paths matching this glob (repeatable)")
	cmd.Flags().BoolP("expand-all", "e", false, "Expand every listed category")
	cmd.Flags().Bool("no-examples", false, "Omit example markup")

	return cmd
}

func runListE(cmd *cobra.Command, args []string) error {
	rt, err := cli.Bootstrap(cmd)
	if err != nil {
		return err
	}
	search, _ := cmd.Flags().GetString("search")
	only, _ := cmd.Flags().GetStringArray("only")
	expandAll, _ := cmd.Flags().GetBool("expand-all")
	noExamples, _ := cmd.Flags().GetBool("no-examples")

	cat, err := catalog.Select(rt.Catalog, only...)
	if err != nil {
		return err
	}
	rt.Catalog = cat

	sess := newSession(rt, search, false)
	view := sess.View()
	if expandAll {
		view = sess.OnExpandAll()
	}
	out := cmd.OutOrStdout()

	if rt.Options.JSONOutput {
		data, err := catalog.Marshal(view.Filtered, catalog.FormatJSON)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	opts := guide.RenderOptions{
		Cursor:         -1,
		ShowExamples:   rt.Config.ExamplesEnabled() && !noExamples,
		Source:         cat,
		MaxSuggestions: guide.DefaultSuggestions,
	}
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil {
			opts.Width = width
		}
		opts.Highlighter = guide.NewHighlighter(highlightStyle(rt.Config))
	}

	rt.Logger.WithField("retained", view.Filtered.Stats().Entries).Debug("Listing classes")
	fmt.Fprintln(out, guide.RenderHeader(nil))
	fmt.Fprintln(out)
	fmt.Fprintln(out, guide.Render(view, opts))
	return nil
}
