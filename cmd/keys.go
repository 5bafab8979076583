package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grovetools/twguide/cli"
	"github.com/grovetools/twguide/tui/components/table"
	"github.com/grovetools/twguide/tui/keymap"
	"github.com/grovetools/twguide/tui/theme"
)

// NewKeysCmd creates the `keys` command.
func NewKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the effective key bindings of the guide",
		Long: `Lists every key binding of the interactive guide after the configured
preset and overrides are applied, with the config key that changes it.

Examples:
  twguide keys
  twguide keys --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := cli.Bootstrap(cmd)
			if err != nil {
				return err
			}
			info := keymap.MakeInfo(presetName(rt.Config), keymap.Load(rt.Config))

			if rt.Options.JSONOutput {
				return writeJSON(cmd.OutOrStdout(), info)
			}
			writeKeysTable(cmd.OutOrStdout(), info, theme.DefaultTheme)
			return nil
		},
	}
}

func writeKeysTable(w io.Writer, info keymap.Info, t *theme.Theme) {
	fmt.Fprintln(w, table.KeyValueTable(t, [][2]string{{"preset", info.Preset}}))
	for _, s := range info.Sections {
		b := table.NewBuilder().
			WithTheme(t).
			WithBorder(false).
			WithHeaders("KEYS", "ACTION", "CONFIG KEY")
		for _, binding := range s.Bindings {
			if !binding.Enabled {
				continue
			}
			b.WithRows([]string{strings.Join(binding.Keys, " "), binding.Description, t.Muted.Render(binding.ConfigKey)})
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, t.Subtitle.Render(s.Name))
		fmt.Fprintln(w, b.String())
	}
}
