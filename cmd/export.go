package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grovetools/twguide/catalog"
	"github.com/grovetools/twguide/cli"
	"github.com/grovetools/twguide/errors"
	"github.com/grovetools/twguide/tui/theme"
)

// NewExportCmd creates the `export` command.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog as YAML, TOML or JSON",
		Long: `Writes the catalog, optionally narrowed by a search, in a format that the
catalog config key can load back.

Examples:
  # Start a custom catalog from the built-in one
  twguide export --format yaml -o my-classes.yml

  # Only the border classes, as TOML
  twguide export --format toml --search border`,
		Args: cobra.NoArgs,
		RunE: runExportE,
	}

	cmd.Flags().StringP("format", "f", string(catalog.FormatYAML), "Output format: yaml, toml, json")
	cmd.Flags().StringP("search", "s", "", "Export only classes matching this text")
	cmd.Flags().StringArray("only", nil, "Keep only Category/Subcategory paths matching this glob (repeatable)")
	cmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")

	return cmd
}

func runExportE(cmd *cobra.Command, args []string) error {
	rt, err := cli.Bootstrap(cmd)
	if err != nil {
		return err
	}
	formatName, _ := cmd.Flags().GetString("format")
	search, _ := cmd.Flags().GetString("search")
	only, _ := cmd.Flags().GetStringArray("only")
	output, _ := cmd.Flags().GetString("output")

	if rt.Options.JSONOutput {
		formatName = string(catalog.FormatJSON)
	}
	format, err := catalog.ParseFormat(formatName)
	if err != nil {
		return err
	}

	cat, err := catalog.Select(rt.Catalog, only...)
	if err != nil {
		return err
	}
	data, err := catalog.Marshal(catalog.Filter(cat, search), format)
	if err != nil {
		return err
	}

	if output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to write export").WithDetail("path", output)
	}
	rt.Logger.WithField("path", output).Debug("Catalog exported")
	fmt.Fprintln(cmd.ErrOrStderr(), theme.RenderStatus("success", fmt.Sprintf("%s Wrote %s catalog to %s", theme.IconSuccess, format, output)))
	return nil
}
