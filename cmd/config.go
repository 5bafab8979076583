package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/twguide/cli"
	"github.com/grovetools/twguide/config"
)

// NewConfigCmd creates the `config` command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the twguide configuration",
	}
	cmd.AddCommand(newConfigSchemaCmd())
	cmd.AddCommand(newConfigShowCmd())
	return cmd
}

func newConfigSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of twguide.yml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.GenerateSchema()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display the layered configuration for the current directory",
		Long: `Shows how the effective configuration is built by merging layers:
1. Global config ($XDG_CONFIG_HOME/twguide/twguide.yml)
2. Project config (twguide.yml in this directory or a parent)
An explicit --config file replaces both.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			out := cmd.OutOrStdout()

			if opts.ConfigFile != "" {
				cfg, err := config.Load(opts.ConfigFile)
				if err != nil {
					return err
				}
				if opts.JSONOutput {
					return writeJSON(out, cfg)
				}
				printLayer(out, "EXPLICIT CONFIG", opts.ConfigFile, cfg)
				return nil
			}

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}
			layered, err := config.LoadLayered(cwd)
			if err != nil {
				return err
			}

			if opts.JSONOutput {
				return writeJSON(out, layered.Final)
			}
			printLayer(out, "GLOBAL CONFIG", layered.FilePaths[config.SourceGlobal], layered.Global)
			printLayer(out, "PROJECT CONFIG", layered.FilePaths[config.SourceProject], layered.Project)
			printLayer(out, "FINAL MERGED CONFIG", "", layered.Final)
			return nil
		},
	}
}

func printLayer(w io.Writer, title, path string, cfg *config.Config) {
	if cfg == nil {
		return
	}
	fmt.Fprintf(w, "--- # %s\n", title)
	if path != "" {
		fmt.Fprintf(w, "# Source: %s\n", path)
	}
	data, _ := yaml.Marshal(cfg)
	fmt.Fprintln(w, string(data))
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(data))
	return nil
}
