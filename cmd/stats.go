package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/grovetools/twguide/catalog"
	"github.com/grovetools/twguide/cli"
	"github.com/grovetools/twguide/tui/components/table"
	"github.com/grovetools/twguide/tui/theme"
)

// CategoryStats is one row of `twguide stats`.
type CategoryStats struct {
	Name          string `json:"name"`
	Subcategories int    `json:"subcategories"`
	Entries       int    `json:"entries"`
}

// StatsReport is the JSON form of `twguide stats`.
type StatsReport struct {
	catalog.Stats
	Categories []CategoryStats `json:"by_category"`
}

// NewStatsCmd creates the `stats` command.
func NewStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Count the categories, subcategories and classes in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := cli.Bootstrap(cmd)
			if err != nil {
				return err
			}
			search, _ := cmd.Flags().GetString("search")
			report := buildStatsReport(catalog.Filter(rt.Catalog, search))

			if rt.Options.JSONOutput {
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			writeStatsTable(cmd.OutOrStdout(), report, theme.DefaultTheme)
			return nil
		},
	}
	cmd.Flags().StringP("search", "s", "", "Count only classes matching this text")
	return cmd
}

func buildStatsReport(c *catalog.Catalog) StatsReport {
	report := StatsReport{
		Stats:      c.Stats(),
		Categories: []CategoryStats{},
	}
	for _, cat := range c.Categories() {
		report.Categories = append(report.Categories, CategoryStats{
			Name:          cat.Name,
			Subcategories: len(cat.Subcategories),
			Entries:       cat.Len(),
		})
	}
	return report
}

func writeStatsTable(w io.Writer, report StatsReport, t *theme.Theme) {
	b := table.NewBuilder().
		WithTheme(t).
		WithHeaders("CATEGORY", "SUBCATEGORIES", "CLASSES").
		WithRightAligned(1, 2)
	for _, c := range report.Categories {
		b.WithRows([]string{c.Name, strconv.Itoa(c.Subcategories), strconv.Itoa(c.Entries)})
	}
	fmt.Fprintln(w, b.String())
	fmt.Fprintln(w, table.KeyValueTable(t, [][2]string{
		{"categories", strconv.Itoa(report.Stats.Categories)},
		{"subcategories", strconv.Itoa(report.Stats.Subcategories)},
		{"classes", strconv.Itoa(report.Stats.Entries)},
	}))
}
