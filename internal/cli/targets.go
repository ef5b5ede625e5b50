// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/table"
	"github.com/spf13/cobra"

	"github.com/hkiang01/version-upper/pkg/config"
)

func newTargets(configPath *string) *cobra.Command {
	var printJson bool

	cmd := &cobra.Command{
		Use:   "targets",
		Short: "Lists the tracked targets and the current versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)

			if err != nil {
				return err
			}

			if printJson {
				data, err := json.MarshalIndent(cfg, "", "  ")

				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), string(data))

				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "current version: %s\n", cfg.CurrentVersion)
			fmt.Fprintf(cmd.OutOrStdout(), "current semantic version: %s\n", cfg.CurrentSemanticVersion)

			targetsTable := table.NewWriter()
			targetsTable.SetOutputMirror(cmd.OutOrStdout())
			targetsTable.AppendHeader(table.Row{"PATH", "KIND", "SEARCH PATTERN"})

			for _, t := range cfg.Files {
				targetsTable.AppendRow(table.Row{t.Path, targetKind(t), t.Pattern})
			}

			targetsTable.Render()

			return nil
		},
	}

	cmd.Flags().BoolVar(&printJson, "json", false, "output json instead of table text")

	return cmd
}

// targetKind classifies an entry for display purposes only
func targetKind(t config.Target) string {
	if t.Pattern != "" {
		return "search pattern"
	}

	if info, err := os.Stat(t.Path); err == nil && info.IsDir() {
		return "directory"
	}

	return "file"
}
