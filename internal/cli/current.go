// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hkiang01/version-upper/pkg/config"
)

func newCurrentVersion(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "current-version",
		Short: "Prints the current version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)

			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cfg.CurrentVersion)

			return nil
		},
	}
}

func newCurrentSemanticVersion(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "current-semantic-version",
		Short: "Prints the current semantic version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)

			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cfg.CurrentSemanticVersion)

			return nil
		},
	}
}
