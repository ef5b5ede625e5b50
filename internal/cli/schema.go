// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hkiang01/version-upper/pkg/config"
)

// config-schema and sample-config work without a config file present

func newConfigSchema() *cobra.Command {
	return &cobra.Command{
		Use:   "config-schema",
		Short: "Prints the config schema in JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := config.Schema()

			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(schema))

			return nil
		},
	}
}

func newSampleConfig() *cobra.Command {
	return &cobra.Command{
		Use:   "sample-config",
		Short: "Prints a sample config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sample, err := config.Sample()

			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(sample))

			return nil
		},
	}
}
