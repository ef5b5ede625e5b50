// SPDX-License-Identifier: GPL-3.0-or-later

// Package cli wires the version-upper commands. Commands never mutate
// ambient state: each invocation constructs its own config object from
// the --config file and passes it explicitly through the engine.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hkiang01/version-upper/internal/logger"
	"github.com/hkiang01/version-upper/pkg/config"
	"github.com/hkiang01/version-upper/pkg/vcs"
)

// Root builds the top level version-upper command
func Root(sc vcs.SourceControl) *cobra.Command {
	var configPath string
	var debug bool

	cmd := &cobra.Command{
		Use:   "version-upper",
		Short: "Bump version strings in your repo",
		Long: `A tool to update version strings in files
using semantic versioning and commit hashes.

The config file tracks the current version and the files wherein
version strings are kept in sync. It is named ` + config.DefaultFileName + `
by default; see the config-schema and sample-config commands.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				logger.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultFileName, "config file tracking the current version and files")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageError("%v", err)
	})

	cmd.AddCommand(newBump(&configPath, sc))
	cmd.AddCommand(newRelease(&configPath))
	cmd.AddCommand(newCurrentVersion(&configPath))
	cmd.AddCommand(newCurrentSemanticVersion(&configPath))
	cmd.AddCommand(newConfigSchema())
	cmd.AddCommand(newSampleConfig())
	cmd.AddCommand(newTargets(&configPath))

	return cmd
}
