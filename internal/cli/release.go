// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"github.com/spf13/cobra"

	"github.com/hkiang01/version-upper/internal/logger"
	"github.com/hkiang01/version-upper/pkg/config"
	"github.com/hkiang01/version-upper/pkg/replace"
	"github.com/hkiang01/version-upper/pkg/semver"
)

func newRelease(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "release",
		Short: "Removes rc from the version strings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)

			if err != nil {
				return err
			}

			newVersion, err := semver.Release(cfg.CurrentVersion)

			if err != nil {
				return err
			}

			engine := replace.NewEngine(*configPath, cfg)

			// a release pins both values to the stripped semantic version
			if err := engine.Apply(newVersion, newVersion); err != nil {
				return err
			}

			logger.New().Info().Str("version", newVersion).Msg("released version")

			return nil
		},
	}
}
