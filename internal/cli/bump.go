// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"github.com/spf13/cobra"

	"github.com/hkiang01/version-upper/internal/logger"
	"github.com/hkiang01/version-upper/pkg/config"
	"github.com/hkiang01/version-upper/pkg/replace"
	"github.com/hkiang01/version-upper/pkg/semver"
	"github.com/hkiang01/version-upper/pkg/vcs"
)

func newBump(configPath *string, sc vcs.SourceControl) *cobra.Command {
	var releaseCandidate bool

	cmd := &cobra.Command{
		Use:   "bump [major|minor|patch|rc|commit_hash]",
		Short: "Bumps version strings and updates the config",
		Long: `Bumps version strings in every tracked file and updates the config.

major, minor, and patch advance the corresponding slot of the semantic
version. rc appends or increments a release candidate suffix without
touching the semantic version. commit_hash stamps files with the latest
revision identifier instead of a semantic version.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageError("bump requires exactly one part argument")
			}

			if _, err := semver.ParsePart(args[0]); err != nil {
				return usageError("%v", err)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			part, err := semver.ParsePart(args[0])

			if err != nil {
				return usageError("%v", err)
			}

			if releaseCandidate && (part == semver.PartRC || part == semver.PartCommitHash) {
				return usageError("cannot use --release-candidate when bumping %s", part)
			}

			cfg, err := config.Load(*configPath)

			if err != nil {
				return err
			}

			engine := replace.NewEngine(*configPath, cfg)
			log := logger.New()

			if part == semver.PartCommitHash {
				hash, err := sc.LatestCommitHash()

				if err != nil {
					return err
				}

				// semantic version is deliberately left alone
				if err := engine.Apply(hash, ""); err != nil {
					return err
				}

				log.Info().Str("version", hash).Msg("bumped version")

				return nil
			}

			newVersion, newSemantic, err := semver.Next(
				cfg.CurrentVersion,
				cfg.CurrentSemanticVersion,
				part,
				releaseCandidate,
			)

			if err != nil {
				return err
			}

			if err := engine.Apply(newVersion, newSemantic); err != nil {
				return err
			}

			log.Info().
				Str("version", newVersion).
				Str("semantic", newSemantic).
				Msg("bumped version")

			return nil
		},
	}

	cmd.Flags().BoolVar(
		&releaseCandidate,
		"release-candidate",
		false,
		"designate the bumped semantic version as a release candidate",
	)

	return cmd
}
