// SPDX-License-Identifier: GPL-3.0-or-later

// Package vcs provides the source control collaborator used when
// stamping files with the latest revision identifier.
package vcs

//go:generate mockgen -destination=../../mock/vcs/vcs.go -package=mock_vcs . SourceControl

// SourceControl interface representing a source control system
type SourceControl interface {
	// LatestCommitHash returns the 40 character hex identifier of the
	// most recent revision
	LatestCommitHash() (string, error)
}
