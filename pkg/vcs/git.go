// SPDX-License-Identifier: GPL-3.0-or-later

package vcs

import (
	"fmt"
	"os/exec"
	"strings"
)

// Git implementation of the SourceControl interface using the git
// executable
type Git struct {
	// Dir optionally pins the repository directory; empty means the
	// process working directory
	Dir string
}

// NewGit returns a new instance of Git
func NewGit() *Git {
	return &Git{}
}

// LatestCommitHash implements SourceControl using git log
func (g *Git) LatestCommitHash() (string, error) {
	cmd := exec.Command("git", "log", "-n1", "--format=format:%H")
	cmd.Dir = g.Dir

	out, err := cmd.Output()

	if err != nil {
		return "", fmt.Errorf("could not read latest commit hash: %w", err)
	}

	return strings.TrimSpace(string(out)), nil
}
