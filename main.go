// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hkiang01/version-upper/internal/cli"
	"github.com/hkiang01/version-upper/pkg/vcs"
)

func main() {
	cmd := cli.Root(vcs.NewGit())

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		if errors.Is(err, cli.ErrUsage) {
			os.Exit(2)
		}

		os.Exit(1)
	}
}
