// SPDX-License-Identifier: GPL-3.0-or-later

// Package replace locates the current version value inside tracked
// files and rewrites it, either by exact substring substitution or by
// matching a user supplied search pattern template.
package replace

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hkiang01/version-upper/pkg/config"
)

// valueGroup recognizes the two shapes a version value can take: a
// semantic version with an optional rc suffix, or a 40 hex digit
// commit hash.
const valueGroup = `((?:\d+\.\d+\.\d+(?:rc\d+)?)|[a-f\d]{40})`

// VersionNotFoundError indicates a tracked file no longer carries the
// version value the config claims it does
type VersionNotFoundError struct {
	Version string
	Path    string
}

func (e *VersionNotFoundError) Error() string {
	return fmt.Sprintf("Unable to find %s in %s", e.Version, e.Path)
}

// PatternMatcher substitutes version values located by a search pattern
// template. The template text around the placeholder is compiled as a
// regular expression fragment without escaping, so template authors are
// responsible for escaping metacharacters themselves.
type PatternMatcher struct {
	re *regexp.Regexp
}

// NewPatternMatcher compiles the template. The template must contain
// config.Placeholder exactly once.
func NewPatternMatcher(template string) (*PatternMatcher, error) {
	if strings.Count(template, config.Placeholder) != 1 {
		return nil, fmt.Errorf(
			"search pattern %q must contain %s exactly once",
			template,
			config.Placeholder,
		)
	}

	re, err := regexp.Compile(strings.Replace(template, config.Placeholder, valueGroup, 1))

	if err != nil {
		return nil, fmt.Errorf("search pattern %q does not compile: %w", template, err)
	}

	return &PatternMatcher{re: re}, nil
}

// Apply splices newVersion into every span the template's capture group
// matches. Each substitution rescans the mutated content from the top;
// the loop ends once no remaining match captures a value different from
// newVersion, which also makes a second Apply a no-op. Returns the
// rewritten content and whether anything changed.
func (m *PatternMatcher) Apply(content, newVersion string) (string, bool) {
	replaced := false

	for {
		found := false

		for _, loc := range m.re.FindAllStringSubmatchIndex(content, -1) {
			value := content[loc[2]:loc[3]]

			if value == newVersion {
				continue
			}

			content = content[:loc[2]] + newVersion + content[loc[3]:]
			found = true
			replaced = true

			break
		}

		if !found {
			return content, replaced
		}
	}
}
