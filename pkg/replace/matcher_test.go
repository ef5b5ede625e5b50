// SPDX-License-Identifier: GPL-3.0-or-later

package replace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hkiang01/version-upper/pkg/replace"
)

func TestNewPatternMatcher(t *testing.T) {
	t.Run("compiles a template with one placeholder", func(st *testing.T) {
		matcher, err := replace.NewPatternMatcher("version: {current_version}")

		assert.NoError(st, err)
		assert.NotNil(st, matcher)
	})

	t.Run("rejects templates without placeholder", func(st *testing.T) {
		_, err := replace.NewPatternMatcher("version: 1.2.3")

		assert.Error(st, err)
		assert.Contains(st, err.Error(), "exactly once")
	})

	t.Run("rejects templates with two placeholders", func(st *testing.T) {
		_, err := replace.NewPatternMatcher("{current_version} {current_version}")

		assert.Error(st, err)
		assert.Contains(st, err.Error(), "exactly once")
	})

	t.Run("rejects templates that do not compile as regex", func(st *testing.T) {
		// non-placeholder template text is a regex fragment, so a stray
		// bracket is a construction failure, not a literal character
		_, err := replace.NewPatternMatcher("version [ {current_version}")

		assert.Error(st, err)
	})
}

func TestPatternMatcherApply(t *testing.T) {
	t.Run("replaces the captured span only", func(st *testing.T) {
		matcher, err := replace.NewPatternMatcher("version: {current_version}")

		assert.NoError(st, err)

		content, replaced := matcher.Apply("name: chart\nversion: 1.2.3\n", "1.3.0")

		assert.True(st, replaced)
		assert.Equal(st, "name: chart\nversion: 1.3.0\n", content)
	})

	t.Run("replaces every matching occurrence", func(st *testing.T) {
		matcher, err := replace.NewPatternMatcher("v={current_version}")

		assert.NoError(st, err)

		content, replaced := matcher.Apply("v=1.2.3 and v=1.2.3rc4", "2.0.0")

		assert.True(st, replaced)
		assert.Equal(st, "v=2.0.0 and v=2.0.0", content)
	})

	t.Run("matches commit hash values", func(st *testing.T) {
		matcher, err := replace.NewPatternMatcher("image: app:{current_version}")

		assert.NoError(st, err)

		content, replaced := matcher.Apply(
			"image: app:ae0788689030389e4be2654ad64ba983ba0b71c7",
			"1.0.0",
		)

		assert.True(st, replaced)
		assert.Equal(st, "image: app:1.0.0", content)
	})

	t.Run("is a no-op once the value is current", func(st *testing.T) {
		matcher, err := replace.NewPatternMatcher("version: {current_version}")

		assert.NoError(st, err)

		content, replaced := matcher.Apply("version: 1.3.0\n", "1.3.0")

		assert.False(st, replaced)
		assert.Equal(st, "version: 1.3.0\n", content)
	})

	t.Run("leaves values outside the pattern alone", func(st *testing.T) {
		matcher, err := replace.NewPatternMatcher("appVersion: {current_version}")

		assert.NoError(st, err)

		content, replaced := matcher.Apply("version: 1.2.3\nappVersion: 1.2.3\n", "9.9.9")

		assert.True(st, replaced)
		assert.Equal(st, "version: 1.2.3\nappVersion: 9.9.9\n", content)
	})
}

func TestVersionNotFoundError(t *testing.T) {
	t.Run("names the missing value and the file", func(st *testing.T) {
		err := &replace.VersionNotFoundError{Version: "0.0.0", Path: "f.txt"}

		assert.Equal(st, "Unable to find 0.0.0 in f.txt", err.Error())
	})
}
