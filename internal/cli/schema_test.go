// SPDX-License-Identifier: GPL-3.0-or-later

package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hkiang01/version-upper/pkg/config"
)

func TestConfigSchemaCommand(t *testing.T) {
	t.Run("prints the schema without requiring a config file", func(st *testing.T) {
		out, err := runCommand(st, nil, "--config", "does-not-exist.json", "config-schema")

		assert.NoError(st, err)

		decoded := map[string]interface{}{}

		assert.NoError(st, json.Unmarshal([]byte(out), &decoded))

		properties, ok := decoded["properties"].(map[string]interface{})

		assert.True(st, ok)
		assert.Contains(st, properties, "current_version")
		assert.Contains(st, properties, "files")
	})
}

func TestSampleConfigCommand(t *testing.T) {
	t.Run("prints a document that validates", func(st *testing.T) {
		out, err := runCommand(st, nil, "--config", "does-not-exist.json", "sample-config")

		assert.NoError(st, err)

		cfg := &config.Config{}

		assert.NoError(st, json.Unmarshal([]byte(out), cfg))
		assert.NoError(st, cfg.Validate())
	})
}
