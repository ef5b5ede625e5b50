// SPDX-License-Identifier: GPL-3.0-or-later

package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hkiang01/version-upper/internal/cli"
	"github.com/hkiang01/version-upper/internal/logger"
	"github.com/hkiang01/version-upper/pkg/vcs"
)

// runCommand executes version-upper with args and returns captured
// stdout. Log output is redirected to a buffer to keep test output
// quiet.
func runCommand(t *testing.T, sc vcs.SourceControl, args ...string) (string, error) {
	t.Helper()

	logBuf := bytes.NewBuffer([]byte{})
	logger.SetBufferOutput(logBuf)

	defer logger.Reset()

	out := bytes.NewBuffer([]byte{})

	cmd := cli.Root(sc)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

// writeConfigFile writes a config document into dir and returns its path
func writeConfigFile(t *testing.T, dir string, doc map[string]interface{}) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")

	require.NoError(t, err)

	path := filepath.Join(dir, "version-upper.json")

	require.NoError(t, os.WriteFile(path, data, 0644))

	return path
}

// writeTrackedFile writes a tracked file into dir and returns its path
func writeTrackedFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func readFileContent(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)

	require.NoError(t, err)

	return string(data)
}

func loadConfigDoc(t *testing.T, path string) map[string]interface{} {
	t.Helper()

	data, err := os.ReadFile(path)

	require.NoError(t, err)

	doc := map[string]interface{}{}

	require.NoError(t, json.Unmarshal(data, &doc))

	return doc
}
