// SPDX-License-Identifier: GPL-3.0-or-later

package replace

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hkiang01/version-upper/internal/logger"
	"github.com/hkiang01/version-upper/pkg/config"
)

// Engine rewrites every tracked target from the config's current
// version to a new value, then persists the updated config.
//
// Targets are processed in config order with a read-locate-write pass
// per target. There is no staging or temp-file protocol: a failure
// partway through leaves targets earlier in the list already rewritten
// while the config file stays untouched, since the config is always
// written last.
type Engine struct {
	configPath string
	cfg        *config.Config
	log        logger.Logger
}

// NewEngine returns an engine bound to the config document at
// configPath
func NewEngine(configPath string, cfg *config.Config) *Engine {
	return &Engine{
		configPath: configPath,
		cfg:        cfg,
		log:        logger.New(),
	}
}

// Apply rewrites all targets from the config's current version to
// newVersion and persists the config. An empty newSemantic leaves
// current_semantic_version unchanged (the commit hash case).
func (e *Engine) Apply(newVersion, newSemantic string) error {
	oldVersion := e.cfg.CurrentVersion

	for _, target := range e.cfg.Files {
		if target.Pattern != "" {
			if err := e.applyPattern(target, newVersion); err != nil {
				return err
			}

			continue
		}

		files, err := expand(target.Path)

		if err != nil {
			return err
		}

		for _, file := range files {
			if err := e.applyPlain(file, oldVersion, newVersion); err != nil {
				return err
			}
		}
	}

	e.cfg.CurrentVersion = newVersion

	if newSemantic != "" {
		e.cfg.CurrentSemanticVersion = newSemantic
	}

	return e.cfg.Save(e.configPath)
}

// applyPlain replaces every occurrence of the exact old value
func (e *Engine) applyPlain(path, oldVersion, newVersion string) error {
	data, err := os.ReadFile(path)

	if err != nil {
		return fmt.Errorf("could not read tracked file: %w", err)
	}

	content := string(data)

	if !strings.Contains(content, oldVersion) {
		return &VersionNotFoundError{Version: oldVersion, Path: path}
	}

	content = strings.ReplaceAll(content, oldVersion, newVersion)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("could not write tracked file: %w", err)
	}

	e.log.Debug().
		Str("file", path).
		Str("old", oldVersion).
		Str("new", newVersion).
		Msg("updated version string")

	return nil
}

// applyPattern replaces the value captured by the target's search
// pattern template
func (e *Engine) applyPattern(target config.Target, newVersion string) error {
	matcher, err := NewPatternMatcher(target.Pattern)

	if err != nil {
		return err
	}

	data, err := os.ReadFile(target.Path)

	if err != nil {
		return fmt.Errorf("could not read tracked file: %w", err)
	}

	content, replaced := matcher.Apply(string(data), newVersion)

	if !replaced {
		return &VersionNotFoundError{Version: e.cfg.CurrentVersion, Path: target.Path}
	}

	if err := os.WriteFile(target.Path, []byte(content), 0644); err != nil {
		return fmt.Errorf("could not write tracked file: %w", err)
	}

	e.log.Debug().
		Str("file", target.Path).
		Str("new", newVersion).
		Msg("updated version string")

	return nil
}

// expand resolves a plain target path into the files it covers.
// Directories are searched recursively; every regular file found is
// treated as a tracked file.
func expand(path string) ([]string, error) {
	info, err := os.Stat(path)

	if err != nil {
		return nil, fmt.Errorf("could not resolve tracked path: %w", err)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	files := []string{}

	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.Type().IsRegular() {
			files = append(files, p)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("could not walk tracked directory %s: %w", path, err)
	}

	return files, nil
}
