// SPDX-License-Identifier: GPL-3.0-or-later

// Package config models the version-upper.json document: the current
// version pair plus the ordered list of tracked targets.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// DefaultFileName is the config file name used when --config is not given
const DefaultFileName = "version-upper.json"

// Placeholder marks where the version value sits inside a search
// pattern template. A template must contain it exactly once.
const Placeholder = "{current_version}"

// Config is the configuration file schema
type Config struct {
	// CurrentVersion is either a strict semantic version with an
	// optional rcN suffix, or a 40 character commit hash
	CurrentVersion string `json:"current_version" validate:"required,version" jsonschema:"default=0.0.0,example=0.0.0,example=0.0.0rc1,example=57fabefae989244d87b562cc4fd576fb5e4e6933,description=The current version"`

	// CurrentSemanticVersion is a strict major.minor.patch triple and
	// never carries an rc suffix
	CurrentSemanticVersion string `json:"current_semantic_version" validate:"required,semantic" jsonschema:"default=0.0.0,description=The current semantic version"`

	// Files lists the tracked targets in insertion order. Order is not
	// semantically significant but round-trips unchanged.
	Files []Target `json:"files" jsonschema:"description=Files and directories wherein version strings will be updated. Directories are searched recursively."`
}

// Default returns the sample configuration document
func Default() *Config {
	return &Config{
		CurrentVersion:         "0.0.0",
		CurrentSemanticVersion: "0.0.0",
		Files:                  []Target{},
	}
}

// validate is the shared validator instance with the version rules
// registered
var validate *validator.Validate

func init() {
	validate = validator.New()

	// rule names match the json field they guard
	_ = validate.RegisterValidation("version", validateVersion)
	_ = validate.RegisterValidation("semantic", validateSemantic)
}

func validateVersion(fl validator.FieldLevel) bool {
	return versionPattern.MatchString(fl.Field().String())
}

func validateSemantic(fl validator.FieldLevel) bool {
	return semanticPattern.MatchString(fl.Field().String())
}

// Load reads and validates the config document at path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("could not open config file %s: %w", path, err)
	}

	cfg := &Config{}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the structural and regex constraints on the document
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}

	for _, t := range c.Files {
		if err := t.validate(); err != nil {
			return err
		}
	}

	return nil
}

// Save overwrites the whole document at path. The caller is expected to
// have rewritten every tracked file first; the config is persisted last.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")

	if err != nil {
		return err
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("could not write config file %s: %w", path, err)
	}

	return nil
}

// Sample renders the default config document
func Sample() ([]byte, error) {
	return json.MarshalIndent(Default(), "", "  ")
}
