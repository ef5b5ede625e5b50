// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/invopop/jsonschema"
)

var (
	versionPattern  = regexp.MustCompile(`^(\d+\.\d+\.\d+(rc\d+)?)$|^[a-f\d]{40}$`)
	semanticPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)
)

// Target is one entry of the files list. A plain string entry names a
// file or directory replaced via substring search; an object entry
// carries a search pattern template locating the version inside the file.
type Target struct {
	// Path names a file or, for plain targets, possibly a directory
	// searched recursively
	Path string

	// Pattern is empty for plain targets. Otherwise it is a template
	// containing Placeholder exactly once; the remaining template text
	// is treated as a regular expression fragment and is NOT escaped,
	// so authors must escape metacharacters themselves.
	Pattern string
}

// searchPattern is the object shape of a files entry
type searchPattern struct {
	Path          string `json:"path"`
	SearchPattern string `json:"search_pattern"`
}

// UnmarshalJSON accepts either a plain string or a search pattern object
func (t *Target) UnmarshalJSON(data []byte) error {
	var path string

	if err := json.Unmarshal(data, &path); err == nil {
		t.Path = path
		t.Pattern = ""

		return nil
	}

	var sp searchPattern

	if err := json.Unmarshal(data, &sp); err != nil {
		return fmt.Errorf("files entries must be a path or a search pattern object: %w", err)
	}

	t.Path = sp.Path
	t.Pattern = sp.SearchPattern

	return t.validate()
}

// MarshalJSON preserves the original entry shape so documents round-trip
func (t Target) MarshalJSON() ([]byte, error) {
	if t.Pattern == "" {
		return json.Marshal(t.Path)
	}

	return json.Marshal(searchPattern{Path: t.Path, SearchPattern: t.Pattern})
}

func (t Target) validate() error {
	if t.Path == "" {
		return fmt.Errorf("files entries must name a path")
	}

	if t.Pattern != "" && strings.Count(t.Pattern, Placeholder) != 1 {
		return fmt.Errorf(
			"search pattern %q must contain %s exactly once",
			t.Pattern,
			Placeholder,
		)
	}

	return nil
}

// JSONSchema describes the two accepted entry shapes for the
// config-schema command
func (Target) JSONSchema() *jsonschema.Schema {
	props := jsonschema.NewProperties()

	props.Set("path", &jsonschema.Schema{
		Type:        "string",
		Description: "The file whose content is matched against the search pattern",
	})

	props.Set("search_pattern", &jsonschema.Schema{
		Type:        "string",
		Description: "A template containing {current_version} exactly once",
	})

	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{
				Type:        "string",
				Description: "A file or directory path",
			},
			{
				Type:       "object",
				Properties: props,
				Required:   []string{"path", "search_pattern"},
			},
		},
	}
}

// Schema renders the JSON schema of the config document
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}

	schema := reflector.Reflect(&Config{})
	schema.Title = "Config"
	schema.Description = "The configuration file schema"

	return json.MarshalIndent(schema, "", "  ")
}
