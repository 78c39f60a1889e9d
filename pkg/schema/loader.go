// Package schema decodes machine definition documents into domain
// Definitions. YAML is the primary format; generic map documents (already
// decoded JSON, config trees) are supported through mapstructure. The package
// only decodes; validation happens in Definition.Build.
package schema

import (
	"fmt"
	"os"

	"github.com/aretw0/automat/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML machine definition document.
func Parse(data []byte) (domain.Definition, error) {
	var def domain.Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return domain.Definition{}, fmt.Errorf("failed to parse definition: %w", err)
	}
	return def, nil
}

// Load reads and decodes a YAML machine definition file.
func Load(path string) (domain.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Definition{}, fmt.Errorf("failed to read definition file: %w", err)
	}
	return Parse(data)
}

// FromMap decodes a generic document (e.g. unmarshaled JSON or a config
// tree) into a Definition. Field names follow the same yaml tags as the
// file format.
func FromMap(doc map[string]any) (domain.Definition, error) {
	var def domain.Definition
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "yaml",
		Result:  &def,
	})
	if err != nil {
		return domain.Definition{}, fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := dec.Decode(doc); err != nil {
		return domain.Definition{}, fmt.Errorf("failed to decode definition: %w", err)
	}
	return def, nil
}

// LoadTable is a convenience for the common load-then-build sequence.
func LoadTable(path string) (*domain.Table, error) {
	def, err := Load(path)
	if err != nil {
		return nil, err
	}
	table, err := def.Build()
	if err != nil {
		return nil, fmt.Errorf("invalid definition in %s: %w", path, err)
	}
	return table, nil
}
